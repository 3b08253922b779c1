package records

type Email struct {
	ID          *int64 `json:"id,omitempty" form:"id"`
	Type        string `json:"type" form:"type"`
	Address     string `json:"address" form:"address"`
	Explanation string `json:"explanation" form:"explanation"`
	IsNew       bool   `json:"isNew" form:"isNew"`
}

func (r Email) Blank() bool {
	return allEmpty(r.Type, r.Address, r.Explanation)
}

func (r Email) Field(name string) string {
	switch name {
	case "type":
		return trimmed(r.Type)
	case "address":
		return trimmed(r.Address)
	case "explanation":
		return trimmed(r.Explanation)
	}
	return ""
}

func BlankEmail() Email {
	return Email{IsNew: true}
}
