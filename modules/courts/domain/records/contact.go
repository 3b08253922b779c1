package records

type Contact struct {
	ID          *int64 `json:"id,omitempty" form:"id"`
	Type        string `json:"type" form:"type"`
	Number      string `json:"number" form:"number"`
	Explanation string `json:"explanation" form:"explanation"`
	Fax         bool   `json:"fax" form:"fax"`
	IsNew       bool   `json:"isNew" form:"isNew"`
}

func (r Contact) Blank() bool {
	return allEmpty(r.Type, r.Number, r.Explanation)
}

func (r Contact) Field(name string) string {
	switch name {
	case "type":
		return trimmed(r.Type)
	case "number":
		return trimmed(r.Number)
	case "explanation":
		return trimmed(r.Explanation)
	}
	return ""
}

func BlankContact() Contact {
	return Contact{IsNew: true}
}
