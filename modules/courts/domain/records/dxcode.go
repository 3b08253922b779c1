package records

// DXCode is a document exchange address for a court.
type DXCode struct {
	ID          *int64 `json:"id,omitempty" form:"id"`
	Code        string `json:"code" form:"code"`
	Explanation string `json:"explanation" form:"explanation"`
	IsNew       bool   `json:"isNew" form:"isNew"`
}

func (r DXCode) Blank() bool {
	return allEmpty(r.Code, r.Explanation)
}

func (r DXCode) Field(name string) string {
	switch name {
	case "code":
		return trimmed(r.Code)
	case "explanation":
		return trimmed(r.Explanation)
	}
	return ""
}

func BlankDXCode() DXCode {
	return DXCode{IsNew: true}
}
