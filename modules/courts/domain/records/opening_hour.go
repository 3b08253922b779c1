package records

type OpeningHour struct {
	ID    *int64 `json:"id,omitempty" form:"id"`
	Type  string `json:"type" form:"type"`
	Hours string `json:"hours" form:"hours"`
	IsNew bool   `json:"isNew" form:"isNew"`
}

func (r OpeningHour) Blank() bool {
	return allEmpty(r.Type, r.Hours)
}

func (r OpeningHour) Field(name string) string {
	switch name {
	case "type":
		return trimmed(r.Type)
	case "hours":
		return trimmed(r.Hours)
	}
	return ""
}

func BlankOpeningHour() OpeningHour {
	return OpeningHour{IsNew: true}
}
