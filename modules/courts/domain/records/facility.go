package records

type Facility struct {
	ID          *int64 `json:"id,omitempty" form:"id"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	IsNew       bool   `json:"isNew" form:"isNew"`
}

func (r Facility) Blank() bool {
	return allEmpty(r.Name, r.Description)
}

func (r Facility) Field(name string) string {
	switch name {
	case "name":
		return trimmed(r.Name)
	case "description":
		return trimmed(r.Description)
	}
	return ""
}

func BlankFacility() Facility {
	return Facility{IsNew: true}
}
