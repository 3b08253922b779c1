package records

type Address struct {
	ID           *int64 `json:"id,omitempty" form:"id"`
	Type         string `json:"type" form:"type"`
	AddressLines string `json:"addressLines" form:"addressLines"`
	Town         string `json:"town" form:"town"`
	County       string `json:"county" form:"county"`
	Postcode     string `json:"postcode" form:"postcode"`
	IsNew        bool   `json:"isNew" form:"isNew"`
}

func (r Address) Blank() bool {
	return allEmpty(r.Type, r.AddressLines, r.Town, r.County, r.Postcode)
}

func (r Address) Field(name string) string {
	switch name {
	case "type":
		return trimmed(r.Type)
	case "addressLines":
		return trimmed(r.AddressLines)
	case "town":
		return trimmed(r.Town)
	case "county":
		return trimmed(r.County)
	case "postcode":
		return trimmed(r.Postcode)
	}
	return ""
}

func BlankAddress() Address {
	return Address{IsNew: true}
}
