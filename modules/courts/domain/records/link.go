package records

// AdditionalLink is an extra URL shown on a court page. URL and display name
// are co-required.
type AdditionalLink struct {
	ID          *int64 `json:"id,omitempty" form:"id"`
	URL         string `json:"url" form:"url"`
	DisplayName string `json:"displayName" form:"displayName"`
	IsNew       bool   `json:"isNew" form:"isNew"`
}

func (r AdditionalLink) Blank() bool {
	return allEmpty(r.URL, r.DisplayName)
}

func (r AdditionalLink) Field(name string) string {
	switch name {
	case "url":
		return trimmed(r.URL)
	case "displayName":
		return trimmed(r.DisplayName)
	}
	return ""
}

func BlankAdditionalLink() AdditionalLink {
	return AdditionalLink{IsNew: true}
}
