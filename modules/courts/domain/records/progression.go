package records

// ApplicationProgression tells applicants how to follow up on a case. A row
// offers contact by email or by external link, never both.
type ApplicationProgression struct {
	ID                      *int64 `json:"id,omitempty" form:"id"`
	Type                    string `json:"type" form:"type"`
	Email                   string `json:"email" form:"email"`
	ExternalLink            string `json:"externalLink" form:"externalLink"`
	ExternalLinkDescription string `json:"externalLinkDescription" form:"externalLinkDescription"`
	IsNew                   bool   `json:"isNew" form:"isNew"`
}

func (r ApplicationProgression) Blank() bool {
	return allEmpty(r.Type, r.Email, r.ExternalLink, r.ExternalLinkDescription)
}

func (r ApplicationProgression) Field(name string) string {
	switch name {
	case "type":
		return trimmed(r.Type)
	case "email":
		return trimmed(r.Email)
	case "externalLink":
		return trimmed(r.ExternalLink)
	case "externalLinkDescription":
		return trimmed(r.ExternalLinkDescription)
	}
	return ""
}

func BlankApplicationProgression() ApplicationProgression {
	return ApplicationProgression{IsNew: true}
}
