package records

import (
	"regexp"
	"strings"
)

// Court is the parent entity owning the editable sub-collections. Its slug is
// a derived identifier: renaming the court regenerates it, which is why a
// successful rename must redirect to the new canonical edit location.
type Court struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Info         string `json:"info"`
	Open         bool   `json:"open"`
	AccessScheme bool   `json:"accessScheme"`
}

// General carries the editable fields of the general-details tab.
type General struct {
	Name         string `json:"name" form:"name"`
	Info         string `json:"info" form:"info"`
	Open         bool   `json:"open" form:"open"`
	AccessScheme bool   `json:"accessScheme" form:"accessScheme"`
}

var slugStripPattern = regexp.MustCompile(`[^a-z0-9\s-]`)
var slugSpacePattern = regexp.MustCompile(`[\s-]+`)

// Slugify derives the canonical URL identifier from a court name.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStripPattern.ReplaceAllString(s, "")
	s = slugSpacePattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
