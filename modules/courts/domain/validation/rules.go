// Package validation runs rule sets over editable list rows. Every rule is
// evaluated on every submission; a failing rule never short-circuits the rest,
// so the operator sees the complete picture in one round trip.
package validation

// Record is a list row the engine can inspect. Field returns the trimmed
// value of a named field and the empty string for unknown names.
type Record interface {
	Field(name string) string
	Blank() bool
}

type Scope string

const (
	// ScopeSummary errors render once at the top of the tab.
	ScopeSummary Scope = "summary"
	// ScopeField errors attach to a specific row and input.
	ScopeField Scope = "field"
)

type Error struct {
	Scope   Scope  `json:"scope"`
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// RequiredRule fails rows where Field is empty.
type RequiredRule struct {
	Field        string
	Summary      string
	FieldMessage string
}

// CoRequiredRule fails rows where some but not all of Fields are populated.
type CoRequiredRule struct {
	Fields       []string
	Summary      string
	FieldMessage string
}

// ExactlyOneRule fails rows where zero or more than one of Fields is
// populated.
type ExactlyOneRule struct {
	Fields       []string
	Summary      string
	FieldMessage string
}

// FormatRule validates non-empty values of Field against a validator tag
// such as "omitempty,email".
type FormatRule struct {
	Field        string
	Tag          string
	Summary      string
	FieldMessage string
}

// UniqueRule fails every row participating in a case-insensitive collision
// on Field. Empty values never collide.
type UniqueRule struct {
	Field        string
	Summary      string
	FieldMessage string
}

// RuleSet is the complete validation contract of one tab.
type RuleSet struct {
	Required   []RequiredRule
	CoRequired []CoRequiredRule
	ExactlyOne []ExactlyOneRule
	Formats    []FormatRule
	Unique     *UniqueRule
}
