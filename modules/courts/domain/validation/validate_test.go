package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openjustice/courtadmin/modules/courts/domain/records"
	"github.com/openjustice/courtadmin/modules/courts/domain/validation"
)

var emailRules = validation.RuleSet{
	Required: []validation.RequiredRule{
		{Field: "type", Summary: "Select a description for every email address", FieldMessage: "Description is required"},
		{Field: "address", Summary: "Enter an email address for every row", FieldMessage: "Email address is required"},
	},
	Formats: []validation.FormatRule{
		{Field: "address", Tag: "omitempty,email", Summary: "Enter email addresses in a valid format", FieldMessage: "Enter an email address in the correct format"},
	},
	Unique: &validation.UniqueRule{
		Field:        "address",
		Summary:      "All email addresses must be unique",
		FieldMessage: "Duplicated email address",
	},
}

func TestValidate_PassesCleanRows(t *testing.T) {
	rows := []records.Email{
		{Type: "Enquiries", Address: "enquiries@court.example"},
		{Type: "Listings", Address: "listings@court.example"},
		records.BlankEmail(),
	}

	assert.Empty(t, validation.Validate(emailRules, rows))
}

func TestValidate_SkipsBlankRows(t *testing.T) {
	rows := []records.Email{records.BlankEmail()}

	assert.Empty(t, validation.Validate(emailRules, rows))
}

func TestValidate_CollectsAllCategories(t *testing.T) {
	rows := []records.Email{
		{Address: "enquiries@court.example"}, // missing description
		{Type: "Listings", Address: "not-an-email"},
		records.BlankEmail(),
	}

	errs := validation.Validate(emailRules, rows)
	summaries := validation.Summaries(errs)

	require.Len(t, summaries, 2)
	assert.Equal(t, "Select a description for every email address", summaries[0].Message)
	assert.Equal(t, "Enter email addresses in a valid format", summaries[1].Message)
}

func TestValidate_UniqueIsCaseInsensitive(t *testing.T) {
	rows := []records.Email{
		{Type: "Enquiries", Address: "x@test.com"},
		{Type: "Listings", Address: "X@test.com"},
		records.BlankEmail(),
	}

	errs := validation.Validate(emailRules, rows)
	summaries := validation.Summaries(errs)

	require.Len(t, summaries, 1)
	assert.Equal(t, "All email addresses must be unique", summaries[0].Message)

	var flagged []int
	for _, e := range errs {
		if e.Scope == validation.ScopeField {
			assert.Equal(t, "address", e.Field)
			flagged = append(flagged, e.Row)
		}
	}
	assert.Equal(t, []int{0, 1}, flagged)
}

func TestValidate_OneSummaryPerRuleRegardlessOfRowCount(t *testing.T) {
	rows := []records.Email{
		{Address: "a@test.com"},
		{Address: "b@test.com"},
		{Address: "c@test.com"},
	}

	errs := validation.Validate(emailRules, rows)
	summaries := validation.Summaries(errs)

	require.Len(t, summaries, 1)

	fields := 0
	for _, e := range errs {
		if e.Scope == validation.ScopeField {
			fields++
		}
	}
	assert.Equal(t, 3, fields)
}

func TestValidate_CoRequired(t *testing.T) {
	rules := validation.RuleSet{
		CoRequired: []validation.CoRequiredRule{
			{
				Fields:       []string{"url", "displayName"},
				Summary:      "Enter a URL and display name for every link",
				FieldMessage: "Both URL and display name are required",
			},
		},
	}
	rows := []records.AdditionalLink{
		{URL: "https://example.org"},
		records.BlankAdditionalLink(),
	}

	errs := validation.Validate(rules, rows)
	require.Len(t, errs, 2)
	assert.Equal(t, validation.ScopeSummary, errs[0].Scope)
	assert.Equal(t, "displayName", errs[1].Field)
	assert.Equal(t, 0, errs[1].Row)
}

func TestValidate_ExactlyOne(t *testing.T) {
	rules := validation.RuleSet{
		ExactlyOne: []validation.ExactlyOneRule{
			{
				Fields:       []string{"email", "externalLink"},
				Summary:      "Provide an email or an external link, not both",
				FieldMessage: "Provide either an email or an external link",
			},
		},
	}

	both := []records.ApplicationProgression{
		{Type: "Get an update", Email: "updates@court.example", ExternalLink: "https://example.org"},
	}
	errs := validation.Validate(rules, both)
	require.Len(t, validation.Summaries(errs), 1)

	neither := []records.ApplicationProgression{{Type: "Get an update"}}
	errs = validation.Validate(rules, neither)
	require.Len(t, validation.Summaries(errs), 1)

	one := []records.ApplicationProgression{{Type: "Get an update", Email: "updates@court.example"}}
	assert.Empty(t, validation.Validate(rules, one))
}

func TestValidate_PostcodeFormat(t *testing.T) {
	rules := validation.RuleSet{
		Formats: []validation.FormatRule{
			{Field: "postcode", Tag: "omitempty,ukpostcode", Summary: "Enter postcodes in a valid format", FieldMessage: "Enter a postcode in the correct format"},
		},
	}

	valid := []records.Address{{Type: "Visit us", Postcode: "SW1A 1AA"}}
	assert.Empty(t, validation.Validate(rules, valid))

	invalid := []records.Address{{Type: "Visit us", Postcode: "NOT A CODE"}}
	errs := validation.Validate(rules, invalid)
	require.Len(t, validation.Summaries(errs), 1)
}
