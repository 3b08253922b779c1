package controllers

import (
	"github.com/openjustice/courtadmin/modules/courts/domain/records"
	"github.com/openjustice/courtadmin/modules/courts/domain/validation"
	"github.com/openjustice/courtadmin/modules/courts/services"
	"github.com/openjustice/courtadmin/pkg/editlock"
)

func NewOpeningHoursController(svc *services.CourtService, lock *editlock.Coordinator) *ListTabController[records.OpeningHour] {
	return &ListTabController[records.OpeningHour]{
		tab: "opening-hours",
		rules: validation.RuleSet{
			Required: []validation.RequiredRule{
				{Field: "type", Summary: "Select a description for every opening time", FieldMessage: "Description is required"},
				{Field: "hours", Summary: "Enter hours for every opening time", FieldMessage: "Hours are required"},
			},
		},
		blank:   records.BlankOpeningHour,
		fetch:   svc.OpeningHours,
		replace: svc.ReplaceOpeningHours,
		lock:    lock,
	}
}

func NewContactsController(svc *services.CourtService, lock *editlock.Coordinator) *ListTabController[records.Contact] {
	return &ListTabController[records.Contact]{
		tab: "contacts",
		rules: validation.RuleSet{
			Required: []validation.RequiredRule{
				{Field: "type", Summary: "Select a description for every contact", FieldMessage: "Description is required"},
				{Field: "number", Summary: "Enter a number for every contact", FieldMessage: "Number is required"},
			},
		},
		blank:   records.BlankContact,
		fetch:   svc.Contacts,
		replace: svc.ReplaceContacts,
		lock:    lock,
	}
}

func NewEmailsController(svc *services.CourtService, lock *editlock.Coordinator) *ListTabController[records.Email] {
	return &ListTabController[records.Email]{
		tab: "emails",
		rules: validation.RuleSet{
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
		},
		blank:   records.BlankEmail,
		fetch:   svc.Emails,
		replace: svc.ReplaceEmails,
		lock:    lock,
	}
}

func NewAdditionalLinksController(svc *services.CourtService, lock *editlock.Coordinator) *ListTabController[records.AdditionalLink] {
	return &ListTabController[records.AdditionalLink]{
		tab: "additional-links",
		rules: validation.RuleSet{
			CoRequired: []validation.CoRequiredRule{
				{Fields: []string{"url", "displayName"}, Summary: "Enter a URL and display name for every link", FieldMessage: "Both URL and display name are required"},
			},
			Formats: []validation.FormatRule{
				{Field: "url", Tag: "omitempty,url", Summary: "Enter URLs in a valid format", FieldMessage: "Enter a URL in the correct format"},
			},
			Unique: &validation.UniqueRule{
				Field:        "url",
				Summary:      "All URLs must be unique",
				FieldMessage: "Duplicated URL",
			},
		},
		blank:   records.BlankAdditionalLink,
		fetch:   svc.AdditionalLinks,
		replace: svc.ReplaceAdditionalLinks,
		lock:    lock,
	}
}

func NewApplicationProgressionController(svc *services.CourtService, lock *editlock.Coordinator) *ListTabController[records.ApplicationProgression] {
	return &ListTabController[records.ApplicationProgression]{
		tab: "application-progression",
		rules: validation.RuleSet{
			Required: []validation.RequiredRule{
				{Field: "type", Summary: "Select a type for every entry", FieldMessage: "Type is required"},
			},
			CoRequired: []validation.CoRequiredRule{
				{Fields: []string{"externalLink", "externalLinkDescription"}, Summary: "Enter a link and description together", FieldMessage: "Both link and description are required"},
			},
			ExactlyOne: []validation.ExactlyOneRule{
				{Fields: []string{"email", "externalLink"}, Summary: "Provide an email or an external link, not both", FieldMessage: "Provide either an email or an external link"},
			},
			Formats: []validation.FormatRule{
				{Field: "email", Tag: "omitempty,email", Summary: "Enter email addresses in a valid format", FieldMessage: "Enter an email address in the correct format"},
				{Field: "externalLink", Tag: "omitempty,url", Summary: "Enter links in a valid format", FieldMessage: "Enter a link in the correct format"},
			},
		},
		blank:   records.BlankApplicationProgression,
		fetch:   svc.ApplicationProgressions,
		replace: svc.ReplaceApplicationProgressions,
		lock:    lock,
	}
}

func NewFacilitiesController(svc *services.CourtService, lock *editlock.Coordinator) *ListTabController[records.Facility] {
	return &ListTabController[records.Facility]{
		tab: "facilities",
		rules: validation.RuleSet{
			Required: []validation.RequiredRule{
				{Field: "name", Summary: "Select a name for every facility", FieldMessage: "Name is required"},
				{Field: "description", Summary: "Enter a description for every facility", FieldMessage: "Description is required"},
			},
			Unique: &validation.UniqueRule{
				Field:        "name",
				Summary:      "All facility names must be unique",
				FieldMessage: "Duplicated facility",
			},
		},
		blank:   records.BlankFacility,
		fetch:   svc.Facilities,
		replace: svc.ReplaceFacilities,
		lock:    lock,
	}
}

func NewDXCodesController(svc *services.CourtService, lock *editlock.Coordinator) *ListTabController[records.DXCode] {
	return &ListTabController[records.DXCode]{
		tab: "dx-codes",
		rules: validation.RuleSet{
			Required: []validation.RequiredRule{
				{Field: "code", Summary: "Enter a code for every DX entry", FieldMessage: "Code is required"},
			},
			Unique: &validation.UniqueRule{
				Field:        "code",
				Summary:      "All DX codes must be unique",
				FieldMessage: "Duplicated DX code",
			},
		},
		blank:   records.BlankDXCode,
		fetch:   svc.DXCodes,
		replace: svc.ReplaceDXCodes,
		lock:    lock,
	}
}

func NewAddressesController(svc *services.CourtService, lock *editlock.Coordinator) *ListTabController[records.Address] {
	return &ListTabController[records.Address]{
		tab: "addresses",
		rules: validation.RuleSet{
			Required: []validation.RequiredRule{
				{Field: "type", Summary: "Select a description for every address", FieldMessage: "Description is required"},
				{Field: "addressLines", Summary: "Enter address lines for every address", FieldMessage: "Address is required"},
				{Field: "town", Summary: "Enter a town for every address", FieldMessage: "Town is required"},
				{Field: "postcode", Summary: "Enter a postcode for every address", FieldMessage: "Postcode is required"},
			},
			Formats: []validation.FormatRule{
				{Field: "postcode", Tag: "omitempty,ukpostcode", Summary: "Enter postcodes in a valid format", FieldMessage: "Enter a postcode in the correct format"},
			},
		},
		blank:   records.BlankAddress,
		fetch:   svc.Addresses,
		replace: svc.ReplaceAddresses,
		lock:    lock,
	}
}
