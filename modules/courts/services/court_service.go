// Package services sits between the controllers and the data store client,
// publishing domain events for every successful mutation.
package services

import (
	"context"

	"github.com/openjustice/courtadmin/modules/courts/domain/records"
	"github.com/openjustice/courtadmin/modules/courts/infrastructure/factapi"
	"github.com/openjustice/courtadmin/pkg/eventbus"
)

type CourtService struct {
	api       *factapi.Client
	publisher eventbus.EventBus
}

func NewCourtService(api *factapi.Client, publisher eventbus.EventBus) *CourtService {
	return &CourtService{api: api, publisher: publisher}
}

func (s *CourtService) Court(ctx context.Context, slug string) (records.Court, error) {
	return s.api.Court(ctx, slug)
}

func (s *CourtService) Courts(ctx context.Context) ([]records.Court, error) {
	return s.api.Courts(ctx)
}

// UpdateGeneral saves the general tab and reports the canonical slug after
// the save. A rename changes the slug, in which case a CourtRenamed event is
// published alongside the usual GeneralUpdated.
func (s *CourtService) UpdateGeneral(ctx context.Context, slug string, g records.General) (records.Court, error) {
	court, err := s.api.UpdateGeneral(ctx, slug, g)
	if err != nil {
		return records.Court{}, err
	}
	s.publisher.Publish(GeneralUpdated{Slug: court.Slug})
	if court.Slug != slug {
		s.publisher.Publish(CourtRenamed{OldSlug: slug, NewSlug: court.Slug, Name: court.Name})
	}
	return court, nil
}

func replaceCollection[T any](
	ctx context.Context,
	s *CourtService,
	slug, tab string,
	rows []T,
	replace func(context.Context, string, []T) ([]T, error),
) ([]T, error) {
	saved, err := replace(ctx, slug, rows)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(CollectionReplaced{Slug: slug, Tab: tab, Count: len(saved)})
	return saved, nil
}

func (s *CourtService) OpeningHours(ctx context.Context, slug string) ([]records.OpeningHour, error) {
	return s.api.OpeningHours(ctx, slug)
}

func (s *CourtService) ReplaceOpeningHours(ctx context.Context, slug string, rows []records.OpeningHour) ([]records.OpeningHour, error) {
	return replaceCollection(ctx, s, slug, "opening-hours", rows, s.api.ReplaceOpeningHours)
}

func (s *CourtService) Contacts(ctx context.Context, slug string) ([]records.Contact, error) {
	return s.api.Contacts(ctx, slug)
}

func (s *CourtService) ReplaceContacts(ctx context.Context, slug string, rows []records.Contact) ([]records.Contact, error) {
	return replaceCollection(ctx, s, slug, "contacts", rows, s.api.ReplaceContacts)
}

func (s *CourtService) Emails(ctx context.Context, slug string) ([]records.Email, error) {
	return s.api.Emails(ctx, slug)
}

func (s *CourtService) ReplaceEmails(ctx context.Context, slug string, rows []records.Email) ([]records.Email, error) {
	return replaceCollection(ctx, s, slug, "emails", rows, s.api.ReplaceEmails)
}

func (s *CourtService) AdditionalLinks(ctx context.Context, slug string) ([]records.AdditionalLink, error) {
	return s.api.AdditionalLinks(ctx, slug)
}

func (s *CourtService) ReplaceAdditionalLinks(ctx context.Context, slug string, rows []records.AdditionalLink) ([]records.AdditionalLink, error) {
	return replaceCollection(ctx, s, slug, "additional-links", rows, s.api.ReplaceAdditionalLinks)
}

func (s *CourtService) ApplicationProgressions(ctx context.Context, slug string) ([]records.ApplicationProgression, error) {
	return s.api.ApplicationProgressions(ctx, slug)
}

func (s *CourtService) ReplaceApplicationProgressions(ctx context.Context, slug string, rows []records.ApplicationProgression) ([]records.ApplicationProgression, error) {
	return replaceCollection(ctx, s, slug, "application-progression", rows, s.api.ReplaceApplicationProgressions)
}

func (s *CourtService) Facilities(ctx context.Context, slug string) ([]records.Facility, error) {
	return s.api.Facilities(ctx, slug)
}

func (s *CourtService) ReplaceFacilities(ctx context.Context, slug string, rows []records.Facility) ([]records.Facility, error) {
	return replaceCollection(ctx, s, slug, "facilities", rows, s.api.ReplaceFacilities)
}

func (s *CourtService) DXCodes(ctx context.Context, slug string) ([]records.DXCode, error) {
	return s.api.DXCodes(ctx, slug)
}

func (s *CourtService) ReplaceDXCodes(ctx context.Context, slug string, rows []records.DXCode) ([]records.DXCode, error) {
	return replaceCollection(ctx, s, slug, "dx-codes", rows, s.api.ReplaceDXCodes)
}

func (s *CourtService) Addresses(ctx context.Context, slug string) ([]records.Address, error) {
	return s.api.Addresses(ctx, slug)
}

func (s *CourtService) ReplaceAddresses(ctx context.Context, slug string, rows []records.Address) ([]records.Address, error) {
	return replaceCollection(ctx, s, slug, "addresses", rows, s.api.ReplaceAddresses)
}
