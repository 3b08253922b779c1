// Package factapi is the HTTP client for the court data store. The console
// never persists anything itself; every read and write round-trips through
// this API.
package factapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/openjustice/courtadmin/modules/courts/domain/records"
)

// Error is a non-2xx response from the data store. Classification downstream
// relies on the status code alone; the payload is kept for logs.
type Error struct {
	Status  int
	Payload string
}

func (e *Error) Error() string {
	return fmt.Sprintf("fact api: status %d", e.Status)
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &Error{Status: resp.StatusCode, Payload: string(payload)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", method, path)
	}
	return nil
}

func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func put[T any](ctx context.Context, c *Client, path string, body []T) ([]T, error) {
	var out []T
	err := c.do(ctx, http.MethodPut, path, body, &out)
	return out, err
}

// Court fetches the parent entity by slug.
func (c *Client) Court(ctx context.Context, slug string) (records.Court, error) {
	return get[records.Court](ctx, c, "/courts/"+slug)
}

// UpdateGeneral replaces the general details of a court. The returned entity
// carries the canonical slug, which changes when the name does.
func (c *Client) UpdateGeneral(ctx context.Context, slug string, g records.General) (records.Court, error) {
	var out records.Court
	err := c.do(ctx, http.MethodPut, "/courts/"+slug+"/general", g, &out)
	return out, err
}

func (c *Client) OpeningHours(ctx context.Context, slug string) ([]records.OpeningHour, error) {
	return get[[]records.OpeningHour](ctx, c, "/courts/"+slug+"/opening-times")
}

func (c *Client) ReplaceOpeningHours(ctx context.Context, slug string, rows []records.OpeningHour) ([]records.OpeningHour, error) {
	return put(ctx, c, "/courts/"+slug+"/opening-times", rows)
}

func (c *Client) Contacts(ctx context.Context, slug string) ([]records.Contact, error) {
	return get[[]records.Contact](ctx, c, "/courts/"+slug+"/contacts")
}

func (c *Client) ReplaceContacts(ctx context.Context, slug string, rows []records.Contact) ([]records.Contact, error) {
	return put(ctx, c, "/courts/"+slug+"/contacts", rows)
}

func (c *Client) Emails(ctx context.Context, slug string) ([]records.Email, error) {
	return get[[]records.Email](ctx, c, "/courts/"+slug+"/emails")
}

func (c *Client) ReplaceEmails(ctx context.Context, slug string, rows []records.Email) ([]records.Email, error) {
	return put(ctx, c, "/courts/"+slug+"/emails", rows)
}

func (c *Client) AdditionalLinks(ctx context.Context, slug string) ([]records.AdditionalLink, error) {
	return get[[]records.AdditionalLink](ctx, c, "/courts/"+slug+"/additional-links")
}

func (c *Client) ReplaceAdditionalLinks(ctx context.Context, slug string, rows []records.AdditionalLink) ([]records.AdditionalLink, error) {
	return put(ctx, c, "/courts/"+slug+"/additional-links", rows)
}

func (c *Client) ApplicationProgressions(ctx context.Context, slug string) ([]records.ApplicationProgression, error) {
	return get[[]records.ApplicationProgression](ctx, c, "/courts/"+slug+"/application-progression")
}

func (c *Client) ReplaceApplicationProgressions(ctx context.Context, slug string, rows []records.ApplicationProgression) ([]records.ApplicationProgression, error) {
	return put(ctx, c, "/courts/"+slug+"/application-progression", rows)
}

func (c *Client) Facilities(ctx context.Context, slug string) ([]records.Facility, error) {
	return get[[]records.Facility](ctx, c, "/courts/"+slug+"/facilities")
}

func (c *Client) ReplaceFacilities(ctx context.Context, slug string, rows []records.Facility) ([]records.Facility, error) {
	return put(ctx, c, "/courts/"+slug+"/facilities", rows)
}

func (c *Client) DXCodes(ctx context.Context, slug string) ([]records.DXCode, error) {
	return get[[]records.DXCode](ctx, c, "/courts/"+slug+"/dx-codes")
}

func (c *Client) ReplaceDXCodes(ctx context.Context, slug string, rows []records.DXCode) ([]records.DXCode, error) {
	return put(ctx, c, "/courts/"+slug+"/dx-codes", rows)
}

func (c *Client) Addresses(ctx context.Context, slug string) ([]records.Address, error) {
	return get[[]records.Address](ctx, c, "/courts/"+slug+"/addresses")
}

func (c *Client) ReplaceAddresses(ctx context.Context, slug string, rows []records.Address) ([]records.Address, error) {
	return put(ctx, c, "/courts/"+slug+"/addresses", rows)
}

// Courts lists every court for the landing page.
func (c *Client) Courts(ctx context.Context) ([]records.Court, error) {
	return get[[]records.Court](ctx, c, "/courts")
}
