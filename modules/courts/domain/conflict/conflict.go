// Package conflict turns data-store save failures into operator-facing
// outcomes. Classification is by HTTP status alone so it keeps working when
// the store changes its error payloads.
package conflict

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/openjustice/courtadmin/modules/courts/domain/validation"
	"github.com/openjustice/courtadmin/modules/courts/infrastructure/factapi"
)

type Kind string

const (
	// DuplicateIdentity means the submitted name collides with an existing
	// entity. The message names the loser of the race.
	DuplicateIdentity Kind = "duplicate_identity"
	// LockHeld means another operator holds the edit lock on the parent.
	LockHeld Kind = "lock_held"
	// Transient covers everything else; retrying may succeed.
	Transient Kind = "transient"
)

type Conflict struct {
	Kind Kind
	Name string
}

// Classify maps a save error to its conflict kind. submittedName is the
// identity the operator tried to use; it is echoed back on duplicates because
// the store's response body cannot be trusted to contain it.
func Classify(err error, submittedName string) Conflict {
	var apiErr *factapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusConflict:
			return Conflict{Kind: DuplicateIdentity, Name: submittedName}
		case http.StatusLocked:
			return Conflict{Kind: LockHeld}
		}
	}
	return Conflict{Kind: Transient}
}

// ValidationError renders the conflict as a summary error on the tab.
func (c Conflict) ValidationError() validation.Error {
	return validation.Error{Scope: validation.ScopeSummary, Row: -1, Message: c.Message()}
}

func (c Conflict) Message() string {
	switch c.Kind {
	case DuplicateIdentity:
		// List saves carry no single identity to echo back.
		if c.Name == "" {
			return "An entry with the same details already exists"
		}
		return "A court or tribunal named \"" + c.Name + "\" already exists"
	case LockHeld:
		return "Another operator is editing this court or tribunal"
	default:
		return "A problem occurred while saving, please try again"
	}
}
