// Package controllers mounts the court editing console on the router. Every
// editable tab shares one flow: reconcile the posted list, validate it in
// full, save, and classify whatever the data store rejects.
package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/openjustice/courtadmin/modules/courts/domain/validation"
	"github.com/openjustice/courtadmin/pkg/composables"
)

const csrfFailedMessage = "Your session has expired, refresh the page and try again"

// editPageQuery carries the flags a post-save redirect appends.
type editPageQuery struct {
	Updated bool `form:"updated"`
}

// tabView is the JSON body of an editable tab.
type tabView[T any] struct {
	Records       []T                `json:"records"`
	Errors        []validation.Error `json:"errors"`
	Updated       bool               `json:"updated"`
	LockedByOther bool               `json:"lockedByOther,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to encode response")
	}
}

func summaryError(message string) validation.Error {
	return validation.Error{Scope: validation.ScopeSummary, Row: -1, Message: message}
}
