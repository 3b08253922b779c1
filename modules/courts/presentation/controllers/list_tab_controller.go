package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/openjustice/courtadmin/modules/courts/domain/conflict"
	"github.com/openjustice/courtadmin/modules/courts/domain/listedit"
	"github.com/openjustice/courtadmin/modules/courts/domain/validation"
	"github.com/openjustice/courtadmin/pkg/composables"
	"github.com/openjustice/courtadmin/pkg/editlock"
	"github.com/openjustice/courtadmin/pkg/metrics"
	"github.com/openjustice/courtadmin/pkg/shared"
)

// listRow is a list entry the shared tab flow can reconcile and validate.
type listRow interface {
	listedit.Row
	validation.Record
}

type listForm[T any] struct {
	Rows   []T    `form:"rows"`
	Action string `form:"action"`
	Row    int    `form:"row"`
	CSRF   string `form:"_csrf"`
}

// ListTabController serves one editable sub-collection of a court. The type
// parameter fixes the row shape; everything else is configuration.
type ListTabController[T listRow] struct {
	tab     string
	rules   validation.RuleSet
	blank   func() T
	fetch   func(ctx context.Context, slug string) ([]T, error)
	replace func(ctx context.Context, slug string, rows []T) ([]T, error)
	// identity extracts the submitted name echoed back on duplicate
	// conflicts; nil when the tab has no identity field.
	identity func(rows []T) string
	lock     *editlock.Coordinator
}

func (c *ListTabController[T]) Key() string {
	return "/courts/{slug}/edit/" + c.tab
}

func (c *ListTabController[T]) Register(r *mux.Router) {
	router := r.PathPrefix("/courts/{slug:[a-z0-9-]+}/edit/" + c.tab).Subrouter()
	router.HandleFunc("", c.Get).Methods(http.MethodGet)
	router.HandleFunc("", c.Post).Methods(http.MethodPost)
}

func (c *ListTabController[T]) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug, err := shared.ParseSlug(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := c.fetch(ctx, slug)
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to fetch records")
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	query, _ := composables.UseQuery(&editPageQuery{}, r)
	view := tabView[T]{
		Records: listedit.Reconcile(rows, c.blank),
		Errors:  []validation.Error{},
		Updated: query.Updated,
	}
	if subject, ok := composables.UseOperatorSubject(ctx); ok {
		view.LockedByOther = c.lock.AcquireForView(ctx, slug, subject)
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (c *ListTabController[T]) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug, err := shared.ParseSlug(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form, err := composables.UseForm(&listForm[T]{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The posted body is untrusted until the token checks out, so on
	// failure it is discarded and the stored list is shown instead.
	if !composables.VerifyCSRF(ctx, form.CSRF) {
		metrics.SavesTotal.WithLabelValues(c.tab, "csrf_invalid").Inc()
		c.respondWithStored(w, r, slug, summaryError(csrfFailedMessage))
		return
	}

	rows := listedit.Reconcile(form.Rows, c.blank)

	switch form.Action {
	case "moveUp", "moveDown":
		// The posted index counts blank rows the reconciler just dropped,
		// so it has to be remapped before the swap.
		if idx := listedit.RealIndex(form.Rows, form.Row); idx >= 0 {
			if form.Action == "moveUp" {
				listedit.MoveUp(rows, idx)
			} else {
				listedit.MoveDown(rows, idx)
			}
		}
		writeJSON(w, r, http.StatusOK, tabView[T]{Records: rows, Errors: []validation.Error{}})
		return
	}

	if errs := validation.Validate(c.rules, rows); len(errs) > 0 {
		metrics.SavesTotal.WithLabelValues(c.tab, "validation_failed").Inc()
		writeJSON(w, r, http.StatusOK, tabView[T]{Records: rows, Errors: errs})
		return
	}

	saved, err := c.replace(ctx, slug, rows)
	if err != nil {
		c.respondConflict(w, r, rows, err)
		return
	}

	// List saves never change the court's identity, so the operator stays
	// on the page and sees the stored list with a success indicator.
	metrics.SavesTotal.WithLabelValues(c.tab, "success").Inc()
	writeJSON(w, r, http.StatusOK, tabView[T]{
		Records: listedit.Reconcile(saved, c.blank),
		Errors:  []validation.Error{},
		Updated: true,
	})
}

func (c *ListTabController[T]) respondConflict(w http.ResponseWriter, r *http.Request, rows []T, err error) {
	name := ""
	if c.identity != nil {
		name = c.identity(rows)
	}
	cf := conflict.Classify(err, name)

	switch cf.Kind {
	case conflict.DuplicateIdentity:
		metrics.SavesTotal.WithLabelValues(c.tab, "conflict_duplicate").Inc()
	case conflict.LockHeld:
		metrics.SavesTotal.WithLabelValues(c.tab, "conflict_lock_held").Inc()
	default:
		metrics.SavesTotal.WithLabelValues(c.tab, "transient").Inc()
		composables.UseLogger(r.Context()).WithError(err).Error("save failed")
	}

	writeJSON(w, r, http.StatusOK, tabView[T]{
		Records: rows,
		Errors:  []validation.Error{cf.ValidationError()},
	})
}

func (c *ListTabController[T]) respondWithStored(w http.ResponseWriter, r *http.Request, slug string, errs ...validation.Error) {
	ctx := r.Context()
	rows, err := c.fetch(ctx, slug)
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to fetch records")
		rows = nil
	}
	writeJSON(w, r, http.StatusOK, tabView[T]{
		Records: listedit.Reconcile(rows, c.blank),
		Errors:  errs,
	})
}
