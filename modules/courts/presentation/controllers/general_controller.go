package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/openjustice/courtadmin/modules/courts/domain/conflict"
	"github.com/openjustice/courtadmin/modules/courts/domain/records"
	"github.com/openjustice/courtadmin/modules/courts/presentation/dtos"
	"github.com/openjustice/courtadmin/modules/courts/services"
	"github.com/openjustice/courtadmin/pkg/composables"
	"github.com/openjustice/courtadmin/pkg/editlock"
	"github.com/openjustice/courtadmin/pkg/metrics"
	"github.com/openjustice/courtadmin/pkg/shared"
)

type generalView struct {
	Court         records.Court     `json:"court"`
	Errors        map[string]string `json:"errors"`
	Updated       bool              `json:"updated"`
	LockedByOther bool              `json:"lockedByOther,omitempty"`
}

// GeneralController serves the general-details tab. Unlike the list tabs its
// save can rename the court, which regenerates the slug; a successful save
// therefore always redirects to the canonical edit location so a stale URL
// never sticks in the address bar.
type GeneralController struct {
	svc  *services.CourtService
	lock *editlock.Coordinator
}

func NewGeneralController(svc *services.CourtService, lock *editlock.Coordinator) *GeneralController {
	return &GeneralController{svc: svc, lock: lock}
}

func (c *GeneralController) Key() string {
	return "/courts/{slug}/edit/general"
}

func (c *GeneralController) Register(r *mux.Router) {
	router := r.PathPrefix("/courts/{slug:[a-z0-9-]+}/edit/general").Subrouter()
	router.HandleFunc("", c.Get).Methods(http.MethodGet)
	router.HandleFunc("", c.Post).Methods(http.MethodPost)
}

func (c *GeneralController) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug, err := shared.ParseSlug(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	court, err := c.svc.Court(ctx, slug)
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to fetch court")
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	query, _ := composables.UseQuery(&editPageQuery{}, r)
	view := generalView{
		Court:   court,
		Errors:  map[string]string{},
		Updated: query.Updated,
	}
	if subject, ok := composables.UseOperatorSubject(ctx); ok {
		view.LockedByOther = c.lock.AcquireForView(ctx, slug, subject)
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (c *GeneralController) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug, err := shared.ParseSlug(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dto, err := composables.UseForm(&dtos.GeneralDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !composables.VerifyCSRF(ctx, dto.CSRF) {
		metrics.SavesTotal.WithLabelValues("general", "csrf_invalid").Inc()
		c.respondWithStored(w, r, slug, map[string]string{"summary": csrfFailedMessage})
		return
	}

	if fieldErrs, ok := dto.Ok(); !ok {
		metrics.SavesTotal.WithLabelValues("general", "validation_failed").Inc()
		writeJSON(w, r, http.StatusOK, generalView{
			Court:  records.Court{Slug: slug, Name: dto.Name, Info: dto.Info, Open: dto.Open, AccessScheme: dto.AccessScheme},
			Errors: fieldErrs,
		})
		return
	}

	court, err := c.svc.UpdateGeneral(ctx, slug, dto.ToEntity())
	if err != nil {
		cf := conflict.Classify(err, dto.Name)
		switch cf.Kind {
		case conflict.DuplicateIdentity:
			metrics.SavesTotal.WithLabelValues("general", "conflict_duplicate").Inc()
		case conflict.LockHeld:
			metrics.SavesTotal.WithLabelValues("general", "conflict_lock_held").Inc()
		default:
			metrics.SavesTotal.WithLabelValues("general", "transient").Inc()
			composables.UseLogger(ctx).WithError(err).Error("general save failed")
		}
		writeJSON(w, r, http.StatusOK, generalView{
			Court:  records.Court{Slug: slug, Name: dto.Name, Info: dto.Info, Open: dto.Open, AccessScheme: dto.AccessScheme},
			Errors: map[string]string{"summary": cf.Message()},
		})
		return
	}

	metrics.SavesTotal.WithLabelValues("general", "success").Inc()
	// A rename regenerates the slug, so the request path no longer names
	// this court and the operator must land on the canonical location.
	if court.Slug != slug {
		shared.Redirect(w, r, "/courts/"+court.Slug+"/edit/general?updated=true")
		return
	}
	writeJSON(w, r, http.StatusOK, generalView{
		Court:   court,
		Errors:  map[string]string{},
		Updated: true,
	})
}

func (c *GeneralController) respondWithStored(w http.ResponseWriter, r *http.Request, slug string, errs map[string]string) {
	ctx := r.Context()
	court, err := c.svc.Court(ctx, slug)
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to fetch court")
	}
	writeJSON(w, r, http.StatusOK, generalView{Court: court, Errors: errs})
}
