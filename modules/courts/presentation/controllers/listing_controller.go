package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/openjustice/courtadmin/modules/courts/domain/records"
	"github.com/openjustice/courtadmin/modules/courts/services"
	"github.com/openjustice/courtadmin/pkg/composables"
)

// ListingController serves the pages an operator lands on after leaving an
// edit context: the court list and the bulk tooling entry points. Lock
// release on arrival is handled by middleware, not here.
type ListingController struct {
	svc *services.CourtService
}

func NewListingController(svc *services.CourtService) *ListingController {
	return &ListingController{svc: svc}
}

func (c *ListingController) Key() string {
	return "/courts"
}

func (c *ListingController) Register(r *mux.Router) {
	r.HandleFunc("/courts", c.Courts).Methods(http.MethodGet)
	r.PathPrefix("/bulk-update").HandlerFunc(c.placeholder("bulk-update")).Methods(http.MethodGet)
	r.PathPrefix("/lists").HandlerFunc(c.placeholder("lists")).Methods(http.MethodGet)
	r.HandleFunc("/audits", c.placeholder("audits")).Methods(http.MethodGet)
}

func (c *ListingController) Courts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	courts, err := c.svc.Courts(ctx)
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to fetch courts")
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}
	if courts == nil {
		courts = []records.Court{}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"courts": courts})
}

func (c *ListingController) placeholder(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"page": page})
	}
}
