package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/openjustice/courtadmin/pkg/composables"
	"github.com/openjustice/courtadmin/pkg/editlock"
)

// LockRelease runs the edit-lock coordinator against every incoming request
// before route-specific handling. Navigating to an escape route releases all
// locks held by the current operator; release failure never fails the
// request.
func LockRelease(coordinator *editlock.Coordinator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if subject, ok := composables.UseOperatorSubject(r.Context()); ok {
				coordinator.OnRouteEnter(r.Context(), r.URL.Path, subject)
			}
			next.ServeHTTP(w, r)
		})
	}
}
