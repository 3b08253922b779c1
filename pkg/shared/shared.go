package shared

import (
	"net/http"

	"github.com/go-playground/form"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Decoder is shared between all controllers. Forms use the `form` tag with
// indexed row arrays (rows[0].Type, rows[1].Type, ...).
var Decoder = newDecoder()

func newDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.SetTagName("form")
	return d
}

var ErrNoSlug = errors.New("slug not found in request path")

// ParseSlug extracts the parent entity slug from the route variables.
func ParseSlug(r *http.Request) (string, error) {
	slug, ok := mux.Vars(r)["slug"]
	if !ok || slug == "" {
		return "", ErrNoSlug
	}
	return slug, nil
}

func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusFound)
}
