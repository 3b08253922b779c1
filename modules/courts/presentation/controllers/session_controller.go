package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/openjustice/courtadmin/pkg/composables"
	"github.com/openjustice/courtadmin/pkg/configuration"
	"github.com/openjustice/courtadmin/pkg/session"
)

// SessionController exchanges the subject asserted by the fronting auth
// proxy for a console session. The console never sees credentials; it trusts
// the proxy's subject header and owns only the session and CSRF token.
type SessionController struct {
	store session.Store
	conf  *configuration.Configuration
}

func NewSessionController(store session.Store) *SessionController {
	return &SessionController{store: store, conf: configuration.Use()}
}

func (c *SessionController) Key() string {
	return "/session"
}

func (c *SessionController) Register(r *mux.Router) {
	r.HandleFunc("/session", c.SignIn).Methods(http.MethodPost)
	r.HandleFunc("/session/logout", c.SignOut).Methods(http.MethodPost)
}

func (c *SessionController) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subject := r.Header.Get(c.conf.AuthSubjectHeader)
	if subject == "" {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	sess := session.New(subject, c.conf.SessionDuration)
	if err := c.store.Put(ctx, sess, c.conf.SessionDuration); err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to store session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, c.cookie(sess.ID, c.conf.SessionDuration))

	entry := composables.UseLogger(ctx).WithField("subject", subject)
	if ip, ok := composables.UseIP(ctx); ok {
		entry = entry.WithField("ip", ip)
	}
	entry.Info("operator signed in")

	writeJSON(w, r, http.StatusOK, map[string]string{"csrfToken": sess.CSRFToken})
}

func (c *SessionController) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !composables.UseAuthenticated(ctx) {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if sess, ok := composables.UseSession(ctx); ok {
		if err := c.store.Delete(ctx, sess.ID); err != nil {
			composables.UseLogger(ctx).WithError(err).Warn("failed to delete session")
		}
	}

	http.SetCookie(w, c.cookie("", -time.Hour))
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "signed out"})
}

func (c *SessionController) cookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     c.conf.SidCookieKey,
		Value:    value,
		Path:     "/",
		Domain:   c.conf.Domain,
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   c.conf.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	}
}
