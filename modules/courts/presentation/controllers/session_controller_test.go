package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openjustice/courtadmin/modules/courts/presentation/controllers"
	"github.com/openjustice/courtadmin/pkg/composables"
	"github.com/openjustice/courtadmin/pkg/constants"
	"github.com/openjustice/courtadmin/pkg/session"
)

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: map[string]*session.Session{}}
}

func (s *memorySessionStore) Get(_ context.Context, sid string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (s *memorySessionStore) Put(_ context.Context, sess *session.Session, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *memorySessionStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

// newSessionRouter mounts the session controller behind the context the
// middleware stack would normally provide.
func newSessionRouter(store session.Store, sess *session.Session) *mux.Router {
	log := logrus.New()
	log.SetOutput(io.Discard)

	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constants.LoggerKey, logrus.NewEntry(log))
			params := &composables.Params{IP: "203.0.113.7", Request: r, Writer: w}
			if sess != nil {
				ctx = composables.WithSession(ctx, sess)
				params.Authenticated = true
			}
			ctx = composables.WithParams(ctx, params)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	controllers.NewSessionController(store).Register(router)
	return router
}

func TestSessionSignIn_MintsSessionFromProxySubject(t *testing.T) {
	store := newMemorySessionStore()
	router := newSessionRouter(store, nil)

	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	req.Header.Set("X-Auth-Subject", "operator-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		CSRFToken string `json:"csrfToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.CSRFToken)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	stored, err := store.Get(context.Background(), cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "operator-1", stored.Subject)
	assert.Equal(t, body.CSRFToken, stored.CSRFToken)
}

func TestSessionSignIn_MissingSubjectRejected(t *testing.T) {
	store := newMemorySessionStore()
	router := newSessionRouter(store, nil)

	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, store.sessions)
}

func TestSessionSignOut_DeletesSessionAndExpiresCookie(t *testing.T) {
	store := newMemorySessionStore()
	sess := session.New("operator-1", time.Hour)
	require.NoError(t, store.Put(context.Background(), sess, time.Hour))
	router := newSessionRouter(store, sess)

	req := httptest.NewRequest(http.MethodPost, "/session/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	_, err := store.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}

func TestSessionSignOut_AnonymousRejected(t *testing.T) {
	store := newMemorySessionStore()
	router := newSessionRouter(store, nil)

	req := httptest.NewRequest(http.MethodPost, "/session/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
