package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openjustice/courtadmin/pkg/composables"
	"github.com/openjustice/courtadmin/pkg/editlock"
	"github.com/openjustice/courtadmin/pkg/routing"
	"github.com/openjustice/courtadmin/pkg/session"
)

type recordingLockStore struct {
	released []string
}

func (s *recordingLockStore) Acquire(context.Context, string, string) error { return nil }

func (s *recordingLockStore) ReleaseAllHeldBy(_ context.Context, subject string) error {
	s.released = append(s.released, subject)
	return nil
}

func (s *recordingLockStore) HeldBy(context.Context, string) (string, bool, error) {
	return "", false, nil
}

func TestLockRelease_Middleware(t *testing.T) {
	store := &recordingLockStore{}
	matcher := routing.NewEscapeMatcher([]routing.EscapeRoute{
		{Path: "/courts", Match: routing.MatchExact},
	})
	mw := LockRelease(editlock.NewCoordinator(store, matcher, logrus.New()))

	handled := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handled = true
		w.WriteHeader(http.StatusOK)
	}))

	// Escape route with a session: release fires, handler still runs.
	req := httptest.NewRequest(http.MethodGet, "/courts", nil)
	ctx := composables.WithSession(req.Context(), &session.Session{Subject: "op-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	require.True(t, handled)
	assert.Equal(t, []string{"op-1"}, store.released)

	// Edit page: no release.
	req = httptest.NewRequest(http.MethodGet, "/courts/leeds/edit", nil)
	ctx = composables.WithSession(req.Context(), &session.Session{Subject: "op-1"})
	handler.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))
	assert.Equal(t, []string{"op-1"}, store.released)

	// No session: no release.
	req = httptest.NewRequest(http.MethodGet, "/courts", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, []string{"op-1"}, store.released)
}
