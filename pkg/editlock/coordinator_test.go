package editlock

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/openjustice/courtadmin/pkg/routing"
)

type fakeLockStore struct {
	locks      map[string]string // parentID -> subject
	releasedBy []string
	releaseErr error
	acquireErr error
}

func newFakeLockStore() *fakeLockStore {
	return &fakeLockStore{locks: map[string]string{}}
}

func (s *fakeLockStore) Acquire(_ context.Context, parentID, subject string) error {
	if s.acquireErr != nil {
		return s.acquireErr
	}
	if holder, ok := s.locks[parentID]; ok && holder != subject {
		return ErrLockHeld
	}
	s.locks[parentID] = subject
	return nil
}

func (s *fakeLockStore) ReleaseAllHeldBy(_ context.Context, subject string) error {
	s.releasedBy = append(s.releasedBy, subject)
	if s.releaseErr != nil {
		return s.releaseErr
	}
	for parentID, holder := range s.locks {
		if holder == subject {
			delete(s.locks, parentID)
		}
	}
	return nil
}

func (s *fakeLockStore) HeldBy(_ context.Context, parentID string) (string, bool, error) {
	holder, ok := s.locks[parentID]
	return holder, ok, nil
}

func testMatcher() *routing.EscapeMatcher {
	return routing.NewEscapeMatcher([]routing.EscapeRoute{
		{Path: "/courts", Match: routing.MatchExact},
		{Path: "/bulk-update", Match: routing.MatchPrefix},
	})
}

func TestCoordinator_ReleasesOnEscapeRoute(t *testing.T) {
	store := newFakeLockStore()
	store.locks["central-london"] = "op-1"
	c := NewCoordinator(store, testMatcher(), logrus.New())

	c.OnRouteEnter(context.Background(), "/courts", "op-1")

	assert.Equal(t, []string{"op-1"}, store.releasedBy)
	assert.Empty(t, store.locks)
}

func TestCoordinator_ReleaseScopedToOperator(t *testing.T) {
	store := newFakeLockStore()
	store.locks["central-london"] = "op-1"
	store.locks["leeds"] = "op-2"
	c := NewCoordinator(store, testMatcher(), logrus.New())

	c.OnRouteEnter(context.Background(), "/bulk-update/anything", "op-1")

	assert.Equal(t, map[string]string{"leeds": "op-2"}, store.locks)
}

func TestCoordinator_NoReleaseInsideEditContext(t *testing.T) {
	store := newFakeLockStore()
	c := NewCoordinator(store, testMatcher(), logrus.New())

	c.OnRouteEnter(context.Background(), "/courts/any-slug/edit", "op-1")
	c.OnRouteEnter(context.Background(), "/courts", "")

	assert.Empty(t, store.releasedBy)
}

func TestCoordinator_ReleaseFailureIsSwallowed(t *testing.T) {
	store := newFakeLockStore()
	store.releaseErr = errors.New("lock store unreachable")
	c := NewCoordinator(store, testMatcher(), logrus.New())

	// Must not panic; the route handler proceeds regardless.
	c.OnRouteEnter(context.Background(), "/courts", "op-1")

	assert.Equal(t, []string{"op-1"}, store.releasedBy)
}

func TestCoordinator_AcquireForView(t *testing.T) {
	store := newFakeLockStore()
	c := NewCoordinator(store, testMatcher(), logrus.New())

	assert.False(t, c.AcquireForView(context.Background(), "leeds", "op-1"))
	assert.True(t, c.AcquireForView(context.Background(), "leeds", "op-2"))

	// Errors other than lock-held never block the view.
	store.acquireErr = errors.New("boom")
	assert.False(t, c.AcquireForView(context.Background(), "leeds", "op-3"))
}
