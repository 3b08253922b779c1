package editlock

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/openjustice/courtadmin/pkg/metrics"
	"github.com/openjustice/courtadmin/pkg/routing"
)

// Coordinator decides, per incoming request, whether an edit-lock release is
// owed. It holds no lock state of its own; release is best-effort and a
// failed release is never surfaced to the operator (the stale lock expires on
// the store's own TTL).
type Coordinator struct {
	store   LockStore
	matcher *routing.EscapeMatcher
	log     *logrus.Logger
}

func NewCoordinator(store LockStore, matcher *routing.EscapeMatcher, log *logrus.Logger) *Coordinator {
	return &Coordinator{store: store, matcher: matcher, log: log}
}

// OnRouteEnter fires a release when the path is an escape destination.
// It always returns; failures are logged and swallowed.
func (c *Coordinator) OnRouteEnter(ctx context.Context, path, subject string) {
	if subject == "" {
		return
	}
	if !c.matcher.IsEscape(path) {
		return
	}
	if err := c.store.ReleaseAllHeldBy(ctx, subject); err != nil {
		metrics.LockReleasesTotal.WithLabelValues("error").Inc()
		if c.log != nil {
			c.log.WithError(err).WithFields(logrus.Fields{
				"path":    path,
				"subject": subject,
			}).Warn("edit-lock release failed; lock left to expire")
		}
		return
	}
	metrics.LockReleasesTotal.WithLabelValues("released").Inc()
}

// AcquireForView takes the lock when an operator opens an editable tab.
// Holding the lock is not a precondition for editing; failure to acquire is
// reported so the view can warn, never to block.
func (c *Coordinator) AcquireForView(ctx context.Context, parentID, subject string) (heldByOther bool) {
	if subject == "" {
		return false
	}
	err := c.store.Acquire(ctx, parentID, subject)
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrLockHeld):
		if c.log != nil {
			holder, ok, herr := c.store.HeldBy(ctx, parentID)
			if herr == nil && ok {
				c.log.WithFields(logrus.Fields{
					"parent": parentID,
					"holder": holder,
				}).Debug("edit lock held by another operator")
			}
		}
		return true
	default:
		if c.log != nil {
			c.log.WithError(err).WithField("parent", parentID).Warn("edit-lock acquire failed")
		}
		return false
	}
}
