package composables

import (
	"context"
	"crypto/subtle"

	"github.com/openjustice/courtadmin/pkg/constants"
	"github.com/openjustice/courtadmin/pkg/session"
)

func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, constants.SessionKey, sess)
}

// UseSession returns the operator session from the context.
func UseSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(constants.SessionKey).(*session.Session)
	return sess, ok
}

// UseOperatorSubject returns the stable per-operator identifier.
func UseOperatorSubject(ctx context.Context) (string, bool) {
	sess, ok := UseSession(ctx)
	if !ok {
		return "", false
	}
	return sess.Subject, true
}

// VerifyCSRF compares a submitted token against the session token. It must be
// called before any posted body is acted on.
func VerifyCSRF(ctx context.Context, submitted string) bool {
	sess, ok := UseSession(ctx)
	if !ok || sess.CSRFToken == "" || submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(sess.CSRFToken), []byte(submitted)) == 1
}
