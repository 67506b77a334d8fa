package mujairAuth

import (
	"context"

	"github.com/TambakLabs/mujairAuth/session"
)

type sessionContextKey struct{}

// WithSession attaches a validated session to ctx. The HTTP guards in the
// middleware package use it to hand the session to downstream handlers;
// embedders wiring their own guards should do the same so
// [SessionFromContext] keeps working.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext returns the session a guard attached to ctx, or false
// when the request never passed a guard.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	if ctx == nil {
		return nil, false
	}

	sess, ok := ctx.Value(sessionContextKey{}).(*session.Session)
	return sess, ok
}
