package middleware

import (
	"context"
	"net/http"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/session"
)

// SessionCookie is the cookie name the web layer stores the session ID in.
// Embedders wiring their own handlers should reuse it so the guards and the
// login handler agree.
const SessionCookie = "mujair_session"

// SessionFromContext returns the validated session a guard injected into the
// request context.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	return mujairAuth.SessionFromContext(ctx)
}

// RequireSession rejects requests that do not carry a valid session cookie.
// The validated session is injected into the request context.
func RequireSession(engine *mujairAuth.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := validateRequest(engine, r)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(mujairAuth.WithSession(r.Context(), sess)))
		})
	}
}

func validateRequest(engine *mujairAuth.Engine, r *http.Request) (*session.Session, bool) {
	if engine == nil {
		return nil, false
	}

	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	sess, err := engine.Validate(r.Context(), cookie.Value)
	if err != nil {
		return nil, false
	}

	return sess, true
}
