package middleware

import (
	"net/http"

	mujairAuth "github.com/TambakLabs/mujairAuth"
)

// RequireRole rejects requests whose session is missing, invalid, or bound
// to a different role than the one gating the route.
func RequireRole(engine *mujairAuth.Engine, role mujairAuth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := validateRequest(engine, r)
			if !ok || sess.Role != string(role) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(mujairAuth.WithSession(r.Context(), sess)))
		})
	}
}
