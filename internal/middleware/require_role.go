package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	authmw "github.com/TambakLabs/mujairAuth/middleware"
)

// SessionKey is the gin context key the validated session is stored under.
const SessionKey = "session"

// RequireRole gates a dashboard route on a valid session bound to role.
// Failures flash the login prompt and redirect to the login page.
func RequireRole(engine *mujairAuth.Engine, role mujairAuth.Role, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(authmw.SessionCookie)
		if err != nil || sessionID == "" {
			redirectToLogin(c)
			return
		}

		sess, err := engine.Validate(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, mujairAuth.ErrSessionUnavailable) {
				logger.Error("session validation unavailable", zap.Error(err))
			}
			redirectToLogin(c)
			return
		}

		if sess.Role != string(role) {
			redirectToLogin(c)
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	SetFlash(c, "error", "Silakan login terlebih dahulu!")
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
