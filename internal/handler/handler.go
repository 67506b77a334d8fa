// Package handler implements the gin handlers behind the server-rendered
// registration, login, and dashboard pages. Flash wording and redirect
// targets follow the Geboy Mujair application flows.
package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/internal/middleware"
	authmw "github.com/TambakLabs/mujairAuth/middleware"
)

// Handler serves the server-rendered pages on top of the Engine.
type Handler struct {
	engine *mujairAuth.Engine
	log    *zap.Logger
}

// New builds a [Handler].
func New(engine *mujairAuth.Engine, log *zap.Logger) *Handler {
	return &Handler{engine: engine, log: log}
}

// Index renders the landing page with the role cards.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flash": middleware.PopFlash(c),
	})
}

// Logout destroys the browser session and returns to the landing page.
func (h *Handler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(authmw.SessionCookie); err == nil && sessionID != "" {
		if err := h.engine.Logout(c.Request.Context(), sessionID); err != nil {
			h.log.Warn("logout failed", zap.Error(err))
		}
	}
	c.SetCookie(authmw.SessionCookie, "", -1, "/", "", false, true)

	middleware.SetFlash(c, "success", "Anda telah logout!")
	c.Redirect(http.StatusFound, "/")
}

// policyReason strips the sentinel prefix so the form shows the bare rule
// the password failed.
func policyReason(err error) string {
	return strings.TrimPrefix(err.Error(), mujairAuth.ErrPasswordPolicy.Error()+": ")
}

// dispatchReason strips the sentinel prefix so the flash shows the
// underlying mail failure.
func dispatchReason(err error) string {
	return strings.TrimPrefix(err.Error(), mujairAuth.ErrEmailDispatchFailed.Error()+": ")
}
