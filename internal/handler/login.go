package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/internal/middleware"
	authmw "github.com/TambakLabs/mujairAuth/middleware"
)

// LoginForm renders the login page.
func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flash": middleware.PopFlash(c),
	})
}

// Login handles the login submit and routes to the session role's dashboard.
func (h *Handler) Login(c *gin.Context) {
	sess, err := h.engine.Login(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if errors.Is(err, mujairAuth.ErrInvalidCredentials) {
			middleware.SetFlash(c, "error", "Username atau password salah!")
		} else {
			h.log.Error("login failed", zap.Error(err))
			middleware.SetFlash(c, "error", "Gagal membuat sesi! Coba lagi.")
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authmw.SessionCookie, sess.SessionID, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard/"+sess.Role)
}
