package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/internal/middleware"
)

// RegisterForm renders the registration page, preselecting the role picked
// on the landing page.
func (h *Handler) RegisterForm(c *gin.Context) {
	role := c.Query("role")
	if !mujairAuth.ValidRole(mujairAuth.Role(role)) {
		role = ""
	}

	c.HTML(http.StatusOK, "register.html", gin.H{
		"Role":  role,
		"Flash": middleware.PopFlash(c),
	})
}

// Register handles the registration form submit.
func (h *Handler) Register(c *gin.Context) {
	email := c.PostForm("email")
	role := mujairAuth.Role(c.PostForm("role"))

	err := h.engine.RequestRegistration(c.Request.Context(), email, role)
	switch {
	case err == nil:
		middleware.SetFlash(c, "success", "Email verifikasi telah dikirim! Cek inbox Anda.")
		c.Redirect(http.StatusFound, "/login")
		return
	case errors.Is(err, mujairAuth.ErrInvalidInput):
		if strings.Contains(email, "@") {
			middleware.SetFlash(c, "error", "Role tidak valid!")
		} else {
			middleware.SetFlash(c, "error", "Email tidak valid!")
		}
	case errors.Is(err, mujairAuth.ErrDuplicateEmail):
		middleware.SetFlash(c, "error", "Email sudah terdaftar!")
	case errors.Is(err, mujairAuth.ErrEmailDispatchFailed):
		middleware.SetFlash(c, "error", fmt.Sprintf("Gagal mengirim email: %s", dispatchReason(err)))
	default:
		h.log.Error("registration request failed", zap.Error(err))
		middleware.SetFlash(c, "error", "Gagal menyimpan data registrasi!")
	}
	c.Redirect(http.StatusFound, "/register")
}
