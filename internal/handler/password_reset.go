package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/internal/middleware"
)

// ForgotPasswordForm renders the reset request page.
func (h *Handler) ForgotPasswordForm(c *gin.Context) {
	c.HTML(http.StatusOK, "forgot_password.html", gin.H{
		"Flash": middleware.PopFlash(c),
	})
}

// ForgotPassword handles the reset request submit.
func (h *Handler) ForgotPassword(c *gin.Context) {
	err := h.engine.RequestPasswordReset(c.Request.Context(), c.PostForm("email"))
	switch {
	case err == nil:
		middleware.SetFlash(c, "success", "Link reset password telah dikirim ke email Anda!")
		c.Redirect(http.StatusFound, "/login")
		return
	case errors.Is(err, mujairAuth.ErrEmailNotFound):
		middleware.SetFlash(c, "error", "Email tidak terdaftar!")
	case errors.Is(err, mujairAuth.ErrEmailDispatchFailed):
		middleware.SetFlash(c, "error", fmt.Sprintf("Gagal mengirim email: %s", dispatchReason(err)))
	default:
		h.log.Error("password reset request failed", zap.Error(err))
		middleware.SetFlash(c, "error", "Terjadi kesalahan! Coba lagi.")
	}
	c.Redirect(http.StatusFound, "/forgot-password")
}

// ResetPasswordForm renders the new password form after re-checking the
// emailed token. Token failures route back to the request stage.
func (h *Handler) ResetPasswordForm(c *gin.Context) {
	resetToken := c.Param("token")

	if _, err := h.engine.InspectPasswordReset(c.Request.Context(), resetToken); err != nil {
		h.redirectResetFailure(c, err)
		return
	}

	c.HTML(http.StatusOK, "reset_password.html", gin.H{
		"Flash": middleware.PopFlash(c),
	})
}

// ResetPassword handles the new password submit.
func (h *Handler) ResetPassword(c *gin.Context) {
	resetToken := c.Param("token")

	err := h.engine.ConfirmPasswordReset(c.Request.Context(), resetToken, c.PostForm("password"), c.PostForm("confirm_password"))
	switch {
	case err == nil:
		middleware.SetFlash(c, "success", "Password berhasil direset! Silakan login.")
		c.Redirect(http.StatusFound, "/login")
		return
	case errors.Is(err, mujairAuth.ErrSessionInvalidationFailed):
		// The credential is already swapped; stale sessions die when their
		// TTL runs out.
		h.log.Warn("session invalidation failed after reset", zap.Error(err))
		middleware.SetFlash(c, "success", "Password berhasil direset! Silakan login.")
		c.Redirect(http.StatusFound, "/login")
		return
	case errors.Is(err, mujairAuth.ErrTokenExpired), errors.Is(err, mujairAuth.ErrTokenInvalid):
		h.redirectResetFailure(c, err)
		return
	case errors.Is(err, mujairAuth.ErrPasswordMismatch):
		middleware.SetFlash(c, "error", "Password tidak cocok!")
	case errors.Is(err, mujairAuth.ErrPasswordPolicy):
		middleware.SetFlash(c, "error", policyReason(err))
	default:
		if !errors.Is(err, mujairAuth.ErrEmailNotFound) {
			h.log.Error("password reset failed", zap.Error(err))
		}
		middleware.SetFlash(c, "error", "Gagal reset password! Coba lagi.")
	}
	c.Redirect(http.StatusFound, "/reset-password/"+url.PathEscape(resetToken))
}

// redirectResetFailure sends token-stage failures back to the request stage
// with the matching notice.
func (h *Handler) redirectResetFailure(c *gin.Context, err error) {
	if errors.Is(err, mujairAuth.ErrTokenExpired) {
		middleware.SetFlash(c, "error", "Link reset password sudah expired!")
	} else {
		middleware.SetFlash(c, "error", "Link reset password tidak valid!")
	}
	c.Redirect(http.StatusFound, "/forgot-password")
}
