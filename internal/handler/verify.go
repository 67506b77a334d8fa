package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/internal/middleware"
)

// VerifyForm renders the account creation form after re-checking the emailed
// token. Token failures route back to the registration entry point.
func (h *Handler) VerifyForm(c *gin.Context) {
	verificationToken := c.Param("token")

	if _, err := h.engine.InspectRegistration(c.Request.Context(), verificationToken); err != nil {
		h.redirectVerifyFailure(c, err)
		return
	}

	c.HTML(http.StatusOK, "verify.html", gin.H{
		"Flash": middleware.PopFlash(c),
	})
}

// Verify handles the account creation submit. The token is re-verified
// inside the engine; the GET-side inspection carries no authority.
func (h *Handler) Verify(c *gin.Context) {
	verificationToken := c.Param("token")

	_, err := h.engine.ConfirmRegistration(c.Request.Context(), mujairAuth.ConfirmRegistrationRequest{
		Token:           verificationToken,
		Username:        c.PostForm("username"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm_password"),
	})
	switch {
	case err == nil:
		middleware.SetFlash(c, "success", "Registrasi berhasil! Silakan login.")
		c.Redirect(http.StatusFound, "/login")
		return
	case errors.Is(err, mujairAuth.ErrTokenExpired),
		errors.Is(err, mujairAuth.ErrTokenInvalid),
		errors.Is(err, mujairAuth.ErrPendingNotFound):
		h.redirectVerifyFailure(c, err)
		return
	case errors.Is(err, mujairAuth.ErrInvalidUsername):
		middleware.SetFlash(c, "error", "Username minimal 3 karakter!")
	case errors.Is(err, mujairAuth.ErrUsernameTaken):
		middleware.SetFlash(c, "error", "Username sudah digunakan!")
	case errors.Is(err, mujairAuth.ErrPasswordMismatch):
		middleware.SetFlash(c, "error", "Password tidak cocok!")
	case errors.Is(err, mujairAuth.ErrPasswordPolicy):
		middleware.SetFlash(c, "error", policyReason(err))
	default:
		h.log.Error("account creation failed", zap.Error(err))
		middleware.SetFlash(c, "error", "Gagal membuat akun! Coba lagi.")
	}
	c.Redirect(http.StatusFound, "/verify/"+url.PathEscape(verificationToken))
}

// redirectVerifyFailure sends token-stage failures back to the registration
// entry point with the matching notice.
func (h *Handler) redirectVerifyFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mujairAuth.ErrTokenExpired):
		middleware.SetFlash(c, "error", "Link verifikasi sudah expired!")
	case errors.Is(err, mujairAuth.ErrTokenInvalid):
		middleware.SetFlash(c, "error", "Link verifikasi tidak valid!")
	default:
		if !errors.Is(err, mujairAuth.ErrPendingNotFound) {
			h.log.Error("registration inspection failed", zap.Error(err))
		}
		middleware.SetFlash(c, "error", "Data pendaftaran tidak ditemukan!")
	}
	c.Redirect(http.StatusFound, "/register")
}
