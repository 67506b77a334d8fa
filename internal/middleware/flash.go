// Package middleware holds the gin middleware and the cookie plumbing shared
// by the server-rendered pages.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// FlashCookie carries a one-shot notice to the next rendered page.
	FlashCookie = "mujair_flash"

	flashMaxAge = 60
)

// Flash is a one-shot notice surfaced above the next rendered form.
type Flash struct {
	Category string
	Message  string
}

// SetFlash queues a notice for the next rendered page.
func SetFlash(c *gin.Context, category, message string) {
	c.SetCookie(FlashCookie, category+"|"+message, flashMaxAge, "/", "", false, true)
}

// PopFlash returns the queued notice and clears it.
func PopFlash(c *gin.Context) []Flash {
	raw, err := c.Cookie(FlashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(FlashCookie, "", -1, "/", "", false, true)

	category, message, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	return []Flash{{Category: category, Message: message}}
}
