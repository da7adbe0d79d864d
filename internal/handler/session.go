package handler

import (
	"time"

	"fwsr-hub/internal/util"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionCookieName = "fwsr_session"
	sessionCookieTTL  = 30 * 24 * time.Hour
)

// ensureSessionID returns the browser session id from the request cookie,
// minting and setting a new one when absent. The id is an opaque ULID; all
// session state lives server-side keyed by it.
func ensureSessionID(c *fiber.Ctx) string {
	if sid := c.Cookies(sessionCookieName); sid != "" {
		return sid
	}

	sid := util.NewULID()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    sid,
		Expires:  time.Now().Add(sessionCookieTTL),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})
	return sid
}
