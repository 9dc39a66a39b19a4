// Package flash carries one-shot user-facing messages across a redirect in a
// short-lived cookie: set on the redirecting response, read and cleared by
// the next rendered page.
package flash

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

const cookieName = "flash"

// Set queues msg for the next rendered page.
func Set(c echo.Context, msg string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the queued message, if any, and clears it.
func Pop(c echo.Context) string {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return msg
}
