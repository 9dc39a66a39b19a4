package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spicevilla/catering/internal/flash"
	"github.com/spicevilla/catering/internal/metrics"
	"github.com/spicevilla/catering/internal/repo"
	"github.com/spicevilla/catering/internal/session"
)

type Middleware struct {
	Sessions *session.Manager
	Users    *repo.UserRepository
}

// RequireLogin resolves the session cookie to a full user record and turns
// anonymous requests into a redirect to the login page.
func (m *Middleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := m.Sessions.Resolve(c.Request().Context(), c, m.Users)
		if !ok {
			metrics.AuthzDeniedTotal.WithLabelValues("unauthenticated").Inc()
			flash.Set(c, "Please log in to continue")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		setCurrentUser(c, user)
		return next(c)
	}
}
