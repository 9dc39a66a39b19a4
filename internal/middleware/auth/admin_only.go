package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spicevilla/catering/internal/flash"
	"github.com/spicevilla/catering/internal/metrics"
	"github.com/spicevilla/catering/internal/models"
)

// AdminOnly admits only authenticated admins. Everyone else is redirected
// away before the protected handler runs. The role switch is exhaustive so
// an unexpected value in the role column denies rather than admits.
func (m *Middleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := m.Sessions.Resolve(c.Request().Context(), c, m.Users)
		if !ok {
			metrics.AuthzDeniedTotal.WithLabelValues("unauthenticated").Inc()
			flash.Set(c, "Please log in to continue")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		switch user.Role {
		case models.RoleAdmin:
			setCurrentUser(c, user)
			return next(c)
		case models.RoleCustomer:
			metrics.AuthzDeniedTotal.WithLabelValues("forbidden").Inc()
			flash.Set(c, "Access denied. Admin privileges required.")
			return c.Redirect(http.StatusSeeOther, "/")
		default:
			metrics.AuthzDeniedTotal.WithLabelValues("invalid_role").Inc()
			flash.Set(c, "Access denied.")
			return c.Redirect(http.StatusSeeOther, "/")
		}
	}
}
