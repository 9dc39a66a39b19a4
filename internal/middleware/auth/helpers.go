package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/spicevilla/catering/internal/models"
)

const userContextKey = "currentUser"

// CurrentUser returns the user materialized by RequireLogin or AdminOnly for
// this request.
func CurrentUser(c echo.Context) (*models.User, bool) {
	u, ok := c.Get(userContextKey).(*models.User)
	return u, ok
}

func setCurrentUser(c echo.Context, u *models.User) {
	c.Set(userContextKey, u)
}
