package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handlers) Index(c echo.Context) error {
	return h.render(c, http.StatusOK, "index.html", echo.Map{"Title": "Home"})
}

func (h *Handlers) MenuPage(c echo.Context) error {
	items, err := h.Menu.List(c.Request().Context())
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "menu.html", echo.Map{"Title": "Menu", "Items": items})
}

// AdminPage is mounted behind AdminOnly; by the time it runs the viewer is a
// verified admin.
func (h *Handlers) AdminPage(c echo.Context) error {
	items, err := h.Menu.List(c.Request().Context())
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "admin.html", echo.Map{"Title": "Admin", "Items": items})
}
