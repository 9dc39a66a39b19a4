package httpserver

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/spicevilla/catering/internal/flash"
	mwauth "github.com/spicevilla/catering/internal/middleware/auth"
	"github.com/spicevilla/catering/web"
)

// Renderer plugs the embedded template set into Echo.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// render fills in the page chrome every template expects: the pending flash
// message and the viewer, when one can be resolved.
func (h *Handlers) render(c echo.Context, status int, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = flash.Pop(c)
	}
	if _, ok := data["User"]; !ok {
		if u, ok := mwauth.CurrentUser(c); ok {
			data["User"] = u
		} else if u, ok := h.Sessions.Resolve(c.Request().Context(), c, h.Users); ok {
			data["User"] = u
		}
	}
	return c.Render(status, name, data)
}
