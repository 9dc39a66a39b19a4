package httpserver

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/spicevilla/catering/internal/logging"
	mwauth "github.com/spicevilla/catering/internal/middleware/auth"
)

type Deps struct {
	Handlers *Handlers
	AuthMW   *mwauth.Middleware
	Log      zerolog.Logger

	// Metrics mounts the echoprometheus middleware and the /metrics
	// endpoint. Off in tests: the middleware registers collectors in the
	// default registry and a second registration panics.
	Metrics bool
}

// New builds the Echo instance with the template renderer, middleware stack
// and all routes registered.
func New(d *Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(logging.RequestLogger(d.Log))
	if d.Metrics {
		e.Use(echoprometheus.NewMiddleware("catering"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	h := d.Handlers
	e.GET("/", h.Index)
	e.GET("/menu", h.MenuPage)

	e.GET("/register", h.RegisterForm)
	e.POST("/register", h.Register)
	e.GET("/login", h.LoginForm)
	e.POST("/login", h.Login)
	e.GET("/logout", h.Logout, d.AuthMW.RequireLogin)

	e.GET("/admin", h.AdminPage, d.AuthMW.AdminOnly)

	return e, nil
}
