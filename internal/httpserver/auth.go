package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spicevilla/catering/internal/flash"
	"github.com/spicevilla/catering/internal/metrics"
	"github.com/spicevilla/catering/internal/repo"
	"github.com/spicevilla/catering/internal/service"
)

func (h *Handlers) RegisterForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "register.html", echo.Map{"Title": "Register"})
}

// Register handles the registration form. Every failure maps to a flash
// message plus a redirect back to the form; nothing here is fatal.
func (h *Handlers) Register(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	email := c.FormValue("email")
	password := c.FormValue("password")

	_, err := h.Auth.Register(c.Request().Context(), username, email, password)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.Inc()
		flash.Set(c, "Registration successful! Please login.")
		return c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, repo.ErrDuplicateUsername):
		flash.Set(c, "Username already exists")
		return c.Redirect(http.StatusSeeOther, "/register")
	case errors.Is(err, repo.ErrDuplicateEmail):
		flash.Set(c, "Email already registered")
		return c.Redirect(http.StatusSeeOther, "/register")
	case errors.Is(err, service.ErrValidation):
		flash.Set(c, err.Error())
		return c.Redirect(http.StatusSeeOther, "/register")
	default:
		h.Log.Error().Err(err).Str("handler", "register").Msg("registration failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "registration failed")
	}
}

func (h *Handlers) LoginForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "login.html", echo.Map{"Title": "Login"})
}

func (h *Handlers) Login(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	user, err := h.Auth.Login(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failed").Inc()
			flash.Set(c, "Invalid username or password")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		h.Log.Error().Err(err).Str("handler", "login").Msg("login failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	cookie, err := h.Sessions.Issue(user.ID)
	if err != nil {
		h.Log.Error().Err(err).Str("handler", "login").Msg("session issue failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}
	c.SetCookie(cookie)
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	flash.Set(c, "Logged in successfully!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout runs behind RequireLogin, so an anonymous caller never reaches it.
func (h *Handlers) Logout(c echo.Context) error {
	c.SetCookie(h.Sessions.Clear())
	flash.Set(c, "Logged out successfully!")
	return c.Redirect(http.StatusSeeOther, "/")
}
