package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewHTTPErrorHandler renders the error page for anything the handlers did
// not recover themselves. Unexpected errors are logged with their real cause
// and shown to the client as a generic message.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprintf("%v", he.Message)
		} else {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		data := echo.Map{"Title": "Error", "Status": code, "Message": msg}
		if rerr := c.Render(code, "error.html", data); rerr != nil {
			_ = c.String(code, msg)
		}
	}
}
