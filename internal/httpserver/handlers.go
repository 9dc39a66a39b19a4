package httpserver

import (
	"github.com/rs/zerolog"

	"github.com/spicevilla/catering/internal/repo"
	"github.com/spicevilla/catering/internal/service"
	"github.com/spicevilla/catering/internal/session"
)

type Handlers struct {
	Auth     *service.AuthService
	Menu     *service.MenuService
	Sessions *session.Manager
	Users    *repo.UserRepository
	Log      zerolog.Logger
}
