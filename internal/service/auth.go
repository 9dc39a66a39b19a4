package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/spicevilla/catering/internal/hash"
	"github.com/spicevilla/catering/internal/models"
	"github.com/spicevilla/catering/internal/repo"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type registrationInput struct {
	Username string `validate:"required,min=3,max=32"`
	Email    string `validate:"required,email,max=120"`
	Password string `validate:"required,min=6,max=72"`
}

type AuthService struct {
	users    *repo.UserRepository
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthService(users *repo.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, validate: validator.New(), log: log}
}

// Register creates a customer account. Uniqueness of username and email is
// decided by the store's atomic create, not by a prior read.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	in := registrationInput{
		Username: strings.TrimSpace(username),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: password,
	}
	if err := s.checkInput(in); err != nil {
		return nil, err
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: pwHash,
		Role:         models.RoleCustomer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords both come
// back as ErrInvalidCredentials so the caller never learns which half was
// wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	s.log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("login ok")
	return user, nil
}
