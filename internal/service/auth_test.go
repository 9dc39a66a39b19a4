package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/spicevilla/catering/internal/models"
	"github.com/spicevilla/catering/internal/repo"
)

func newTestAuthService(t *testing.T) (*AuthService, *repo.UserRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.User{}))

	users := repo.NewUserRepository(database)
	return NewAuthService(users, zerolog.Nop()), users
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "alice@x.com", "pw123secret")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, models.RoleCustomer, created.Role)
	assert.NotEqual(t, "pw123secret", created.PasswordHash)

	user, err := svc.Login(ctx, "alice", "pw123secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc, users := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@x.com", "pw123secret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "second@x.com", "pw123secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrDuplicateUsername)

	count, err := users.CountByRole(ctx, models.RoleCustomer)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, users := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@x.com", "pw123secret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bob", "alice@x.com", "pw123secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrDuplicateEmail)

	count, err := users.CountByRole(ctx, models.RoleCustomer)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAuthService_Register_LowercasesEmail(t *testing.T) {
	t.Parallel()

	svc, users := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "Alice@X.com", "pw123secret")
	require.NoError(t, err)

	user, err := users.FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{name: "empty username", username: "", email: "a@x.com", password: "pw123secret"},
		{name: "short username", username: "ab", email: "a@x.com", password: "pw123secret"},
		{name: "missing email", username: "alice", email: "", password: "pw123secret"},
		{name: "bad email", username: "alice", email: "not-an-email", password: "pw123secret"},
		{name: "short password", username: "alice", email: "a@x.com", password: "pw"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Register(ctx, tt.username, tt.email, tt.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@x.com", "pw123secret")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "alice", "wrong-password")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)

	user, err := svc.Login(context.Background(), "nobody", "pw123secret")
	require.Error(t, err)
	assert.Nil(t, user)
	// Same error as a wrong password, so responses cannot enumerate users.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
