package session

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/spicevilla/catering/internal/models"
	"github.com/spicevilla/catering/internal/repo"
)

func contextWithCookie(cookie *http.Cookie) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func newUserRepo(t *testing.T) *repo.UserRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.User{}))
	return repo.NewUserRepository(database)
}

func TestManager_IssueAndResolveUserID(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-session-secret"), time.Hour)

	cookie, err := m.Issue(42)
	require.NoError(t, err)
	require.Equal(t, CookieName, cookie.Name)
	require.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	id, ok := m.UserID(contextWithCookie(cookie))
	require.True(t, ok)
	assert.EqualValues(t, 42, id)
}

func TestManager_NoCookie_Anonymous(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-session-secret"), time.Hour)

	_, ok := m.UserID(contextWithCookie(nil))
	assert.False(t, ok)
}

func TestManager_TamperedToken_Anonymous(t *testing.T) {
	t.Parallel()

	issuer := NewManager([]byte("secret-one"), time.Hour)
	verifier := NewManager([]byte("secret-two"), time.Hour)

	cookie, err := issuer.Issue(42)
	require.NoError(t, err)

	_, ok := verifier.UserID(contextWithCookie(cookie))
	assert.False(t, ok)

	cookie.Value += "x"
	_, ok = issuer.UserID(contextWithCookie(cookie))
	assert.False(t, ok)
}

func TestManager_ExpiredToken_Anonymous(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-session-secret"), time.Millisecond)

	cookie, err := m.Issue(42)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, ok := m.UserID(contextWithCookie(cookie))
	assert.False(t, ok)
}

func TestManager_Clear_IsTombstone(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-session-secret"), time.Hour)

	cookie := m.Clear()
	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))

	_, ok := m.UserID(contextWithCookie(cookie))
	assert.False(t, ok)
}

func TestManager_Resolve_MaterializesUser(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-session-secret"), time.Hour)
	users := newUserRepo(t)
	ctx := context.Background()

	u := &models.User{Username: "alice", Email: "alice@x.com", PasswordHash: "h", Role: models.RoleCustomer}
	require.NoError(t, users.Create(ctx, u))

	cookie, err := m.Issue(u.ID)
	require.NoError(t, err)

	resolved, ok := m.Resolve(ctx, contextWithCookie(cookie), users)
	require.True(t, ok)
	assert.Equal(t, "alice", resolved.Username)
}

func TestManager_Resolve_DeletedUser_Anonymous(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-session-secret"), time.Hour)
	users := newUserRepo(t)

	// Valid signature, but no such user behind it.
	cookie, err := m.Issue(999)
	require.NoError(t, err)

	resolved, ok := m.Resolve(context.Background(), contextWithCookie(cookie), users)
	assert.False(t, ok)
	assert.Nil(t, resolved)
}
