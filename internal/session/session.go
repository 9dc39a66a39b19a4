// Package session tracks the authenticated identity across requests with a
// signed cookie. The token carries nothing but the user id and expiry; the
// full user record is re-read from the store on every request, so a stale
// token for a vanished user degrades to anonymous.
package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/spicevilla/catering/internal/models"
	"github.com/spicevilla/catering/internal/repo"
)

const CookieName = "session"

type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: secret, ttl: ttl}
}

// Issue mints the session cookie for a freshly authenticated user.
func (m *Manager) Issue(userID uint) (*http.Cookie, error) {
	now := time.Now()
	exp := now.Add(m.ttl)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}
	return newCookie(token, exp), nil
}

// Clear returns an expired tombstone cookie that logs the client out.
func (m *Manager) Clear() *http.Cookie {
	return newCookie("", time.Now().Add(-time.Hour))
}

func newCookie(value string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// UserID extracts the user id from the request cookie. The second return is
// false for missing, malformed, tampered or expired tokens.
func (m *Manager) UserID(c echo.Context) (uint, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}

// Resolve materializes the full user behind the session. A valid token whose
// user no longer exists resolves to anonymous.
func (m *Manager) Resolve(ctx context.Context, c echo.Context, users *repo.UserRepository) (*models.User, bool) {
	id, ok := m.UserID(c)
	if !ok {
		return nil, false
	}
	user, err := users.FindByID(ctx, id)
	if err != nil {
		return nil, false
	}
	return user, true
}
