package services

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/laodict/laodict-admin/internal/models"
	"gorm.io/gorm"
)

// SessionCookie is the HTTP-only session cookie. Its value is the user id,
// treated as an opaque token by clients.
const SessionCookie = "auth_session"

// SessionMaxAge is the cookie lifetime.
const SessionMaxAge = 7 * 24 * time.Hour

// Login verifies credentials against the users table. An unknown email and a
// wrong password produce the same ErrInvalidCredentials.
func Login(db *gorm.DB, email, password string) (*models.User, error) {
	user, err := GetUserByEmail(db, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !ComparePassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// SetSessionCookie attaches the session cookie to the response.
func SetSessionCookie(c *fiber.Ctx, userID string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    userID,
		Path:     "/",
		MaxAge:   int(SessionMaxAge.Seconds()),
		Expires:  time.Now().Add(SessionMaxAge),
		Secure:   secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
