package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/laodict/laodict-admin/internal/services"
	"github.com/laodict/laodict-admin/internal/types"
	"gorm.io/gorm"
)

// RequireUser validates the session cookie and loads the user into the
// request context under Locals("user").
func RequireUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := c.Cookies(services.SessionCookie)
		if session == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Unauthorized",
				Type:    "admin.authorization",
			}
		}

		user, err := services.GetUserByID(db, session)
		if err != nil {
			return err
		}
		if user == nil {
			services.ClearSessionCookie(c)
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Unauthorized",
				Type:    "admin.authorization",
			}
		}

		c.Locals("user", user)
		return c.Next()
	}
}
