package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequestVersion reads the X-Api-Version header, normalizes short forms and
// stores the result under Locals("apiVersion") for handlers that care.
func RequestVersion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", "1.0.0")
		if version == "1.0" || version == "1" {
			version = "1.0.0"
		}

		c.Locals("apiVersion", version)
		return c.Next()
	}
}
