package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parsePaging extracts the shared list query parameters.
func parsePaging(c *fiber.Ctx) (search string, page, limit int) {
	search = c.Query("search")
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 10)
	return search, page, limit
}

// parseID parses the :id path parameter as an unsigned integer.
func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}
