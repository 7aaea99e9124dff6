package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/laodict/laodict-admin/internal/services"
	"github.com/laodict/laodict-admin/internal/utils"
	"gorm.io/gorm"
)

// UserHandler handles console user routes
type UserHandler struct {
	DB *gorm.DB
}

// ListUsers handles GET /api/admin/users
// @Summary List console users
// @Description Get a page of users ordered by creation time
// @Tags Users
// @Accept json
// @Produce json
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	_, page, limit := parsePaging(c)

	users, pagination, err := services.ListUsers(h.DB, page, limit)
	if err != nil {
		log.Printf("list users failed: %v", err)
		return utils.ErrorResponse(c, "Failed to fetch users", fiber.StatusInternalServerError, "listUsers")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users":      users,
		"pagination": pagination,
	})
}

// CreateUser handles POST /api/admin/users
// @Summary Create a console user
// @Description Create a user with a bcrypt-hashed password
// @Tags Users
// @Accept json
// @Produce json
// @Param body body object true "Email and password"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "users.validation.input")
	}

	if strings.TrimSpace(body.Email) == "" {
		return utils.ErrorResponse(c, "Email is required", fiber.StatusBadRequest, "users.validation.input")
	}
	if body.Password == "" {
		return utils.ErrorResponse(c, "Password is required", fiber.StatusBadRequest, "users.validation.input")
	}

	user, err := services.CreateUser(h.DB, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			return utils.ErrorResponse(c, "Email already exists", fiber.StatusConflict, "users.conflict")
		}
		log.Printf("create user failed: %v", err)
		return utils.ErrorResponse(c, "Failed to create user", fiber.StatusInternalServerError, "createUser")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// DeleteUser handles DELETE /api/admin/users/:id
// @Summary Delete a console user
// @Description Delete a user. SuperAdmin accounts are refused.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 403 {object} utils.MutationResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := services.DeleteUser(h.DB, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		if errors.Is(err, services.ErrProtectedRole) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Cannot delete a SuperAdmin account",
			})
		}
		log.Printf("delete user %s failed: %v", id, err)
		return utils.ErrorResponse(c, "Failed to delete user", fiber.StatusInternalServerError, "deleteUser")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
