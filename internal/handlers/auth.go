// auth.go
//
// Administrative API for the Lao dictionary.
// Copyright (c) 2026 LaoDict Project
//
// This file is part of laodict-admin.
// laodict-admin is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// laodict-admin is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with laodict-admin.
// If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/laodict/laodict-admin/internal/models"
	"github.com/laodict/laodict-admin/internal/services"
	"github.com/laodict/laodict-admin/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles session routes
type AuthHandler struct {
	DB *gorm.DB
	// CookieSecure marks the session cookie Secure; off for local development.
	CookieSecure bool
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Verify credentials and set the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object true "Email and password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}

	if strings.TrimSpace(body.Email) == "" || body.Password == "" {
		return utils.ErrorResponse(c, "Email and password are required", fiber.StatusBadRequest, "auth.validation.input")
	}

	user, err := services.Login(h.DB, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid email or password",
			})
		}
		log.Printf("login failed: %v", err)
		return utils.ErrorResponse(c, "Login failed", fiber.StatusInternalServerError, "login")
	}

	services.SetSessionCookie(c, user.ID, h.CookieSecure)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Expire the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.MutationResponseStruct
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	services.ClearSessionCookie(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// Me handles GET /api/auth/me
// @Summary Current user
// @Description Resolve the session cookie to the logged-in user
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || user == nil {
		return utils.UnauthorizedResponse(c)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": user,
	})
}
