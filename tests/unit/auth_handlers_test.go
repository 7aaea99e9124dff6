// auth_handlers_test.go
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

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/laodict/laodict-admin/internal/handlers"
	"github.com/laodict/laodict-admin/internal/middleware"
	"github.com/laodict/laodict-admin/internal/models"
	"github.com/laodict/laodict-admin/internal/services"
	"github.com/laodict/laodict-admin/tests/helpers"
	"gorm.io/gorm"
)

// newAuthApp wires the session routes with the real session middleware
func newAuthApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	handler := &handlers.AuthHandler{DB: db}
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/auth/logout", handler.Logout)
	app.Get("/api/auth/me", middleware.RequireUser(db), handler.Me)
	return app
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp(db)

	helpers.CreateTestUser(t, db, "login@example.com", "right-password", models.RoleAdmin)

	body, _ := json.Marshal(map[string]string{
		"email":    "login@example.com",
		"password": "wrong-password",
	})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)

	// No session cookie on failure
	if cookie := helpers.SessionCookie(resp, services.SessionCookie); cookie != nil && cookie.Value != "" {
		t.Error("Session cookie set on failed login")
	}

	var result struct {
		Success bool `json:"success"`
	}
	helpers.ParseJSON(t, resp, &result)
	if result.Success {
		t.Error("Expected success false")
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp(db)

	body, _ := json.Marshal(map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)
}

func TestLoginSessionFlow(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp(db)

	password := helpers.GeneratePassword()
	user := helpers.CreateTestUser(t, db, "session@example.com", password, models.RoleAdmin)

	body, _ := json.Marshal(map[string]string{
		"email":    "session@example.com",
		"password": password,
	})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	cookie := helpers.SessionCookie(resp, services.SessionCookie)
	if cookie == nil || cookie.Value != user.ID {
		t.Fatalf("Expected session cookie with user id, got %v", cookie)
	}
	if !cookie.HttpOnly {
		t.Error("Session cookie not HTTP-only")
	}

	// The cookie resolves to the user on /me
	req = httptest.NewRequest("GET", "/api/auth/me", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var me struct {
		User models.User `json:"user"`
	}
	helpers.ParseJSON(t, resp, &me)
	if me.User.ID != user.ID || me.User.Email != "session@example.com" {
		t.Errorf("Unexpected /me user %+v", me.User)
	}
}

func TestMeWithoutSession(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp(db)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)
}

func TestMeWithStaleSession(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp(db)

	// A cookie for a deleted account is rejected
	user := helpers.CreateTestUser(t, db, "gone@example.com", helpers.GeneratePassword(), models.RoleAdmin)
	if err := db.Delete(&models.User{}, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: services.SessionCookie, Value: user.ID})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)
}

func TestLogoutClearsCookie(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp(db)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	cookie := helpers.SessionCookie(resp, services.SessionCookie)
	if cookie == nil {
		t.Fatal("Expected expiring session cookie on logout")
	}
	if cookie.Value != "" {
		t.Errorf("Expected empty cookie value, got %q", cookie.Value)
	}
	if !cookie.Expires.IsZero() && !cookie.Expires.Before(time.Now()) {
		t.Errorf("Expected cookie expiry in the past, got %v", cookie.Expires)
	}
}
