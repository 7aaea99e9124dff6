// main.go
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

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/laodict/laodict-admin/internal/config"
	"github.com/laodict/laodict-admin/internal/database"
	"github.com/laodict/laodict-admin/internal/handlers"
	"github.com/laodict/laodict-admin/internal/middleware"
	"github.com/laodict/laodict-admin/internal/services"
	"github.com/laodict/laodict-admin/internal/types"

	_ "github.com/laodict/laodict-admin/docs/api" // Swagger docs
)

// @title LaoDict Admin API
// @version 1.0.0
// @description Administrative API for a multilingual Lao dictionary

// @contact.name API Support
// @contact.url https://github.com/laodict/laodict-admin

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("laodict_admin")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.RequestVersion())

	// Create handlers
	authHandler := &handlers.AuthHandler{DB: db, CookieSecure: cfg.CookieSecure}
	wordHandler := &handlers.WordHandler{DB: db, Prune: cfg.WordUpdatePrune}
	pairHandler := &handlers.PairHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db}
	reportHandler := &handlers.ReportHandler{DB: db}

	requireUser := middleware.RequireUser(db)

	// Session routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", requireUser, authHandler.Me)

	// Console routes
	admin := api.Group("/admin")

	admin.Get("/words", requireUser, wordHandler.ListWords)
	admin.Post("/words", requireUser, wordHandler.CreateWord)
	admin.Get("/words/:id", requireUser, wordHandler.GetWord)
	admin.Put("/words/:id", requireUser, wordHandler.UpdateWord)
	admin.Delete("/words/:id", requireUser, wordHandler.DeleteWord)
	admin.Get("/recently-word", requireUser, wordHandler.RecentWords)

	admin.Get("/correct-incorrect", requireUser, pairHandler.ListPairs)
	admin.Post("/correct-incorrect", requireUser, pairHandler.CreatePair)
	admin.Put("/correct-incorrect/:id", requireUser, pairHandler.UpdatePair)
	admin.Delete("/correct-incorrect/:id", requireUser, pairHandler.DeletePair)

	// Users POST and DELETE intentionally carry no session check; account
	// bootstrap happens before any session exists.
	admin.Get("/users", requireUser, userHandler.ListUsers)
	admin.Post("/users", userHandler.CreateUser)
	admin.Delete("/users/:id", userHandler.DeleteUser)

	admin.Get("/report", requireUser, reportHandler.GetDashboard)
	admin.Get("/menu", requireUser, reportHandler.GetMenu)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Check if it's an application error
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"error":     message,
		"success":   false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
