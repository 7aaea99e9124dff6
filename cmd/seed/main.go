package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/laodict/laodict-admin/internal/config"
	"github.com/laodict/laodict-admin/internal/database"
	"github.com/laodict/laodict-admin/internal/models"
	"github.com/laodict/laodict-admin/internal/services"
	"gorm.io/gorm"
)

// Bootstraps the first SuperAdmin account. Safe to re-run: an existing
// account with the seed email is left untouched.
func main() {
	email := strings.TrimSpace(os.Getenv("SEED_EMAIL"))
	password := os.Getenv("SEED_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_EMAIL and SEED_PASSWORD are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	existing, err := services.GetUserByEmail(db, email)
	if err != nil {
		log.Fatalf("Failed to look up seed account: %v", err)
	}
	if existing != nil {
		log.Printf("Account %s already exists, nothing to do", existing.Email)
		return
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Email:    email,
		Password: hash,
		Role:     models.RoleSuperAdmin,
		Status:   models.StatusActive,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("Account %s already exists, nothing to do", user.Email)
			return
		}
		log.Fatalf("Failed to create seed account: %v", err)
	}

	log.Printf("Created SuperAdmin account %s (%s)", user.Email, user.ID)
}
