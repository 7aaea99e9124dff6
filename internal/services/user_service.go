package services

import (
	"errors"
	"strings"

	"github.com/laodict/laodict-admin/internal/models"
	"github.com/laodict/laodict-admin/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// HashPassword produces a one-way bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword verifies a plaintext password against a stored hash.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateUser stores a new account. The email is lower-cased before storage
// (model hook) and must be unique; the password is hashed and never persisted
// in plaintext. A duplicate email surfaces as ErrEmailExists, distinct from
// other store failures.
func CreateUser(db *gorm.DB, email, password string) (*models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns one page of accounts ordered by creation time ascending.
func ListUsers(db *gorm.DB, page, limit int) ([]models.User, utils.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, err
	}

	var users []models.User
	if err := db.
		Order("created_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error; err != nil {
		return nil, utils.Pagination{}, err
	}

	return users, utils.NewPagination(page, limit, total), nil
}

// GetUserByEmail is a point lookup; an unknown email is an absent result, not
// an error.
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID is a point lookup; an unknown id is an absent result, not an
// error.
func GetUserByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account unless its role is superadmin. The caller's
// own role is deliberately not consulted here; authorization belongs to the
// handler layer.
func DeleteUser(db *gorm.DB, id string) error {
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if strings.EqualFold(user.Role, models.RoleSuperAdmin) {
		return ErrProtectedRole
	}

	return db.Delete(&user).Error
}
