package services

import (
	"github.com/laodict/laodict-admin/internal/models"
	"gorm.io/gorm"
)

// Dashboard aggregates the headline counts shown on the console landing page.
type Dashboard struct {
	TotalActiveUser int64 `json:"total_active_user"`
	TotalWord       int64 `json:"total_word"`
	TotalIncorrect  int64 `json:"total_incorrect"`
	TotalExample    int64 `json:"total_example"`
}

// GetDashboard runs the four counts independently. A failure in any one of
// them fails the whole report.
func GetDashboard(db *gorm.DB) (*Dashboard, error) {
	var report Dashboard

	result := db.Model(&models.User{}).
		Where("status = ?", models.StatusActive).
		Count(&report.TotalActiveUser)
	if result.Error != nil {
		return nil, result.Error
	}

	result = db.Model(&models.Word{}).Count(&report.TotalWord)
	if result.Error != nil {
		return nil, result.Error
	}

	result = db.Model(&models.ConfusablePair{}).Count(&report.TotalIncorrect)
	if result.Error != nil {
		return nil, result.Error
	}

	result = db.Model(&models.ExampleSentence{}).Count(&report.TotalExample)
	if result.Error != nil {
		return nil, result.Error
	}

	return &report, nil
}
