package services

import (
	"errors"
	"strings"

	"github.com/laodict/laodict-admin/internal/models"
	"github.com/laodict/laodict-admin/internal/utils"
	"gorm.io/gorm"
)

// PairInput carries the three text fields of a confusable pair.
type PairInput struct {
	CorrectWord   string  `json:"correct_word"`
	IncorrectWord string  `json:"incorrect_word"`
	Explanation   *string `json:"explanation"`
}

// ListPairs returns one page of confusable pairs. The search term is a
// case-insensitive substring match on correct_word; the count honors the same
// filter.
func ListPairs(db *gorm.DB, search string, page, limit int) ([]models.ConfusablePair, utils.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := db.Model(&models.ConfusablePair{})
	if search != "" {
		query = query.Where("LOWER(correct_word) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, err
	}

	var pairs []models.ConfusablePair
	if err := query.
		Order("id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&pairs).Error; err != nil {
		return nil, utils.Pagination{}, err
	}

	return pairs, utils.NewPagination(page, limit, total), nil
}

// CreatePair inserts a confusable pair. No uniqueness constraint applies.
func CreatePair(db *gorm.DB, in PairInput) (*models.ConfusablePair, error) {
	pair := models.ConfusablePair{
		CorrectWord:   in.CorrectWord,
		IncorrectWord: in.IncorrectWord,
		Explanation:   in.Explanation,
	}
	if err := db.Create(&pair).Error; err != nil {
		return nil, err
	}
	return &pair, nil
}

// UpdatePair overwrites all three text fields of an existing pair.
func UpdatePair(db *gorm.DB, id uint64, in PairInput) error {
	var pair models.ConfusablePair
	if err := db.First(&pair, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	updates := map[string]interface{}{
		"correct_word":   in.CorrectWord,
		"incorrect_word": in.IncorrectWord,
		"explanation":    in.Explanation,
	}
	return db.Model(&pair).Updates(updates).Error
}

// DeletePair removes a pair unconditionally.
func DeletePair(db *gorm.DB, id uint64) error {
	result := db.Delete(&models.ConfusablePair{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
