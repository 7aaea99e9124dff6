// word_service.go
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

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/laodict/laodict-admin/internal/models"
	"github.com/laodict/laodict-admin/internal/types"
	"github.com/laodict/laodict-admin/internal/utils"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// WordRecord is the API shape of a word aggregate: the dictionary row plus the
// flattened child text rows of its two group rows.
type WordRecord struct {
	models.Word
	Definitions []models.DefinitionText  `json:"definitions"`
	Examples    []models.ExampleSentence `json:"examples"`
}

// DefinitionInput is one definition entry in a create/update payload. A zero
// or unknown ID means "insert a new row".
type DefinitionInput struct {
	ID       types.FlexUint64 `json:"id"`
	Language string           `json:"language"`
	Kind     string           `json:"kind"`
	Text     string           `json:"text"`
}

// ExampleInput is one example entry in a create/update payload.
type ExampleInput struct {
	ID   types.FlexUint64 `json:"id"`
	Text string           `json:"text"`
}

// WordInput carries the word scalars and nested children for create/update.
type WordInput struct {
	Word          string            `json:"word"`
	Pronunciation string            `json:"pronunciation"`
	PartOfSpeech  string            `json:"part_of_speech"`
	Definitions   []DefinitionInput `json:"definitions"`
	Examples      []ExampleInput    `json:"examples"`
}

// ListWords returns one page of word aggregates plus the pagination block.
// The search term is a case-insensitive substring match on the word column,
// and the total count honors the same filter. Pages are newest-created-first.
func ListWords(db *gorm.DB, search string, page, limit int) ([]WordRecord, utils.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := db.Model(&models.Word{})
	if db.Dialector.Name() == "mysql" {
		query = query.Clauses(hints.UseIndex("dictionary_word_idx"))
	}
	if search != "" {
		query = query.Where("LOWER(word) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, err
	}

	var words []models.Word
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&words).Error; err != nil {
		return nil, utils.Pagination{}, err
	}

	records := make([]WordRecord, 0, len(words))
	for _, w := range words {
		rec, err := loadWordChildren(db, w)
		if err != nil {
			return nil, utils.Pagination{}, err
		}
		records = append(records, rec)
	}

	return records, utils.NewPagination(page, limit, total), nil
}

// GetWord returns a single word aggregate by id.
func GetWord(db *gorm.DB, id uint64) (*WordRecord, error) {
	var word models.Word
	if err := db.First(&word, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rec, err := loadWordChildren(db, word)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateWord creates the full aggregate: the word row, its single definition
// and example group rows, and one child text row per supplied entry. The whole
// fan-out runs in one transaction so a duplicate word or a mid-sequence
// failure leaves no partial aggregate behind. Blank example texts are skipped.
func CreateWord(db *gorm.DB, in WordInput) (*WordRecord, error) {
	var created models.Word

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Word
		err := tx.Where("word = ?", in.Word).First(&existing).Error
		if err == nil {
			return ErrWordExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		created = models.Word{
			Word:          in.Word,
			Pronunciation: in.Pronunciation,
			PartOfSpeech:  in.PartOfSpeech,
			SearchCount:   0,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		defGroup := models.DefinitionGroup{WordID: created.ID}
		if err := tx.Create(&defGroup).Error; err != nil {
			return err
		}
		exGroup := models.ExampleGroup{WordID: created.ID}
		if err := tx.Create(&exGroup).Error; err != nil {
			return err
		}

		for _, item := range in.Definitions {
			text := models.DefinitionText{
				GroupID:  defGroup.ID,
				Language: item.Language,
				Kind:     item.Kind,
				Text:     item.Text,
			}
			if err := tx.Create(&text).Error; err != nil {
				return err
			}
		}

		for _, item := range in.Examples {
			if strings.TrimSpace(item.Text) == "" {
				continue
			}
			sentence := models.ExampleSentence{
				GroupID: exGroup.ID,
				Text:    item.Text,
			}
			if err := tx.Create(&sentence).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	rec, err := loadWordChildren(db, created)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateWord reconciles the submitted children against the stored aggregate
// and then updates the word scalars, all in one transaction. Per entry: an id
// that matches an existing child row updates it in place; a zero or unknown id
// inserts a new row under the word's existing group. With prune set, child
// rows omitted from the payload are deleted; otherwise they are left alone.
// Re-applying the same payload is idempotent either way.
func UpdateWord(db *gorm.DB, id uint64, in WordInput, prune bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var word models.Word
		if err := tx.First(&word, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		defGroup, exGroup, err := loadGroups(tx, word.ID)
		if err != nil {
			return err
		}

		keepDefs := make([]uint64, 0, len(in.Definitions))
		for _, item := range in.Definitions {
			var existing models.DefinitionText
			err := tx.First(&existing, item.ID.Uint64()).Error
			switch {
			case item.ID == 0 || errors.Is(err, gorm.ErrRecordNotFound):
				text := models.DefinitionText{
					GroupID:  defGroup.ID,
					Language: item.Language,
					Kind:     item.Kind,
					Text:     item.Text,
				}
				if err := tx.Create(&text).Error; err != nil {
					return err
				}
				keepDefs = append(keepDefs, text.ID)
			case err != nil:
				return err
			default:
				updates := map[string]interface{}{
					"text":     item.Text,
					"language": item.Language,
					"kind":     item.Kind,
				}
				if err := tx.Model(&existing).Updates(updates).Error; err != nil {
					return err
				}
				keepDefs = append(keepDefs, existing.ID)
			}
		}

		keepExamples := make([]uint64, 0, len(in.Examples))
		for _, item := range in.Examples {
			var existing models.ExampleSentence
			err := tx.First(&existing, item.ID.Uint64()).Error
			switch {
			case item.ID == 0 || errors.Is(err, gorm.ErrRecordNotFound):
				sentence := models.ExampleSentence{
					GroupID: exGroup.ID,
					Text:    item.Text,
				}
				if err := tx.Create(&sentence).Error; err != nil {
					return err
				}
				keepExamples = append(keepExamples, sentence.ID)
			case err != nil:
				return err
			default:
				if err := tx.Model(&existing).Update("text", item.Text).Error; err != nil {
					return err
				}
				keepExamples = append(keepExamples, existing.ID)
			}
		}

		if prune {
			if err := pruneOmitted(tx, defGroup.ID, exGroup.ID, keepDefs, keepExamples); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"word":           in.Word,
			"pronunciation":  in.Pronunciation,
			"part_of_speech": in.PartOfSpeech,
		}
		return tx.Model(&word).Updates(updates).Error
	})
}

// pruneOmitted deletes child rows that were not part of the update payload.
func pruneOmitted(tx *gorm.DB, defGroupID, exGroupID uint64, keepDefs, keepExamples []uint64) error {
	defQuery := tx.Where("definition_id = ?", defGroupID)
	if len(keepDefs) > 0 {
		defQuery = defQuery.Where("id NOT IN ?", keepDefs)
	}
	if err := defQuery.Delete(&models.DefinitionText{}).Error; err != nil {
		return err
	}

	exQuery := tx.Where("example_id = ?", exGroupID)
	if len(keepExamples) > 0 {
		exQuery = exQuery.Where("id NOT IN ?", keepExamples)
	}
	return exQuery.Delete(&models.ExampleSentence{}).Error
}

// loadGroups fetches the word's two group rows. A missing group means the
// stored aggregate is inconsistent; mutations fail closed on it.
func loadGroups(tx *gorm.DB, wordID uint64) (models.DefinitionGroup, models.ExampleGroup, error) {
	var defGroup models.DefinitionGroup
	if err := tx.Where("word_id = ?", wordID).First(&defGroup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defGroup, models.ExampleGroup{}, fmt.Errorf("word %d has no definition group", wordID)
		}
		return defGroup, models.ExampleGroup{}, err
	}

	var exGroup models.ExampleGroup
	if err := tx.Where("word_id = ?", wordID).First(&exGroup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defGroup, exGroup, fmt.Errorf("word %d has no example group", wordID)
		}
		return defGroup, exGroup, err
	}

	return defGroup, exGroup, nil
}

// loadWordChildren attaches the flattened definition and example rows to a
// word. On reads a missing group is tolerated as empty lists; writes are the
// ones that must not assume the groups away.
func loadWordChildren(db *gorm.DB, word models.Word) (WordRecord, error) {
	rec := WordRecord{
		Word:        word,
		Definitions: []models.DefinitionText{},
		Examples:    []models.ExampleSentence{},
	}

	var defGroup models.DefinitionGroup
	err := db.Where("word_id = ?", word.ID).First(&defGroup).Error
	if err == nil {
		if err := db.Where("definition_id = ?", defGroup.ID).
			Order("id ASC").
			Find(&rec.Definitions).Error; err != nil {
			return rec, err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return rec, err
	}

	var exGroup models.ExampleGroup
	err = db.Where("word_id = ?", word.ID).First(&exGroup).Error
	if err == nil {
		if err := db.Where("example_id = ?", exGroup.ID).
			Order("id ASC").
			Find(&rec.Examples).Error; err != nil {
			return rec, err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return rec, err
	}

	return rec, nil
}
