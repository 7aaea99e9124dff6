// word_delete.go
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

	"github.com/laodict/laodict-admin/internal/models"
	"gorm.io/gorm"
)

// DeleteWord removes the whole aggregate in dependency order: child text rows
// first, then the two group rows, then the word itself. Confusable pairs that
// back-reference the word keep their row but lose the reference. The word→group
// links carry no schema-level cascade, so the ordering here is what prevents
// orphans; the transaction makes the ordering atomic. A missing group row
// aborts the transaction (fail closed) rather than assuming the aggregate
// shape away.
func DeleteWord(db *gorm.DB, id uint64) error {
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

		if err := tx.Where("definition_id = ?", defGroup.ID).
			Delete(&models.DefinitionText{}).Error; err != nil {
			return err
		}
		if err := tx.Where("example_id = ?", exGroup.ID).
			Delete(&models.ExampleSentence{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&defGroup).Error; err != nil {
			return err
		}
		if err := tx.Delete(&exGroup).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.ConfusablePair{}).
			Where("word_id = ?", word.ID).
			Update("word_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&word).Error
	})
}
