// data.go
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

package helpers

import (
	"testing"

	"github.com/laodict/laodict-admin/internal/models"
	"github.com/laodict/laodict-admin/internal/services"
	"gorm.io/gorm"
)

// CreateTestWord creates a word aggregate with one definition and one example
// and returns the word id.
func CreateTestWord(t *testing.T, db *gorm.DB, word, definition, example string) uint64 {
	t.Helper()
	record, err := services.CreateWord(db, services.WordInput{
		Word:          word,
		Pronunciation: word + "-pron",
		PartOfSpeech:  "noun",
		Definitions: []services.DefinitionInput{
			{Language: "en", Kind: "meaning", Text: definition},
		},
		Examples: []services.ExampleInput{
			{Text: example},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create word %s: %v", word, err)
	}
	return record.ID
}

// CreateTestPair creates a confusable pair and returns its id.
func CreateTestPair(t *testing.T, db *gorm.DB, correct, incorrect string) uint64 {
	t.Helper()
	pair, err := services.CreatePair(db, services.PairInput{
		CorrectWord:   correct,
		IncorrectWord: incorrect,
	})
	if err != nil {
		t.Fatalf("Failed to create pair %s/%s: %v", correct, incorrect, err)
	}
	return pair.ID
}

// CreateTestUser creates a user with the given role and returns the record.
// The stored password is the bcrypt hash of the supplied plaintext.
func CreateTestUser(t *testing.T, db *gorm.DB, email, password, role string) *models.User {
	t.Helper()
	hash, err := services.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := models.User{
		Email:    email,
		Password: hash,
		Role:     role,
		Status:   models.StatusActive,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return &user
}
