// words.go
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
	"github.com/laodict/laodict-admin/internal/services"
	"github.com/laodict/laodict-admin/internal/types"
	"github.com/laodict/laodict-admin/internal/utils"
	"gorm.io/gorm"
)

// WordHandler handles dictionary word routes
type WordHandler struct {
	DB *gorm.DB
	// Prune removes children omitted from an update payload.
	Prune bool
}

type wordBody struct {
	Word          string                                   `json:"word"`
	Pronunciation string                                   `json:"pronunciation"`
	PartOfSpeech  string                                   `json:"part_of_speech"`
	Definitions   types.FlexList[services.DefinitionInput] `json:"definitions"`
	Examples      types.FlexList[services.ExampleInput]    `json:"examples"`
}

func (b *wordBody) toInput() services.WordInput {
	return services.WordInput{
		Word:          strings.TrimSpace(b.Word),
		Pronunciation: strings.TrimSpace(b.Pronunciation),
		PartOfSpeech:  strings.TrimSpace(b.PartOfSpeech),
		Definitions:   b.Definitions.Slice(),
		Examples:      b.Examples.Slice(),
	}
}

// validate checks the required word fields. The first failing field wins.
func (b *wordBody) validate() string {
	if strings.TrimSpace(b.Word) == "" {
		return "Word is required"
	}
	if strings.TrimSpace(b.Pronunciation) == "" {
		return "Pronunciation is required"
	}
	if strings.TrimSpace(b.PartOfSpeech) == "" {
		return "Part of speech is required"
	}
	hasDefinition := false
	for _, d := range b.Definitions {
		if strings.TrimSpace(d.Text) != "" {
			hasDefinition = true
			break
		}
	}
	if !hasDefinition {
		return "At least one definition is required"
	}
	return ""
}

// ListWords handles GET /api/admin/words
// @Summary List dictionary words
// @Description Get a page of words with their definitions and examples
// @Tags Words
// @Accept json
// @Produce json
// @Param search query string false "Substring filter on word"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/words [get]
func (h *WordHandler) ListWords(c *fiber.Ctx) error {
	search, page, limit := parsePaging(c)

	words, pagination, err := services.ListWords(h.DB, search, page, limit)
	if err != nil {
		log.Printf("list words failed: %v", err)
		return utils.ErrorResponse(c, "Failed to fetch words", fiber.StatusInternalServerError, "listWords")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"words":      words,
		"pagination": pagination,
	})
}

// RecentWords handles GET /api/admin/recently-word
// @Summary List recently added words
// @Description Get the newest words for the dashboard
// @Tags Words
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/recently-word [get]
func (h *WordHandler) RecentWords(c *fiber.Ctx) error {
	words, pagination, err := services.ListWords(h.DB, "", 1, 5)
	if err != nil {
		log.Printf("recent words failed: %v", err)
		return utils.ErrorResponse(c, "Failed to fetch words", fiber.StatusInternalServerError, "recentWords")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"words":      words,
		"pagination": pagination,
	})
}

// GetWord handles GET /api/admin/words/:id
// @Summary Get one word
// @Description Get a single word with its definitions and examples
// @Tags Words
// @Accept json
// @Produce json
// @Param id path int true "Word ID"
// @Success 200 {object} services.WordRecord
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/words/{id} [get]
func (h *WordHandler) GetWord(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid word id", fiber.StatusBadRequest, "words.validation.id")
	}

	word, err := services.GetWord(h.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Word not found")
		}
		log.Printf("get word %d failed: %v", id, err)
		return utils.ErrorResponse(c, "Failed to fetch word", fiber.StatusInternalServerError, "getWord")
	}

	return c.Status(fiber.StatusOK).JSON(word)
}

// CreateWord handles POST /api/admin/words
// @Summary Create a word
// @Description Create a word with its definitions and examples
// @Tags Words
// @Accept json
// @Produce json
// @Param body body object true "Word payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/words [post]
func (h *WordHandler) CreateWord(c *fiber.Ctx) error {
	var body wordBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "words.validation.input")
	}

	if msg := body.validate(); msg != "" {
		return utils.ErrorResponse(c, msg, fiber.StatusBadRequest, "words.validation.input")
	}

	word, err := services.CreateWord(h.DB, body.toInput())
	if err != nil {
		if errors.Is(err, services.ErrWordExists) {
			return utils.ErrorResponse(c, "Word already exists", fiber.StatusConflict, "words.conflict")
		}
		log.Printf("create word failed: %v", err)
		return utils.ErrorResponse(c, "Failed to create word", fiber.StatusInternalServerError, "createWord")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Word created successfully",
		"word":    word,
	})
}

// UpdateWord handles PUT /api/admin/words/:id
// @Summary Update a word
// @Description Update word fields and reconcile nested definitions/examples by id
// @Tags Words
// @Accept json
// @Produce json
// @Param id path int true "Word ID"
// @Param body body object true "Word payload"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/words/{id} [put]
func (h *WordHandler) UpdateWord(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid word id", fiber.StatusBadRequest, "words.validation.id")
	}

	var body wordBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "words.validation.input")
	}

	if msg := body.validate(); msg != "" {
		return utils.ErrorResponse(c, msg, fiber.StatusBadRequest, "words.validation.input")
	}

	if err := services.UpdateWord(h.DB, id, body.toInput(), h.Prune); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Word not found")
		}
		log.Printf("update word %d failed: %v", id, err)
		return utils.ErrorResponse(c, "Failed to update word", fiber.StatusInternalServerError, "updateWord")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Word updated successfully",
	})
}

// DeleteWord handles DELETE /api/admin/words/:id
// @Summary Delete a word
// @Description Delete a word and all of its definitions and examples
// @Tags Words
// @Accept json
// @Produce json
// @Param id path int true "Word ID"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/words/{id} [delete]
func (h *WordHandler) DeleteWord(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid word id", fiber.StatusBadRequest, "words.validation.id")
	}

	if err := services.DeleteWord(h.DB, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Word not found")
		}
		log.Printf("delete word %d failed: %v", id, err)
		return utils.ErrorResponse(c, "Failed to delete word", fiber.StatusInternalServerError, "deleteWord")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Word deleted successfully",
	})
}
