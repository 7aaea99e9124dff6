package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/laodict/laodict-admin/internal/services"
	"github.com/laodict/laodict-admin/internal/utils"
	"gorm.io/gorm"
)

// PairHandler handles confusable word pair routes
type PairHandler struct {
	DB *gorm.DB
}

type pairBody struct {
	CorrectWord   string  `json:"correct_word"`
	IncorrectWord string  `json:"incorrect_word"`
	Explanation   *string `json:"explanation"`
}

func (b *pairBody) validate() string {
	if strings.TrimSpace(b.CorrectWord) == "" {
		return "Correct word is required"
	}
	if strings.TrimSpace(b.IncorrectWord) == "" {
		return "Incorrect word is required"
	}
	return ""
}

func (b *pairBody) toInput() services.PairInput {
	return services.PairInput{
		CorrectWord:   strings.TrimSpace(b.CorrectWord),
		IncorrectWord: strings.TrimSpace(b.IncorrectWord),
		Explanation:   b.Explanation,
	}
}

// ListPairs handles GET /api/admin/correct-incorrect
// @Summary List confusable pairs
// @Description Get a page of correct/incorrect word pairs
// @Tags Pairs
// @Accept json
// @Produce json
// @Param search query string false "Substring filter on correct word"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/correct-incorrect [get]
func (h *PairHandler) ListPairs(c *fiber.Ctx) error {
	search, page, limit := parsePaging(c)

	pairs, pagination, err := services.ListPairs(h.DB, search, page, limit)
	if err != nil {
		log.Printf("list pairs failed: %v", err)
		return utils.ErrorResponse(c, "Failed to fetch word pairs", fiber.StatusInternalServerError, "listPairs")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"words":      pairs,
		"pagination": pagination,
	})
}

// CreatePair handles POST /api/admin/correct-incorrect
// @Summary Create a confusable pair
// @Description Create a correct/incorrect word pair
// @Tags Pairs
// @Accept json
// @Produce json
// @Param body body object true "Pair payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/correct-incorrect [post]
func (h *PairHandler) CreatePair(c *fiber.Ctx) error {
	var body pairBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "pairs.validation.input")
	}

	if msg := body.validate(); msg != "" {
		return utils.ErrorResponse(c, msg, fiber.StatusBadRequest, "pairs.validation.input")
	}

	pair, err := services.CreatePair(h.DB, body.toInput())
	if err != nil {
		log.Printf("create pair failed: %v", err)
		return utils.ErrorResponse(c, "Failed to create word pair", fiber.StatusInternalServerError, "createPair")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"word":    pair,
	})
}

// UpdatePair handles PUT /api/admin/correct-incorrect/:id
// @Summary Update a confusable pair
// @Description Overwrite the three text fields of a pair
// @Tags Pairs
// @Accept json
// @Produce json
// @Param id path int true "Pair ID"
// @Param body body object true "Pair payload"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/correct-incorrect/{id} [put]
func (h *PairHandler) UpdatePair(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid pair id", fiber.StatusBadRequest, "pairs.validation.id")
	}

	var body pairBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "pairs.validation.input")
	}

	if msg := body.validate(); msg != "" {
		return utils.ErrorResponse(c, msg, fiber.StatusBadRequest, "pairs.validation.input")
	}

	if err := services.UpdatePair(h.DB, id, body.toInput()); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Word pair not found")
		}
		log.Printf("update pair %d failed: %v", id, err)
		return utils.ErrorResponse(c, "Failed to update word pair", fiber.StatusInternalServerError, "updatePair")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// DeletePair handles DELETE /api/admin/correct-incorrect/:id
// @Summary Delete a confusable pair
// @Tags Pairs
// @Accept json
// @Produce json
// @Param id path int true "Pair ID"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/correct-incorrect/{id} [delete]
func (h *PairHandler) DeletePair(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid pair id", fiber.StatusBadRequest, "pairs.validation.id")
	}

	if err := services.DeletePair(h.DB, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Word pair not found")
		}
		log.Printf("delete pair %d failed: %v", id, err)
		return utils.ErrorResponse(c, "Failed to delete word pair", fiber.StatusInternalServerError, "deletePair")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
