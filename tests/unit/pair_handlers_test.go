package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/laodict/laodict-admin/internal/handlers"
	"github.com/laodict/laodict-admin/internal/models"
	"github.com/laodict/laodict-admin/internal/utils"
	"github.com/laodict/laodict-admin/tests/helpers"
	"gorm.io/gorm"
)

func newPairApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	handler := &handlers.PairHandler{DB: db}
	app.Get("/api/admin/correct-incorrect", handler.ListPairs)
	app.Post("/api/admin/correct-incorrect", handler.CreatePair)
	app.Put("/api/admin/correct-incorrect/:id", handler.UpdatePair)
	app.Delete("/api/admin/correct-incorrect/:id", handler.DeletePair)
	return app
}

func TestCreatePairValidation(t *testing.T) {
	db := setupTestDB(t)
	app := newPairApp(db)

	body, _ := json.Marshal(map[string]string{"correct_word": "ແທ້"})
	req := httptest.NewRequest("POST", "/api/admin/correct-incorrect", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)

	var errBody utils.ErrorResponseStruct
	helpers.ParseJSON(t, resp, &errBody)
	if errBody.Error != "Incorrect word is required" {
		t.Errorf("Expected incorrect-word message, got %q", errBody.Error)
	}
}

func TestUpdatePairOverwritesAllFields(t *testing.T) {
	db := setupTestDB(t)
	app := newPairApp(db)

	pairID := helpers.CreateTestPair(t, db, "ແທ້", "ແທ")

	explanation := "tone mark differs"
	body, _ := json.Marshal(map[string]any{
		"correct_word":   "ແທ້ຈິງ",
		"incorrect_word": "ແທຈິງ",
		"explanation":    explanation,
	})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/api/admin/correct-incorrect/%d", pairID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var stored models.ConfusablePair
	if err := db.First(&stored, pairID).Error; err != nil {
		t.Fatalf("Failed to load pair: %v", err)
	}
	// Both word columns carry their own submitted values
	if stored.CorrectWord != "ແທ້ຈິງ" {
		t.Errorf("Expected correct_word ແທ້ຈິງ, got %s", stored.CorrectWord)
	}
	if stored.IncorrectWord != "ແທຈິງ" {
		t.Errorf("Expected incorrect_word ແທຈິງ, got %s", stored.IncorrectWord)
	}
	if stored.Explanation == nil || *stored.Explanation != explanation {
		t.Errorf("Expected explanation %q, got %v", explanation, stored.Explanation)
	}
}

func TestUpdatePairNotFound(t *testing.T) {
	db := setupTestDB(t)
	app := newPairApp(db)

	body, _ := json.Marshal(map[string]string{
		"correct_word":   "a",
		"incorrect_word": "b",
	})
	req := httptest.NewRequest("PUT", "/api/admin/correct-incorrect/4242", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
}

func TestDeletePair(t *testing.T) {
	db := setupTestDB(t)
	app := newPairApp(db)

	pairID := helpers.CreateTestPair(t, db, "ຖືກ", "ຖື")

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/admin/correct-incorrect/%d", pairID), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	// Second delete reports not found
	req = httptest.NewRequest("DELETE", fmt.Sprintf("/api/admin/correct-incorrect/%d", pairID), nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
}

func TestListPairsFilter(t *testing.T) {
	db := setupTestDB(t)
	app := newPairApp(db)

	helpers.CreateTestPair(t, db, "ແທ້", "ແທ")
	helpers.CreateTestPair(t, db, "ແທ້ຈິງ", "ແທຈິງ")
	helpers.CreateTestPair(t, db, "ຖືກ", "ຖື")

	req := httptest.NewRequest("GET", "/api/admin/correct-incorrect?search=%E0%BB%81%E0%BA%97%E0%BB%89&page=1&limit=10", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var list struct {
		Words      []models.ConfusablePair `json:"words"`
		Pagination utils.Pagination        `json:"pagination"`
	}
	helpers.ParseJSON(t, resp, &list)
	if len(list.Words) != 2 || list.Pagination.Total != 2 {
		t.Errorf("Expected 2 filtered pairs, got %d (total %d)", len(list.Words), list.Pagination.Total)
	}
}
