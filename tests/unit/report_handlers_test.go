package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/laodict/laodict-admin/internal/handlers"
	"github.com/laodict/laodict-admin/internal/models"
	"github.com/laodict/laodict-admin/internal/services"
	"github.com/laodict/laodict-admin/tests/helpers"
	"gorm.io/gorm"
)

// newReportApp wires the report routes with a pre-resolved user in context
func newReportApp(db *gorm.DB, user *models.User) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", user)
		return c.Next()
	})
	handler := &handlers.ReportHandler{DB: db}
	app.Get("/api/admin/report", handler.GetDashboard)
	app.Get("/api/admin/menu", handler.GetMenu)
	return app
}

func TestDashboardCounts(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestWord(t, db, "ຫນຶ່ງ", "one", "ຫນຶ່ງ ສອງ")
	helpers.CreateTestWord(t, db, "ສອງ", "two", "ສອງ ສາມ")
	helpers.CreateTestPair(t, db, "ແທ້", "ແທ")

	active := helpers.CreateTestUser(t, db, "active@example.com", helpers.GeneratePassword(), models.RoleAdmin)
	inactive := helpers.CreateTestUser(t, db, "inactive@example.com", helpers.GeneratePassword(), models.RoleAdmin)
	if err := db.Model(inactive).Update("status", models.StatusInactive).Error; err != nil {
		t.Fatalf("Failed to deactivate user: %v", err)
	}

	app := newReportApp(db, active)
	req := httptest.NewRequest("GET", "/api/admin/report", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var report services.Dashboard
	helpers.ParseJSON(t, resp, &report)
	if report.TotalWord != 2 {
		t.Errorf("Expected 2 words, got %d", report.TotalWord)
	}
	if report.TotalIncorrect != 1 {
		t.Errorf("Expected 1 pair, got %d", report.TotalIncorrect)
	}
	if report.TotalExample != 2 {
		t.Errorf("Expected 2 example sentences, got %d", report.TotalExample)
	}
	// Only active accounts count
	if report.TotalActiveUser != 1 {
		t.Errorf("Expected 1 active user, got %d", report.TotalActiveUser)
	}
}

func TestMenuPerRole(t *testing.T) {
	cases := []struct {
		role string
		keys []string
	}{
		{models.RoleSuperAdmin, []string{"dashboard", "words", "pairs", "users"}},
		{models.RoleAdmin, []string{"dashboard", "words", "pairs", "users"}},
		{models.RoleEditor, []string{"dashboard", "words", "pairs"}},
		{models.RoleViewer, []string{"dashboard", "words"}},
		{"Editor", []string{"dashboard", "words", "pairs"}}, // casing normalized
		{"unknown-role", []string{"dashboard", "words"}},    // viewer fallback
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			items := services.MenuForRole(tc.role)
			if len(items) != len(tc.keys) {
				t.Fatalf("Expected %d items for %s, got %d", len(tc.keys), tc.role, len(items))
			}
			for i, key := range tc.keys {
				if items[i].Key != key {
					t.Errorf("Expected item %d to be %s, got %s", i, key, items[i].Key)
				}
			}
		})
	}
}

func TestMenuEndpoint(t *testing.T) {
	db := setupTestDB(t)
	viewer := helpers.CreateTestUser(t, db, "viewer@example.com", helpers.GeneratePassword(), models.RoleViewer)

	app := newReportApp(db, viewer)
	req := httptest.NewRequest("GET", "/api/admin/menu", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var body struct {
		Menu []services.MenuItem `json:"menu"`
	}
	helpers.ParseJSON(t, resp, &body)
	if len(body.Menu) != 2 {
		t.Errorf("Expected 2 viewer menu items, got %d", len(body.Menu))
	}
}
