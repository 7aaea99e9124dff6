package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/laodict/laodict-admin/internal/models"
	"github.com/laodict/laodict-admin/internal/services"
	"github.com/laodict/laodict-admin/internal/utils"
	"gorm.io/gorm"
)

// ReportHandler handles dashboard routes
type ReportHandler struct {
	DB *gorm.DB
}

// GetDashboard handles GET /api/admin/report
// @Summary Dashboard counts
// @Description Get the headline counts for the console landing page
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} services.Dashboard
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/report [get]
func (h *ReportHandler) GetDashboard(c *fiber.Ctx) error {
	report, err := services.GetDashboard(h.DB)
	if err != nil {
		log.Printf("dashboard report failed: %v", err)
		return utils.ErrorResponse(c, "Failed to build report", fiber.StatusInternalServerError, "getDashboard")
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

// GetMenu handles GET /api/admin/menu
// @Summary Navigation menu
// @Description Get the navigation entries visible to the logged-in user's role
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /admin/menu [get]
func (h *ReportHandler) GetMenu(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || user == nil {
		return utils.UnauthorizedResponse(c)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"menu": services.MenuForRole(user.Role),
	})
}
