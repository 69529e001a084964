package handler

import (
	"go-storepos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetOverview returns all orders of the last three months (admin)
// GET /api/v1/admin/dashboard/overview
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.service.GetOverview()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch overview"})
	}
	return c.JSON(overview)
}

// GetMyOverview is the same window scoped to the caller's own sales
// GET /api/v1/store/dashboard/overview
func (h *DashboardHandler) GetMyOverview(c *fiber.Ctx) error {
	overview, err := h.service.GetEmployeeOverview(getUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch overview"})
	}
	return c.JSON(overview)
}

// GetCards returns the month-over-month summary cards
// GET /api/v1/admin/dashboard/cards
func (h *DashboardHandler) GetCards(c *fiber.Ctx) error {
	cards, err := h.service.GetCards()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard cards"})
	}
	return c.JSON(cards)
}
