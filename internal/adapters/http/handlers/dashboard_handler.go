package handlers

import (
	"cleanenergy-leads/internal/core/services"
	"cleanenergy-leads/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetLeadStats returns lead statistics for the admin dashboard
// @Summary Lead statistics
// @Description Totals, last 24h count, average bill and breakdowns by supply type and state
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.LeadStats
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /leads/stats [get]
func (h *DashboardHandler) GetLeadStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetLeadStats(c.UserContext())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch lead stats")
	}

	return response.Success(c, stats)
}
