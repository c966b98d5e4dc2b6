package handlers

import (
	"strconv"
	"strings"

	"cleanenergy-leads/internal/core/services"
	"cleanenergy-leads/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SavingsHandler exposes the savings estimator
type SavingsHandler struct{}

// NewSavingsHandler creates a new savings handler
func NewSavingsHandler() *SavingsHandler {
	return &SavingsHandler{}
}

// Estimate handles savings projection
// @Summary Estimate savings
// @Description Project the amount paid and saved over 1, 3 and 5 years with the 25% discount
// @Tags Savings
// @Produce json
// @Param monthlyBillValue query number true "Monthly electricity bill"
// @Success 200 {object} domain.SavingsProjection
// @Failure 400 {object} response.ErrorResponse
// @Router /savings/estimate [get]
func (h *SavingsHandler) Estimate(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("monthlyBillValue"))
	if raw == "" {
		return response.BadRequest(c, "monthlyBillValue is required")
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return response.BadRequest(c, "monthlyBillValue must be a number")
	}

	projection, err := services.EstimateSavings(value)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Success(c, projection)
}
