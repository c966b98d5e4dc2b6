package handlers

import (
	"cleanenergy-leads/internal/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "Clean Energy Leads API is running",
		"mode":    h.cfg.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API and database health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	// Check database
	dbStatus := "healthy"
	overall := "ok"
	status := fiber.StatusOK
	if err := config.HealthCheck(h.db); err != nil {
		dbStatus = "unhealthy"
		overall = "degraded"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
		},
	})
}
