package routes

import (
	"cleanenergy-leads/internal/adapters/http/handlers"
	"cleanenergy-leads/internal/adapters/http/middleware"
	"cleanenergy-leads/internal/adapters/ibge"
	"cleanenergy-leads/internal/adapters/persistence/repositories"
	"cleanenergy-leads/internal/config"
	"cleanenergy-leads/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"

	_ "cleanenergy-leads/docs" // Swagger docs
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	adminRepo := repositories.NewAdminRepository(db)
	leadRepo := repositories.NewLeadRepository(db)

	// Initialize services
	authService := services.NewAuthService(adminRepo, cfg)
	leadService := services.NewLeadService(leadRepo)
	dashboardService := services.NewDashboardService(leadRepo)

	// External collaborators
	ibgeClient := ibge.NewClient(cfg.Locations.BaseURL, cfg.Locations.Timeout, cfg.Locations.CacheTTL)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	leadHandler := handlers.NewLeadHandler(leadService)
	savingsHandler := handlers.NewSavingsHandler()
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	locationHandler := handlers.NewLocationHandler(ibgeClient)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	requireAdmin := middleware.AuthMiddleware(authService)

	// Admin provisioning (public, see ALLOW_ADMIN_PROVISIONING)
	app.Post("/admin", middleware.StrictRateLimiter(cfg.Security.RateLimitStrict), authHandler.ProvisionAdmin)

	// Auth routes (public)
	authRoutes := app.Group("/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(cfg.Security.RateLimitAuth), authHandler.Login)

	// Lead routes: submission is public, management requires a bearer token
	leadRoutes := app.Group("/leads", middleware.NoCacheHeaders())
	setupLeadRoutes(leadRoutes, leadHandler, dashboardHandler, requireAdmin)

	// Savings estimator (public)
	app.Get("/savings/estimate", savingsHandler.Estimate)

	// Locality lookups for the lead form (public, cached)
	locationRoutes := app.Group("/locations", middleware.PublicCache(cfg.Locations.CacheTTL))
	locationRoutes.Get("/states", locationHandler.ListStates)
	locationRoutes.Get("/states/:uf/cities", locationHandler.ListCities)
}

// setupLeadRoutes configures lead routes
func setupLeadRoutes(
	router fiber.Router,
	leadHandler *handlers.LeadHandler,
	dashboardHandler *handlers.DashboardHandler,
	requireAdmin fiber.Handler,
) {
	// Public
	router.Post("/", leadHandler.Create)

	// Protected (auth is per route so unknown methods still get 405)
	router.Get("/", requireAdmin, leadHandler.List)
	router.Get("/stats", requireAdmin, dashboardHandler.GetLeadStats)
	router.Delete("/:id", requireAdmin, leadHandler.Delete)
}
