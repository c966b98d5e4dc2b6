package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleanenergy-leads/internal/adapters/http/middleware"
	"cleanenergy-leads/internal/adapters/http/routes"
	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/adapters/persistence/repositories"
	"cleanenergy-leads/internal/config"
	"cleanenergy-leads/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("❌ Failed to load configuration: %v", err)
		return err
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Printf("❌ Failed to connect to database: %v", err)
		return err
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables and the national_id unique index)
	if err := models.AutoMigrate(db); err != nil {
		log.Printf("❌ Failed to auto migrate: %v", err)
		return err
	}
	log.Println("✅ Database migration completed")

	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Lead digest job (disabled when DIGEST_SCHEDULE is empty)
	cronService := services.NewCronService(repositories.NewLeadRepository(db), cfg.Digest.Schedule)
	if err := cronService.Start(); err != nil {
		log.Printf("⚠️ Warning: Failed to start lead digest: %v", err)
	}
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Clean Energy Leads API " + appVersion,
		ErrorHandler: middleware.CustomErrorHandler,
		ReadTimeout:  cfg.RequestTimeout + 5*time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
		return err
	}
	return nil
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
