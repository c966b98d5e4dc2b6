package services

import (
	"path/filepath"
	"testing"

	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/config"

	"gorm.io/gorm"
)

func newTestConfig() *config.Config {
	return &config.Config{
		AppMode: "prod",
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenMins: 60,
		},
		Security: config.SecurityConfig{
			BcryptCost:             10,
			AllowAdminProvisioning: true,
		},
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := newTestConfig()
	cfg.Database = config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DBName: filepath.Join(t.TempDir(), "leads.db"),
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		t.Fatalf("ConnectDatabase: %v", err)
	}
	t.Cleanup(func() { config.CloseDatabase(db) })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return db
}
