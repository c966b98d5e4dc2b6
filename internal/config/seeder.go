package config

import (
	"log"
	"strings"

	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdmin(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdmin creates the SEED_ADMIN_EMAIL account when it does not exist yet.
// This is for development/testing only; production admins go through
// the provisioning endpoint or the admin CLI.
func (s *Seeder) seedAdmin() error {
	email := strings.TrimSpace(s.cfg.Seed.AdminEmail)
	if email == "" || s.cfg.Seed.AdminPassword == "" {
		return nil
	}
	if s.cfg.IsProd() {
		log.Println("⚠️ Skipping admin seed in prod mode")
		return nil
	}

	var count int64
	if err := s.db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash(s.cfg.Seed.AdminPassword, s.cfg.Security.BcryptCost)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Email:    email,
		Password: hashedPassword,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin seeded: %s", admin.Email)
	return nil
}
