package models

import (
	"time"

	"cleanenergy-leads/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Credential store
// ============================================================

// Admin represents admins table
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Admin) TableName() string {
	return "admins"
}

// ToSummary returns the public view of the admin
func (a *Admin) ToSummary() *domain.AdminSummary {
	return &domain.AdminSummary{
		ID:    a.ID,
		Email: a.Email,
	}
}

// ============================================================
// Lead store
// ============================================================

// Lead represents leads table
type Lead struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             string            `gorm:"size:150;not null" json:"name"`
	Email            string            `gorm:"size:191;not null" json:"email"`
	Phone            string            `gorm:"size:30;not null" json:"phone"`
	NationalID       string            `gorm:"column:national_id;uniqueIndex;size:11;not null" json:"nationalId"`
	City             string            `gorm:"size:100;not null" json:"city"`
	State            string            `gorm:"size:50;not null;index" json:"state"`
	SupplyType       domain.SupplyType `gorm:"size:20;not null" json:"supplyType"`
	MonthlyBillValue float64           `gorm:"type:decimal(12,2);not null" json:"monthlyBillValue"`
	CreatedAt        time.Time         `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (Lead) TableName() string {
	return "leads"
}

// AutoMigrate creates or updates every table owned by the service
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&Lead{},
	)
}
