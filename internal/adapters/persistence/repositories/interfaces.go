package repositories

import (
	"context"
	"time"

	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/core/domain"
)

// AdminRepository defines admin credential store interface
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*models.Admin, error)
}

// LeadRepository defines lead store interface.
// Create and Delete return domain errors for constraint and missing-row cases.
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.Lead, int64, error)
	ListAll(ctx context.Context) ([]*models.Lead, error)
	Delete(ctx context.Context, id uint) error
	CountSince(ctx context.Context, since time.Time) (int64, error)
	Totals(ctx context.Context) (count int64, billSum float64, err error)
	CountBySupplyType(ctx context.Context) (map[domain.SupplyType]int64, error)
	CountByState(ctx context.Context, limit int) ([]domain.StateCount, error)
}
