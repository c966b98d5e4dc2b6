package repositories

import (
	"context"

	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/core/domain"

	"gorm.io/gorm"
)

// adminRepository implements AdminRepository interface
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create creates a new admin; a taken email maps to domain.ErrAdminAlreadyExists
func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.db.WithContext(ctx).Create(admin).Error
	if IsUniqueViolation(err) {
		return domain.ErrAdminAlreadyExists
	}
	return err
}

// GetByEmail gets an admin by email
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// ExistsByEmail checks if email exists
func (r *adminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// List lists every admin ordered by ID
func (r *adminRepository) List(ctx context.Context) ([]*models.Admin, error) {
	var admins []*models.Admin
	err := r.db.WithContext(ctx).Order("id ASC").Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}
