package repositories

import (
	"context"
	"time"

	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/core/domain"

	"gorm.io/gorm"
)

// leadRepository implements LeadRepository interface
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

// newestFirst is the listing order for leads
const newestFirst = "created_at DESC, id DESC"

// Create inserts a lead. The unique index on national_id is the source of truth:
// a violation maps to domain.ErrDuplicateLead.
func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	err := r.db.WithContext(ctx).Create(lead).Error
	if IsUniqueViolation(err) {
		return domain.ErrDuplicateLead
	}
	return err
}

// ExistsByNationalID checks if a lead with this national ID was already captured
func (r *leadRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Lead{}).Where("national_id = ?", nationalID).Count(&count).Error
	return count > 0, err
}

// List lists leads newest first with pagination
func (r *leadRepository) List(ctx context.Context, offset, limit int) ([]*models.Lead, int64, error) {
	leads := make([]*models.Lead, 0)
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Lead{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order(newestFirst).
		Offset(offset).
		Limit(limit).
		Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// ListAll lists every lead newest first
func (r *leadRepository) ListAll(ctx context.Context) ([]*models.Lead, error) {
	leads := make([]*models.Lead, 0)
	err := r.db.WithContext(ctx).Order(newestFirst).Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

// Delete hard deletes a lead; domain.ErrLeadNotFound when no row matched
func (r *leadRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Lead{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

// CountSince counts leads created at or after since
func (r *leadRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Lead{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

// Totals returns the number of leads and the sum of their monthly bills
func (r *leadRepository) Totals(ctx context.Context) (int64, float64, error) {
	var row struct {
		Count   int64
		BillSum float64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Select("COUNT(*) AS count, COALESCE(SUM(monthly_bill_value), 0) AS bill_sum").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Count, row.BillSum, nil
}

// CountBySupplyType groups leads by supply type; every known type is present
func (r *leadRepository) CountBySupplyType(ctx context.Context) (map[domain.SupplyType]int64, error) {
	var rows []struct {
		SupplyType domain.SupplyType
		Count      int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Select("supply_type, COUNT(*) AS count").
		Group("supply_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.SupplyType]int64, len(domain.SupplyTypes))
	for _, t := range domain.SupplyTypes {
		counts[t] = 0
	}
	for _, row := range rows {
		counts[row.SupplyType] = row.Count
	}
	return counts, nil
}

// CountByState returns the states with most leads, at most limit entries
func (r *leadRepository) CountByState(ctx context.Context, limit int) ([]domain.StateCount, error) {
	states := make([]domain.StateCount, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Select("state, COUNT(*) AS count").
		Group("state").
		Order("count DESC, state ASC").
		Limit(limit).
		Scan(&states).Error
	if err != nil {
		return nil, err
	}
	return states, nil
}
