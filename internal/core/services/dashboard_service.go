package services

import (
	"context"
	"time"

	"cleanenergy-leads/internal/adapters/persistence/repositories"
	"cleanenergy-leads/internal/core/domain"
)

// topStatesLimit caps the per-state breakdown on the dashboard
const topStatesLimit = 10

// DashboardService handles dashboard operations
type DashboardService struct {
	leadRepo repositories.LeadRepository
	now      func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(leadRepo repositories.LeadRepository) *DashboardService {
	return &DashboardService{
		leadRepo: leadRepo,
		now:      time.Now,
	}
}

// GetLeadStats aggregates captured leads for the admin dashboard
func (s *DashboardService) GetLeadStats(ctx context.Context) (*domain.LeadStats, error) {
	now := s.now()
	stats := &domain.LeadStats{GeneratedAt: now}

	total, billSum, err := s.leadRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalLeads = total
	stats.TotalMonthlyBill = billSum
	if total > 0 {
		stats.AverageMonthlyBill = billSum / float64(total)
	}

	if stats.LeadsLast24h, err = s.leadRepo.CountSince(ctx, now.Add(-24*time.Hour)); err != nil {
		return nil, err
	}

	if stats.BySupplyType, err = s.leadRepo.CountBySupplyType(ctx); err != nil {
		return nil, err
	}

	if stats.ByState, err = s.leadRepo.CountByState(ctx, topStatesLimit); err != nil {
		return nil, err
	}

	return stats, nil
}
