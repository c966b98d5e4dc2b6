package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/adapters/persistence/repositories"
	"cleanenergy-leads/internal/core/domain"
)

func TestGetLeadStatsEmpty(t *testing.T) {
	svc := NewDashboardService(repositories.NewLeadRepository(newTestDB(t)))

	stats, err := svc.GetLeadStats(context.Background())
	if err != nil {
		t.Fatalf("GetLeadStats: %v", err)
	}
	if stats.TotalLeads != 0 || stats.AverageMonthlyBill != 0 {
		t.Errorf("unexpected stats on empty store: %+v", stats)
	}
	if len(stats.BySupplyType) != len(domain.SupplyTypes) {
		t.Errorf("expected every supply type to be reported, got %v", stats.BySupplyType)
	}
	if stats.ByState == nil {
		t.Error("expected an empty state list, got nil")
	}
}

func TestGetLeadStats(t *testing.T) {
	repo := repositories.NewLeadRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	bills := []float64{100, 200, 300, 400}
	for i, bill := range bills {
		lead := &models.Lead{
			Name:             "Lead",
			Email:            "lead@example.com",
			Phone:            "1199999999",
			NationalID:       fmt.Sprintf("%011d", i+1),
			City:             "Recife",
			State:            "PE",
			SupplyType:       domain.SupplyTriphasic,
			MonthlyBillValue: bill,
		}
		if i == 0 {
			lead.CreatedAt = now.Add(-72 * time.Hour)
		}
		if err := repo.Create(ctx, lead); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	svc := NewDashboardService(repo)
	svc.now = func() time.Time { return now }

	stats, err := svc.GetLeadStats(ctx)
	if err != nil {
		t.Fatalf("GetLeadStats: %v", err)
	}
	if stats.TotalLeads != 4 {
		t.Errorf("got %d leads, want 4", stats.TotalLeads)
	}
	if stats.LeadsLast24h != 3 {
		t.Errorf("got %d recent leads, want 3", stats.LeadsLast24h)
	}
	if stats.TotalMonthlyBill != 1000 || stats.AverageMonthlyBill != 250 {
		t.Errorf("got total %v / avg %v, want 1000 / 250", stats.TotalMonthlyBill, stats.AverageMonthlyBill)
	}
	if stats.BySupplyType[domain.SupplyTriphasic] != 4 {
		t.Errorf("got %d triphasic, want 4", stats.BySupplyType[domain.SupplyTriphasic])
	}
	if len(stats.ByState) != 1 || stats.ByState[0].State != "PE" {
		t.Errorf("unexpected states: %+v", stats.ByState)
	}
	if !stats.GeneratedAt.Equal(now) {
		t.Errorf("got generatedAt %v, want %v", stats.GeneratedAt, now)
	}
}
