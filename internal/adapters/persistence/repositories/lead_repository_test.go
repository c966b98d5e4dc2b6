package repositories

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/config"
	"cleanenergy-leads/internal/core/domain"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		AppMode: "prod", // quiet GORM logger
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			DBName: filepath.Join(t.TempDir(), "leads.db"),
		},
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

func newLead(nationalID, state string, supply domain.SupplyType, bill float64) *models.Lead {
	return &models.Lead{
		Name:             "Maria Silva",
		Email:            "maria@example.com",
		Phone:            "+55 11 91234-5678",
		NationalID:       nationalID,
		City:             "Campinas",
		State:            state,
		SupplyType:       supply,
		MonthlyBillValue: bill,
	}
}

func TestLeadCreateAndGet(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))
	ctx := context.Background()

	lead := newLead("12345678901", "SP", domain.SupplyBiphasic, 350.5)
	if err := repo.Create(ctx, lead); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if lead.ID == 0 {
		t.Fatal("expected non-zero ID after create")
	}
	if lead.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set by the store")
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 || all[0].ID != lead.ID {
		t.Fatalf("got %+v, want the created lead", all)
	}
	got := all[0]
	if got.NationalID != "12345678901" {
		t.Errorf("got nationalId %q, want %q", got.NationalID, "12345678901")
	}
	if got.MonthlyBillValue != 350.5 {
		t.Errorf("got bill %v, want 350.5", got.MonthlyBillValue)
	}

	exists, err := repo.ExistsByNationalID(ctx, "12345678901")
	if err != nil || !exists {
		t.Errorf("ExistsByNationalID = %v, %v; want true, nil", exists, err)
	}
	exists, _ = repo.ExistsByNationalID(ctx, "00000000000")
	if exists {
		t.Error("expected unknown national ID to not exist")
	}
}

func TestLeadCreateDuplicateNationalID(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, newLead("11122233344", "SP", domain.SupplyMonophasic, 100)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repo.Create(ctx, newLead("11122233344", "RJ", domain.SupplyTriphasic, 900))
	if !errors.Is(err, domain.ErrDuplicateLead) {
		t.Fatalf("got %v, want ErrDuplicateLead", err)
	}

	all, _ := repo.ListAll(ctx)
	if len(all) != 1 {
		t.Errorf("got %d leads, want 1", len(all))
	}
}

func TestLeadListNewestFirst(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		lead := newLead(fmt.Sprintf("%011d", i+1), "SP", domain.SupplyBiphasic, 100)
		lead.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Create(ctx, lead); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("got %d leads, want 5", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Errorf("lead %d is newer than lead %d", all[i].ID, all[i-1].ID)
		}
	}
	if all[0].NationalID != "00000000005" {
		t.Errorf("got newest %q, want 00000000005", all[0].NationalID)
	}

	page, total, err := repo.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 {
		t.Errorf("got total %d, want 5", total)
	}
	if len(page) != 2 || page[0].NationalID != "00000000003" || page[1].NationalID != "00000000002" {
		t.Errorf("unexpected second page: %+v", page)
	}
}

func TestLeadListAllEmpty(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))

	all, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", all)
	}
}

func TestLeadDelete(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))
	ctx := context.Background()

	lead := newLead("99988877766", "MG", domain.SupplyTriphasic, 800)
	if err := repo.Create(ctx, lead); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, lead.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if exists, err := repo.ExistsByNationalID(ctx, "99988877766"); err != nil || exists {
		t.Errorf("expected deleted lead to be gone, got exists=%v err=%v", exists, err)
	}

	if err := repo.Delete(ctx, lead.ID); !errors.Is(err, domain.ErrLeadNotFound) {
		t.Errorf("second delete: got %v, want ErrLeadNotFound", err)
	}
}

func TestLeadAggregates(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))
	ctx := context.Background()

	count, sum, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("Totals on empty table: %v", err)
	}
	if count != 0 || sum != 0 {
		t.Errorf("got %d/%v on empty table, want 0/0", count, sum)
	}

	old := newLead("00000000001", "SP", domain.SupplyMonophasic, 100)
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	fixtures := []*models.Lead{
		old,
		newLead("00000000002", "SP", domain.SupplyBiphasic, 200),
		newLead("00000000003", "RJ", domain.SupplyBiphasic, 300),
		newLead("00000000004", "MG", domain.SupplyBiphasic, 400),
		newLead("00000000005", "RJ", domain.SupplyMonophasic, 500),
		newLead("00000000006", "SP", domain.SupplyBiphasic, 600),
	}
	for _, l := range fixtures {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	count, sum, err = repo.Totals(ctx)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if count != 6 || sum != 2100 {
		t.Errorf("got %d/%v, want 6/2100", count, sum)
	}

	recent, err := repo.CountSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("CountSince: %v", err)
	}
	if recent != 5 {
		t.Errorf("got %d leads in the last 24h, want 5", recent)
	}

	bySupply, err := repo.CountBySupplyType(ctx)
	if err != nil {
		t.Fatalf("CountBySupplyType: %v", err)
	}
	want := map[domain.SupplyType]int64{
		domain.SupplyMonophasic: 2,
		domain.SupplyBiphasic:   4,
		domain.SupplyTriphasic:  0,
	}
	for k, v := range want {
		if bySupply[k] != v {
			t.Errorf("supply %s: got %d, want %d", k, bySupply[k], v)
		}
	}

	byState, err := repo.CountByState(ctx, 2)
	if err != nil {
		t.Fatalf("CountByState: %v", err)
	}
	if len(byState) != 2 {
		t.Fatalf("got %d states, want 2", len(byState))
	}
	if byState[0] != (domain.StateCount{State: "SP", Count: 3}) {
		t.Errorf("got first %+v, want SP/3", byState[0])
	}
	if byState[1] != (domain.StateCount{State: "RJ", Count: 2}) {
		t.Errorf("got second %+v, want RJ/2", byState[1])
	}
}
