package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/adapters/persistence/repositories"
	"cleanenergy-leads/internal/core/domain"
)

// Lead errors
var (
	ErrDuplicateLead = domain.ErrDuplicateLead
	ErrLeadNotFound  = domain.ErrLeadNotFound
)

// LeadService handles lead capture and management
type LeadService struct {
	leadRepo repositories.LeadRepository
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repositories.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

// SubmitLeadInput represents a public lead submission
type SubmitLeadInput struct {
	Name             string            `json:"name" validate:"required,min=3,max=150"`
	Email            string            `json:"email" validate:"required,email,max=191"`
	Phone            string            `json:"phone" validate:"required,min=10,max=30"`
	NationalID       string            `json:"nationalId" validate:"required,len=11,number"`
	City             string            `json:"city" validate:"required,max=100"`
	State            string            `json:"state" validate:"required,max=50"`
	SupplyType       domain.SupplyType `json:"supplyType" validate:"required,oneof=MONOPHASIC BIPHASIC TRIPHASIC"`
	MonthlyBillValue float64           `json:"monthlyBillValue" validate:"required,gt=0,lte=9999999999.99"`
}

func (in *SubmitLeadInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.NationalID = strings.TrimSpace(in.NationalID)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.SupplyType = domain.SupplyType(strings.ToUpper(strings.TrimSpace(string(in.SupplyType))))
}

// Submit validates and stores a new lead. A national ID that is already
// stored fails with ErrDuplicateLead, including when two submissions race.
func (s *LeadService) Submit(ctx context.Context, input *SubmitLeadInput) (*models.Lead, error) {
	input.normalize()
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if math.IsInf(input.MonthlyBillValue, 0) || math.IsNaN(input.MonthlyBillValue) {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{
			Field:   "monthlyBillValue",
			Tag:     "finite",
			Message: "monthlyBillValue must be a finite number",
		}}}
	}

	// Stored as DECIMAL(12,2)
	input.MonthlyBillValue = roundCents(input.MonthlyBillValue)
	if input.MonthlyBillValue <= 0 {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{
			Field:   "monthlyBillValue",
			Tag:     "gt",
			Message: "monthlyBillValue must be at least 0.01",
		}}}
	}

	// 1. Fast path for the common duplicate case
	exists, err := s.leadRepo.ExistsByNationalID(ctx, input.NationalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateLead
	}

	// 2. Insert; the unique index settles concurrent submissions
	lead := &models.Lead{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		NationalID:       input.NationalID,
		City:             input.City,
		State:            input.State,
		SupplyType:       input.SupplyType,
		MonthlyBillValue: input.MonthlyBillValue,
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	log.Printf("✅ Lead captured: #%d (%s/%s)", lead.ID, lead.City, lead.State)

	return lead, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// List returns every lead, newest first
func (s *LeadService) List(ctx context.Context) ([]*models.Lead, error) {
	return s.leadRepo.ListAll(ctx)
}

// ListPage returns one page of leads, newest first, with the total count
func (s *LeadService) ListPage(ctx context.Context, offset, limit int) ([]*models.Lead, int64, error) {
	return s.leadRepo.List(ctx, offset, limit)
}

// Remove deletes a lead by ID. ErrLeadNotFound is returned for a missing ID;
// callers present it the same way as any other failure.
func (s *LeadService) Remove(ctx context.Context, id uint) error {
	if err := s.leadRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			log.Printf("⚠️ Delete lead #%d: not found", id)
		} else {
			log.Printf("❌ Delete lead #%d: %v", id, err)
		}
		return err
	}

	log.Printf("🗑️ Lead deleted: #%d", id)
	return nil
}
