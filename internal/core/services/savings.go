package services

import (
	"math"

	"cleanenergy-leads/internal/core/domain"
)

// DiscountRate is the share of the monthly bill saved with the service
const DiscountRate = 0.25

// EstimateSavings projects what a customer pays without the service and
// saves with it over 1, 3 and 5 years
func EstimateSavings(monthlyBillValue float64) (*domain.SavingsProjection, error) {
	if math.IsNaN(monthlyBillValue) || math.IsInf(monthlyBillValue, 0) || monthlyBillValue <= 0 {
		return nil, domain.ErrInvalidBillValue
	}

	totalPaid := func(years int) float64 { return monthlyBillValue * float64(12*years) }
	saved := func(years int) float64 { return monthlyBillValue * DiscountRate * float64(12*years) }

	return &domain.SavingsProjection{
		TotalPaidIn1Year:  totalPaid(1),
		SavedIn1Year:      saved(1),
		TotalPaidIn3Years: totalPaid(3),
		SavedIn3Years:     saved(3),
		TotalPaidIn5Years: totalPaid(5),
		SavedIn5Years:     saved(5),
	}, nil
}
