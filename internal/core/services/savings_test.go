package services

import (
	"errors"
	"math"
	"testing"

	"cleanenergy-leads/internal/core/domain"
)

func TestEstimateSavings(t *testing.T) {
	got, err := EstimateSavings(400)
	if err != nil {
		t.Fatalf("EstimateSavings: %v", err)
	}

	want := domain.SavingsProjection{
		TotalPaidIn1Year:  4800,
		SavedIn1Year:      1200,
		TotalPaidIn3Years: 14400,
		SavedIn3Years:     3600,
		TotalPaidIn5Years: 24000,
		SavedIn5Years:     6000,
	}
	if *got != want {
		t.Errorf("got %+v, want %+v", *got, want)
	}
}

func TestEstimateSavingsProperties(t *testing.T) {
	const eps = 1e-9
	for _, v := range []float64{0.01, 1, 99.99, 250, 1234.56, 1e6} {
		p, err := EstimateSavings(v)
		if err != nil {
			t.Fatalf("EstimateSavings(%v): %v", v, err)
		}

		if math.Abs(p.TotalPaidIn3Years-3*p.TotalPaidIn1Year) > eps*v*100 {
			t.Errorf("%v: 3-year total is not 3x the 1-year total", v)
		}
		if math.Abs(p.TotalPaidIn5Years-5*p.TotalPaidIn1Year) > eps*v*100 {
			t.Errorf("%v: 5-year total is not 5x the 1-year total", v)
		}
		if math.Abs(p.SavedIn1Year-DiscountRate*p.TotalPaidIn1Year) > eps*v*100 {
			t.Errorf("%v: savings are not 25%% of the total", v)
		}
		if !(p.SavedIn1Year < p.SavedIn3Years && p.SavedIn3Years < p.SavedIn5Years) {
			t.Errorf("%v: savings must grow with time: %+v", v, p)
		}
	}
}

func TestEstimateSavingsRejectsInvalid(t *testing.T) {
	for _, v := range []float64{0, -1, -400, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := EstimateSavings(v); !errors.Is(err, domain.ErrInvalidBillValue) {
			t.Errorf("EstimateSavings(%v): got %v, want ErrInvalidBillValue", v, err)
		}
	}
}
