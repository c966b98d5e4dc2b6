package domain

import "time"

// SupplyType is the electrical supply of the customer's installation
type SupplyType string

const (
	SupplyMonophasic SupplyType = "MONOPHASIC"
	SupplyBiphasic   SupplyType = "BIPHASIC"
	SupplyTriphasic  SupplyType = "TRIPHASIC"
)

// SupplyTypes lists every accepted supply type
var SupplyTypes = []SupplyType{SupplyMonophasic, SupplyBiphasic, SupplyTriphasic}

// IsValid reports whether s is one of the known supply types
func (s SupplyType) IsValid() bool {
	for _, t := range SupplyTypes {
		if s == t {
			return true
		}
	}
	return false
}

// AuthPayload is what a verified bearer token proves about its holder
type AuthPayload struct {
	AdminID uint   `json:"adminId"`
	Email   string `json:"email"`
}

// AdminSummary is the public view of an admin account
type AdminSummary struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// SavingsProjection compares the cost without and with the discount
// over 1, 3 and 5 years
type SavingsProjection struct {
	TotalPaidIn1Year  float64 `json:"totalPaidIn1Year"`
	SavedIn1Year      float64 `json:"savedIn1Year"`
	TotalPaidIn3Years float64 `json:"totalPaidIn3Years"`
	SavedIn3Years     float64 `json:"savedIn3Years"`
	TotalPaidIn5Years float64 `json:"totalPaidIn5Years"`
	SavedIn5Years     float64 `json:"savedIn5Years"`
}

// StateCount is the number of leads captured in one state
type StateCount struct {
	State string `json:"state"`
	Count int64  `json:"count"`
}

// LeadStats summarises captured leads for the admin dashboard
type LeadStats struct {
	TotalLeads         int64                `json:"totalLeads"`
	LeadsLast24h       int64                `json:"leadsLast24h"`
	TotalMonthlyBill   float64              `json:"totalMonthlyBill"`
	AverageMonthlyBill float64              `json:"averageMonthlyBill"`
	BySupplyType       map[SupplyType]int64 `json:"bySupplyType"`
	ByState            []StateCount         `json:"byState"`
	GeneratedAt        time.Time            `json:"generatedAt"`
}
