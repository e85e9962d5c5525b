package model

import "github.com/shopspring/decimal"

// Discrepancy is a per-client signed difference between the externally
// reported month-end balance and the total computed from stored visits.
// Derived output only, never persisted.
type Discrepancy struct {
	ClientCode      string          `json:"client_code"`
	ExpectedBalance decimal.Decimal `json:"expected_balance"`
	ActualTotal     decimal.Decimal `json:"actual_total"`
	Difference      decimal.Decimal `json:"difference"` // actual - expected
}
