// Package timeoff projects PTO and sick balances forward over a set of
// planned vacation days. It uses the generic calendar primitives with
// time-off specific limits, accrual and deduction rules.
package timeoff

import "github.com/warp/pto-projector/generic"

// =============================================================================
// BALANCES AND RATES
// =============================================================================

// Balances is a (PTO, sick) pair of hour balances.
type Balances struct {
	PTO  generic.Hours
	Sick generic.Hours
}

// Rates are hours of each balance earned per hour worked.
type Rates struct {
	PTO  generic.Hours
	Sick generic.Hours
}
