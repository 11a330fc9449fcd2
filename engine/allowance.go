/*
allowance.go - Allowance kinds and evaluation

PURPOSE:
  Allowances are non-hourly payments evaluated once per pay period.
  Each kind knows its own eligibility test and computation; the
  calculator evaluates every registered kind in a fixed order so the
  audit trail is stable.

ADDING A KIND:
  Implement AllowanceKind and add it to registeredAllowances. Kinds
  must be pure: same inputs, same payment.

SHIPPED KINDS:
  Laundry (clause 15.2(b)): a per-shift amount for employees required
  to launder their own uniforms (tag "laundry_allowance"), capped at a
  weekly maximum.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TagLaundryAllowance marks employees entitled to laundry allowance.
const TagLaundryAllowance = "laundry_allowance"

// AllowanceKind is one allowance rule. Compute returns nil when the
// allowance yields no payment for this period.
type AllowanceKind interface {
	// Type is the stable identifier used in payments and audit steps.
	Type() string

	// Eligible reports whether the employee can receive this allowance.
	Eligible(e Employee) bool

	// Compute evaluates the allowance for the period, recording its
	// audit step whether or not a payment results.
	Compute(e Employee, shifts []Shift, rates AllowanceRates, trail *AuditTrail) *AllowancePayment
}

// registeredAllowances is evaluated in order for every calculation.
var registeredAllowances = []AllowanceKind{
	LaundryAllowance{},
}

// AllowanceEligible reports whether any registered allowance kind
// could pay the employee.
func AllowanceEligible(e Employee) bool {
	for _, kind := range registeredAllowances {
		if kind.Eligible(e) {
			return true
		}
	}
	return false
}

// EvaluateAllowances runs every registered allowance kind.
func EvaluateAllowances(e Employee, shifts []Shift, rates AllowanceRates, trail *AuditTrail) []AllowancePayment {
	payments := []AllowancePayment{}
	for _, kind := range registeredAllowances {
		if p := kind.Compute(e, shifts, rates, trail); p != nil {
			payments = append(payments, *p)
		}
	}
	return payments
}

// =============================================================================
// LAUNDRY ALLOWANCE - Clause 15.2(b)
// =============================================================================

// LaundryAllowance pays a fixed amount per shift worked, capped weekly.
type LaundryAllowance struct{}

func (LaundryAllowance) Type() string { return "laundry" }

func (LaundryAllowance) Eligible(e Employee) bool {
	return e.HasTag(TagLaundryAllowance)
}

func (l LaundryAllowance) Compute(e Employee, shifts []Shift, rates AllowanceRates, trail *AuditTrail) *AllowancePayment {
	if !l.Eligible(e) {
		trail.Record("laundry_allowance", "Laundry Allowance", "15.2(b)",
			map[string]any{"employee_id": e.ID, "eligible": false},
			map[string]any{"amount": decimal.Zero},
			fmt.Sprintf("Employee not tagged %q: no laundry allowance", TagLaundryAllowance))
		return nil
	}

	if rates.LaundryPerShift.Sign() <= 0 {
		trail.Record("laundry_allowance", "Laundry Allowance", "15.2(b)",
			map[string]any{"employee_id": e.ID, "eligible": true, "per_shift": rates.LaundryPerShift},
			map[string]any{"amount": decimal.Zero},
			"Laundry rate not configured for this period: no allowance paid")
		trail.Warn("allowance_rate_missing",
			"laundry allowance rate is not configured for this period",
			SeverityMedium)
		return nil
	}

	units := len(shifts)
	uncapped := rates.LaundryPerShift.Mul(decimal.NewFromInt(int64(units)))
	amount := decimal.Min(uncapped, rates.LaundryPerWeek)

	reasoning := fmt.Sprintf("%d shifts × %s = %s", units, money(rates.LaundryPerShift), money(uncapped))
	if uncapped.GreaterThan(rates.LaundryPerWeek) {
		reasoning = fmt.Sprintf("%d shifts × %s = %s, capped at weekly maximum %s",
			units, money(rates.LaundryPerShift), money(uncapped), money(rates.LaundryPerWeek))
	}

	trail.Record("laundry_allowance", "Laundry Allowance", "15.2(b)",
		map[string]any{
			"employee_id": e.ID,
			"eligible":    true,
			"shift_count": units,
			"per_shift":   rates.LaundryPerShift,
			"weekly_cap":  rates.LaundryPerWeek,
		},
		map[string]any{"amount": amount, "capped": uncapped.GreaterThan(rates.LaundryPerWeek)},
		reasoning)

	if amount.Sign() <= 0 {
		return nil
	}

	return &AllowancePayment{
		Type:        l.Type(),
		Description: "Laundry allowance",
		Units:       units,
		Rate:        rates.LaundryPerShift,
		Amount:      amount,
		ClauseRef:   "15.2(b)",
	}
}
