/*
Package engine implements deterministic award pay calculation.

PURPOSE:
  This package contains the core interpretation logic for the Aged Care
  Award (MA000018): base rate resolution, casual loading, calendar-day
  shift segmentation, weekend penalties, daily overtime, and capped
  allowances. Given the same employee, pay period, shifts, and award
  configuration, the engine always produces the same result.

KEY CONCEPTS IN THIS FILE (types.go):
  - PayCategory: Classification of every paid hour (ordinary, penalty,
    overtime), each mapped to an award clause
  - PayLine: One priced block of hours (date, category, hours x rate)
  - AllowancePayment: A non-hourly payment such as laundry allowance
  - AuditStep / AuditTrace: A replayable record of every rule applied
  - CalculationResult: The complete output of a calculation

DESIGN PRINCIPLES:
  1. Determinism: No I/O, no clocks, no randomness inside the rules.
     The Calculator's id and timestamp sources are injectable.
  2. Precision: decimal.Decimal everywhere money or hours appear.
     The engine never rounds; presentation rounding belongs to callers.
  3. Auditability: Every applied rule emits a step with its clause
     reference, inputs, outputs, and a human-readable reasoning line.
  4. Whole-calculation failure: Invalid input aborts the calculation.
     There are no partial results.

SEE ALSO:
  - calculator.go: Orchestration of the rule pipeline
  - award.go: Award configuration consumed by the rules
  - audit.go: Audit trail construction
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// EngineVersion is stamped on every CalculationResult so stored results
// can be traced back to the rule set that produced them.
const EngineVersion = "1.0.0"

// =============================================================================
// PAY CATEGORIES
// =============================================================================

// PayCategory classifies every paid hour. Categories are mutually
// exclusive: an hour is either ordinary, penalty, or overtime.
type PayCategory string

const (
	CategoryOrdinary       PayCategory = "ordinary"
	CategoryOrdinaryCasual PayCategory = "ordinary_casual"
	CategorySaturday       PayCategory = "saturday"
	CategorySaturdayCasual PayCategory = "saturday_casual"
	CategorySunday         PayCategory = "sunday"
	CategorySundayCasual   PayCategory = "sunday_casual"
	CategoryOvertime150    PayCategory = "overtime_150"
	CategoryOvertime200    PayCategory = "overtime_200"
)

// IsOvertime reports whether the category is an overtime category.
func (c PayCategory) IsOvertime() bool {
	return c == CategoryOvertime150 || c == CategoryOvertime200
}

// IsPenalty reports whether the category is a weekend penalty category.
func (c PayCategory) IsPenalty() bool {
	switch c {
	case CategorySaturday, CategorySaturdayCasual, CategorySunday, CategorySundayCasual:
		return true
	}
	return false
}

// IsOrdinary reports whether the category is weekday ordinary time.
func (c PayCategory) IsOrdinary() bool {
	return c == CategoryOrdinary || c == CategoryOrdinaryCasual
}

// =============================================================================
// DAY TYPES
// =============================================================================

// DayType is the award-relevant classification of a calendar day.
// It is derived from the local calendar date of each worked instant,
// never from the shift's nominal date.
type DayType string

const (
	DayWeekday  DayType = "weekday"
	DaySaturday DayType = "saturday"
	DaySunday   DayType = "sunday"
)

// DayTypeOf returns the DayType for a calendar date.
func DayTypeOf(t time.Time) DayType {
	switch t.Weekday() {
	case time.Saturday:
		return DaySaturday
	case time.Sunday:
		return DaySunday
	default:
		return DayWeekday
	}
}

// =============================================================================
// PAY LINES AND ALLOWANCES
// =============================================================================

// PayLine is one priced block of hours. Amount is always Hours x Rate,
// exact, unrounded.
type PayLine struct {
	Date      Date            `json:"date"`
	ShiftID   string          `json:"shift_id"`
	Category  PayCategory     `json:"category"`
	Hours     decimal.Decimal `json:"hours"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	ClauseRef string          `json:"clause_ref"`
}

// AllowancePayment is a non-hourly payment attached to the pay period.
type AllowancePayment struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Units       int             `json:"units"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	ClauseRef   string          `json:"clause_ref"`
}

// =============================================================================
// TOTALS AND RESULT
// =============================================================================

// PayTotals aggregates pay lines and allowances. Hours are grouped by
// category family: ordinary, overtime, penalty.
type PayTotals struct {
	GrossPay        decimal.Decimal `json:"gross_pay"`
	OrdinaryHours   decimal.Decimal `json:"ordinary_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	PenaltyHours    decimal.Decimal `json:"penalty_hours"`
	AllowancesTotal decimal.Decimal `json:"allowances_total"`
}

// CalculationResult is the complete output of one pay calculation.
type CalculationResult struct {
	CalculationID string             `json:"calculation_id"`
	Timestamp     time.Time          `json:"timestamp"`
	EngineVersion string             `json:"engine_version"`
	EmployeeID    string             `json:"employee_id"`
	PayPeriod     PayPeriod          `json:"pay_period"`
	PayLines      []PayLine          `json:"pay_lines"`
	Allowances    []AllowancePayment `json:"allowances"`
	Totals        PayTotals          `json:"totals"`
	AuditTrace    AuditTrace         `json:"audit_trace"`
}
