/*
award.go - Award configuration consumed by the calculation rules

PURPOSE:
  The award's tables as plain data: classifications, dated minimum
  rates, penalty multipliers, overtime parameters, allowance rates.
  The engine never reads files; the config package builds this
  structure from the award's YAML directory.

EFFECTIVE-DATE SEMANTICS:
  Rate tables are versioned by effective date. A lookup for a pay
  period selects the most recent table whose effective date is on or
  before the period start, so historical periods are priced with
  historical rates.

SEE ALSO:
  - rate.go: Base rate resolution against these tables
  - config: YAML loader producing AwardConfig
*/
package engine

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AwardInfo identifies the award this configuration implements.
type AwardInfo struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Classification is an award classification level.
type Classification struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ClauseRef   string `json:"clause_ref"`
}

// ClassificationRate is the minimum rate for one classification as of
// a rate table's effective date.
type ClassificationRate struct {
	WeeklyRate decimal.Decimal `json:"weekly_rate"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

// AllowanceRates holds the allowance amounts effective with a rate table.
type AllowanceRates struct {
	LaundryPerShift decimal.Decimal `json:"laundry_per_shift"`
	LaundryPerWeek  decimal.Decimal `json:"laundry_per_week"`
}

// RateTable is one dated version of the award's minimum rates.
type RateTable struct {
	EffectiveDate Date                          `json:"effective_date"`
	Rates         map[string]ClassificationRate `json:"rates"`
	Allowances    AllowanceRates                `json:"allowances"`
}

// PenaltyRates holds the multipliers for one penalty day type, keyed by
// employment type. Casual weekend multipliers are inclusive rates
// applied to the base rate; they do not compound with casual loading.
type PenaltyRates struct {
	ClauseFullTime string          `json:"clause_full_time"`
	ClauseCasual   string          `json:"clause_casual"`
	FullTime       decimal.Decimal `json:"full_time"`
	PartTime       decimal.Decimal `json:"part_time"`
	Casual         decimal.Decimal `json:"casual"`
}

// ForEmploymentType returns the multiplier for the employment type.
func (p PenaltyRates) ForEmploymentType(t EmploymentType) decimal.Decimal {
	switch t {
	case PartTime:
		return p.PartTime
	case Casual:
		return p.Casual
	default:
		return p.FullTime
	}
}

// OvertimeRates parameterizes daily overtime detection and pricing.
//
// Weekday overtime is tiered: the first TierBoundaryHours beyond the
// daily threshold at the tier-1 multiplier, the remainder at tier 2.
// Weekend overtime is a single flat multiplier for the whole excess.
// Casual multipliers are inclusive of casual loading.
type OvertimeRates struct {
	DailyThresholdHours decimal.Decimal `json:"daily_threshold_hours"`
	TierBoundaryHours   decimal.Decimal `json:"tier_boundary_hours"`

	WeekdayTier1       decimal.Decimal `json:"weekday_tier_1"`
	WeekdayTier2       decimal.Decimal `json:"weekday_tier_2"`
	WeekdayTier1Casual decimal.Decimal `json:"weekday_tier_1_casual"`
	WeekdayTier2Casual decimal.Decimal `json:"weekday_tier_2_casual"`

	Weekend       decimal.Decimal `json:"weekend"`
	WeekendCasual decimal.Decimal `json:"weekend_casual"`
}

// AwardConfig is the complete rule parameterization for one award.
type AwardConfig struct {
	Award           AwardInfo                 `json:"award"`
	Classifications map[string]Classification `json:"classifications"`
	Saturday        PenaltyRates              `json:"saturday"`
	Sunday          PenaltyRates              `json:"sunday"`
	Overtime        OvertimeRates             `json:"overtime"`
	CasualLoading   decimal.Decimal           `json:"casual_loading"`
	RateTables      []RateTable               `json:"rate_tables"`
}

// RateTableOn returns the most recent rate table effective on or before
// the given date, or nil if no table is effective yet.
func (c *AwardConfig) RateTableOn(d Date) *RateTable {
	tables := make([]RateTable, len(c.RateTables))
	copy(tables, c.RateTables)
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].EffectiveDate.Before(tables[j].EffectiveDate)
	})

	var selected *RateTable
	for i := range tables {
		if tables[i].EffectiveDate.After(d) {
			break
		}
		selected = &tables[i]
	}
	return selected
}
