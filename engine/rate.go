/*
rate.go - Base rate resolution and casual loading

PURPOSE:
  Determines the employee's base hourly rate and, for casuals, the
  loaded rate. All subsequent pricing derives from these two numbers.

RESOLUTION ORDER:
  1. An employer-provided base rate override short-circuits lookup.
  2. Otherwise the employee's classification is looked up in the award
     and priced from the rate table effective at the period start.

CASUAL LOADING:
  Loaded rate = base rate x casual loading (25%), exact. The loading
  audit step is recorded for every employee, including non-casuals,
  so the trail shows the rule was considered and why it did not apply.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ResolvedRates is the output of rate resolution.
type ResolvedRates struct {
	Base   decimal.Decimal // award minimum or employer override
	Loaded decimal.Decimal // Base x casual loading; equals Base for non-casuals
}

// OrdinaryWeekday returns the rate for weekday ordinary hours: the
// loaded rate for casuals, the base rate otherwise.
func (r ResolvedRates) OrdinaryWeekday(e Employee) decimal.Decimal {
	if e.IsCasual() {
		return r.Loaded
	}
	return r.Base
}

// ResolveRates determines the employee's base and loaded hourly rates,
// recording the lookup and loading steps on the trail.
func ResolveRates(cfg *AwardConfig, e Employee, period PayPeriod, trail *AuditTrail) (ResolvedRates, error) {
	var base decimal.Decimal

	if e.BaseHourlyRate != nil {
		base = *e.BaseHourlyRate
		trail.Record("base_rate_lookup", "Base Rate Lookup", "14.2",
			map[string]any{
				"classification": e.ClassificationCode,
				"rate_source":    "employer_override",
				"period_start":   period.StartDate.String(),
			},
			map[string]any{"base_hourly_rate": base},
			fmt.Sprintf("Employer-provided base rate %s overrides classification lookup", money(base)))
	} else {
		class, ok := cfg.Classifications[e.ClassificationCode]
		if !ok {
			return ResolvedRates{}, &ClassificationNotFoundError{Code: e.ClassificationCode}
		}

		table := cfg.RateTableOn(period.StartDate)
		if table == nil {
			return ResolvedRates{}, &RateNotFoundError{Classification: e.ClassificationCode, Date: period.StartDate}
		}
		rate, ok := table.Rates[e.ClassificationCode]
		if !ok {
			return ResolvedRates{}, &RateNotFoundError{Classification: e.ClassificationCode, Date: period.StartDate}
		}

		base = rate.HourlyRate
		trail.Record("base_rate_lookup", "Base Rate Lookup", "14.2",
			map[string]any{
				"classification": e.ClassificationCode,
				"rate_source":    "award_minimum",
				"effective_date": table.EffectiveDate.String(),
				"period_start":   period.StartDate.String(),
			},
			map[string]any{"base_hourly_rate": base},
			fmt.Sprintf("%s base rate %s per hour, rates effective %s",
				class.Name, money(base), table.EffectiveDate))
	}

	if base.Sign() <= 0 {
		return ResolvedRates{}, &InvalidEmployeeError{Field: "base_hourly_rate", Reason: "must be positive"}
	}

	rates := ResolvedRates{Base: base, Loaded: base}
	loadingMultiplier := decimal.NewFromInt(1).Add(cfg.CasualLoading)

	if e.IsCasual() {
		rates.Loaded = base.Mul(loadingMultiplier)
		trail.Record("casual_loading", "Casual Loading", "10.4(b)",
			map[string]any{"base_hourly_rate": base, "loading": cfg.CasualLoading},
			map[string]any{"loaded_hourly_rate": rates.Loaded, "loading_applied": true},
			fmt.Sprintf("%s × %s = %s", money(base), loadingMultiplier, money(rates.Loaded)))
	} else {
		trail.Record("casual_loading", "Casual Loading", "10.4(b)",
			map[string]any{"base_hourly_rate": base, "employment_type": string(e.EmploymentType)},
			map[string]any{"loaded_hourly_rate": base, "loading_applied": false},
			fmt.Sprintf("No casual loading: employment type is %s", e.EmploymentType))
	}

	return rates, nil
}

// money renders a decimal as a dollar string for audit reasoning lines.
func money(d decimal.Decimal) string {
	return "$" + d.String()
}
