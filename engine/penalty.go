/*
penalty.go - Pricing of ordinary (non-overtime) hours by day type

PURPOSE:
  Prices a block of ordinary hours according to the day it falls on:
  weekday base (loaded for casuals), Saturday penalty, Sunday penalty.

NON-COMPOUNDING RULE:
  Casual weekend multipliers (1.75 Saturday, 2.0 Sunday) are inclusive
  rates applied to the BASE rate. Casual loading is never stacked on
  top of a weekend penalty; a casual Saturday hour is base x 1.75, not
  base x 1.25 x 1.5.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ordinaryPricing is the resolved pricing for ordinary hours on one
// day type for one employee.
type ordinaryPricing struct {
	ruleID     string
	ruleName   string
	clause     string
	category   PayCategory
	multiplier decimal.Decimal
	rate       decimal.Decimal
}

var one = decimal.NewFromInt(1)

// ordinaryPricingFor resolves category, clause, and rate for ordinary
// hours. Day type is resolved first; weekday-vs-weekend is an explicit
// branch, never an arithmetic fallthrough.
func ordinaryPricingFor(cfg *AwardConfig, e Employee, rates ResolvedRates, day DayType) ordinaryPricing {
	switch day {
	case DaySaturday:
		p := ordinaryPricing{
			ruleID:     "saturday_penalty",
			ruleName:   "Saturday Penalty",
			clause:     cfg.Saturday.ClauseFullTime,
			category:   CategorySaturday,
			multiplier: cfg.Saturday.ForEmploymentType(e.EmploymentType),
		}
		if e.IsCasual() {
			p.clause = cfg.Saturday.ClauseCasual
			p.category = CategorySaturdayCasual
		}
		p.rate = rates.Base.Mul(p.multiplier)
		return p

	case DaySunday:
		p := ordinaryPricing{
			ruleID:     "sunday_penalty",
			ruleName:   "Sunday Penalty",
			clause:     cfg.Sunday.ClauseFullTime,
			category:   CategorySunday,
			multiplier: cfg.Sunday.ForEmploymentType(e.EmploymentType),
		}
		if e.IsCasual() {
			p.clause = cfg.Sunday.ClauseCasual
			p.category = CategorySundayCasual
		}
		p.rate = rates.Base.Mul(p.multiplier)
		return p

	default:
		p := ordinaryPricing{
			ruleID:     "weekday_ordinary",
			ruleName:   "Weekday Ordinary Hours",
			clause:     "22.1",
			category:   CategoryOrdinary,
			multiplier: one,
			rate:       rates.Base,
		}
		if e.IsCasual() {
			p.clause = "10.4(b), 22.1"
			p.category = CategoryOrdinaryCasual
			p.multiplier = one.Add(cfg.CasualLoading)
			p.rate = rates.Loaded
		}
		return p
	}
}

// PriceOrdinaryHours prices a block of ordinary hours from one segment
// and records the pricing step.
func PriceOrdinaryHours(cfg *AwardConfig, e Employee, rates ResolvedRates, seg ShiftSegment, hours decimal.Decimal, trail *AuditTrail) PayLine {
	p := ordinaryPricingFor(cfg, e, rates, seg.DayType)
	amount := hours.Mul(p.rate)

	line := PayLine{
		Date:      seg.Date,
		ShiftID:   seg.ShiftID,
		Category:  p.category,
		Hours:     hours,
		Rate:      p.rate,
		Amount:    amount,
		ClauseRef: p.clause,
	}

	reasoning := fmt.Sprintf("%sh %s × %s × %s = %s",
		hours, seg.DayType, money(rates.Base), p.multiplier, money(amount))
	if p.category == CategoryOrdinary {
		reasoning = fmt.Sprintf("%sh × %s = %s", hours, money(rates.Base), money(amount))
	}
	if p.category.IsPenalty() && e.IsCasual() {
		reasoning += " (inclusive casual rate, loading not compounded)"
	}

	trail.Record(p.ruleID, p.ruleName, p.clause,
		map[string]any{
			"date":      seg.Date.String(),
			"shift_id":  seg.ShiftID,
			"day_type":  string(seg.DayType),
			"hours":     hours,
			"base_rate": rates.Base,
		},
		map[string]any{
			"category": string(p.category),
			"rate":     p.rate,
			"amount":   amount,
		},
		reasoning)

	return line
}
