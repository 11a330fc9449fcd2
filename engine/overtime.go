/*
overtime.go - Daily overtime detection and pricing

PURPOSE:
  Overtime under this award accrues per CALENDAR DAY: all hours an
  employee works on one date are summed across every shift and segment
  touching that date, and hours beyond the daily threshold (8) are
  overtime. Two 5-hour shifts on one Monday produce 2 hours of
  overtime even though neither shift exceeds the threshold alone.

PRICING:
  The day type is resolved first, then the branch:
  - Weekday: first 2 overtime hours at 150%, remainder at 200%.
  - Saturday/Sunday: the whole excess at a single flat rate (200%,
    250% casual). Weekend overtime is never tiered.
  Casual overtime multipliers are inclusive of casual loading.

ALLOCATION:
  Ordinary hours are allocated to the day's segments chronologically;
  hours after the threshold crossing are the overtime hours. Overtime
  pay lines carry the shift id of the segment in which the overtime
  accrued.
*/
package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// DayWork groups everything an employee worked on one calendar day.
type DayWork struct {
	Date          Date
	Segments      []ShiftSegment // chronological
	TotalHours    decimal.Decimal
	OrdinaryHours decimal.Decimal
	OvertimeHours decimal.Decimal
}

// ShiftIDs returns the distinct shift ids contributing to the day,
// in chronological order.
func (d DayWork) ShiftIDs() []string {
	var ids []string
	seen := map[string]bool{}
	for _, seg := range d.Segments {
		if !seen[seg.ShiftID] {
			seen[seg.ShiftID] = true
			ids = append(ids, seg.ShiftID)
		}
	}
	return ids
}

// GroupByDay buckets segments by calendar date. Days are returned in
// date order, each day's segments in chronological order.
func GroupByDay(segments []ShiftSegment) []DayWork {
	byDate := map[Date][]ShiftSegment{}
	for _, seg := range segments {
		byDate[seg.Date] = append(byDate[seg.Date], seg)
	}

	days := make([]DayWork, 0, len(byDate))
	for date, segs := range byDate {
		sort.SliceStable(segs, func(i, j int) bool {
			if !segs[i].Start.Equal(segs[j].Start) {
				return segs[i].Start.Before(segs[j].Start)
			}
			return segs[i].ShiftID < segs[j].ShiftID
		})

		total := decimal.Zero
		for _, seg := range segs {
			total = total.Add(seg.Hours)
		}
		days = append(days, DayWork{Date: date, Segments: segs, TotalHours: total})
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// DetectDailyOvertime splits a day's total hours at the daily threshold
// and records the detection step.
func DetectDailyOvertime(cfg *AwardConfig, day *DayWork, trail *AuditTrail) {
	threshold := cfg.Overtime.DailyThresholdHours

	day.OrdinaryHours = day.TotalHours
	day.OvertimeHours = decimal.Zero
	if day.TotalHours.GreaterThan(threshold) {
		day.OrdinaryHours = threshold
		day.OvertimeHours = day.TotalHours.Sub(threshold)
	}

	reasoning := fmt.Sprintf("%sh worked on %s within %sh daily threshold: no overtime",
		day.TotalHours, day.Date, threshold)
	if day.OvertimeHours.Sign() > 0 {
		reasoning = fmt.Sprintf("%sh worked on %s exceeds %sh daily threshold: %sh overtime",
			day.TotalHours, day.Date, threshold, day.OvertimeHours)
	}

	trail.Record("daily_overtime_detection", "Daily Overtime Detection", "22.1(c), 25.1",
		map[string]any{
			"date":            day.Date.String(),
			"shift_ids":       day.ShiftIDs(),
			"total_hours":     day.TotalHours,
			"threshold_hours": threshold,
		},
		map[string]any{
			"ordinary_hours": day.OrdinaryHours,
			"overtime_hours": day.OvertimeHours,
		},
		reasoning)
}

// SegmentAllocation is a segment's share of a day's ordinary and
// overtime hours.
type SegmentAllocation struct {
	Segment  ShiftSegment
	Ordinary decimal.Decimal
	Overtime decimal.Decimal
}

// AllocateDayHours distributes a day's ordinary quota across its
// segments chronologically; whatever remains in each segment after the
// quota is exhausted is overtime.
func AllocateDayHours(day DayWork) []SegmentAllocation {
	remaining := day.OrdinaryHours
	allocs := make([]SegmentAllocation, 0, len(day.Segments))

	for _, seg := range day.Segments {
		ordinary := decimal.Min(seg.Hours, remaining)
		remaining = remaining.Sub(ordinary)
		allocs = append(allocs, SegmentAllocation{
			Segment:  seg,
			Ordinary: ordinary,
			Overtime: seg.Hours.Sub(ordinary),
		})
	}
	return allocs
}

// PriceDayOvertime prices a day's overtime hours, recording one step
// per emitted line. Returns nil when the day has no overtime.
func PriceDayOvertime(cfg *AwardConfig, e Employee, rates ResolvedRates, day DayWork, allocs []SegmentAllocation, trail *AuditTrail) []PayLine {
	if day.OvertimeHours.Sign() <= 0 {
		return nil
	}

	if day.Date.DayType() == DayWeekday {
		return priceWeekdayOvertime(cfg, e, rates, day, allocs, trail)
	}
	return priceWeekendOvertime(cfg, e, rates, day, allocs, trail)
}

func priceWeekdayOvertime(cfg *AwardConfig, e Employee, rates ResolvedRates, day DayWork, allocs []SegmentAllocation, trail *AuditTrail) []PayLine {
	tier1Mult := cfg.Overtime.WeekdayTier1
	tier2Mult := cfg.Overtime.WeekdayTier2
	if e.IsCasual() {
		tier1Mult = cfg.Overtime.WeekdayTier1Casual
		tier2Mult = cfg.Overtime.WeekdayTier2Casual
	}

	boundary := cfg.Overtime.TierBoundaryHours
	consumed := decimal.Zero
	var lines []PayLine

	for _, a := range allocs {
		if a.Overtime.Sign() <= 0 {
			continue
		}

		tier1 := decimal.Min(a.Overtime, decimal.Max(boundary.Sub(consumed), decimal.Zero))
		tier2 := a.Overtime.Sub(tier1)
		consumed = consumed.Add(a.Overtime)

		if tier1.Sign() > 0 {
			lines = append(lines, overtimeLine(day.Date, a.Segment.ShiftID, CategoryOvertime150,
				tier1, rates.Base, tier1Mult, "25.1(a)(i)(A)"))
			trail.Record("overtime_tier_1", "Overtime - First 2 Hours", "25.1(a)(i)(A)",
				overtimeInput(day.Date, a.Segment.ShiftID, tier1, rates.Base),
				overtimeOutput(CategoryOvertime150, rates.Base.Mul(tier1Mult), tier1.Mul(rates.Base).Mul(tier1Mult)),
				fmt.Sprintf("%sh overtime × %s × %s = %s (first %sh of daily overtime)",
					tier1, money(rates.Base), tier1Mult, money(tier1.Mul(rates.Base).Mul(tier1Mult)), boundary))
		}
		if tier2.Sign() > 0 {
			lines = append(lines, overtimeLine(day.Date, a.Segment.ShiftID, CategoryOvertime200,
				tier2, rates.Base, tier2Mult, "25.1(a)(i)(A)"))
			trail.Record("overtime_tier_2", "Overtime - After 2 Hours", "25.1(a)(i)(A)",
				overtimeInput(day.Date, a.Segment.ShiftID, tier2, rates.Base),
				overtimeOutput(CategoryOvertime200, rates.Base.Mul(tier2Mult), tier2.Mul(rates.Base).Mul(tier2Mult)),
				fmt.Sprintf("%sh overtime × %s × %s = %s (beyond first %sh)",
					tier2, money(rates.Base), tier2Mult, money(tier2.Mul(rates.Base).Mul(tier2Mult)), boundary))
		}
	}

	return mergeAdjacentLines(lines)
}

func priceWeekendOvertime(cfg *AwardConfig, e Employee, rates ResolvedRates, day DayWork, allocs []SegmentAllocation, trail *AuditTrail) []PayLine {
	mult := cfg.Overtime.Weekend
	if e.IsCasual() {
		mult = cfg.Overtime.WeekendCasual
	}

	var lines []PayLine
	for _, a := range allocs {
		if a.Overtime.Sign() <= 0 {
			continue
		}
		lines = append(lines, overtimeLine(day.Date, a.Segment.ShiftID, CategoryOvertime200,
			a.Overtime, rates.Base, mult, "25.1(a)(i)(B)"))
		trail.Record("weekend_overtime", "Weekend Overtime", "25.1(a)(i)(B)",
			overtimeInput(day.Date, a.Segment.ShiftID, a.Overtime, rates.Base),
			overtimeOutput(CategoryOvertime200, rates.Base.Mul(mult), a.Overtime.Mul(rates.Base).Mul(mult)),
			fmt.Sprintf("%sh %s overtime × %s × %s = %s (flat weekend rate, no tiering)",
				a.Overtime, day.Date.DayType(), money(rates.Base), mult,
				money(a.Overtime.Mul(rates.Base).Mul(mult))))
	}

	return mergeAdjacentLines(lines)
}

func overtimeLine(date Date, shiftID string, cat PayCategory, hours, base, mult decimal.Decimal, clause string) PayLine {
	rate := base.Mul(mult)
	return PayLine{
		Date:      date,
		ShiftID:   shiftID,
		Category:  cat,
		Hours:     hours,
		Rate:      rate,
		Amount:    hours.Mul(rate),
		ClauseRef: clause,
	}
}

func overtimeInput(date Date, shiftID string, hours, base decimal.Decimal) map[string]any {
	return map[string]any{
		"date":      date.String(),
		"shift_id":  shiftID,
		"hours":     hours,
		"base_rate": base,
	}
}

func overtimeOutput(cat PayCategory, rate, amount decimal.Decimal) map[string]any {
	return map[string]any{
		"category": string(cat),
		"rate":     rate,
		"amount":   amount,
	}
}

// mergeAdjacentLines coalesces consecutive lines that differ only in
// hours, so a day's overtime does not fragment when it spans several
// segments of the same shift.
func mergeAdjacentLines(lines []PayLine) []PayLine {
	var merged []PayLine
	for _, l := range lines {
		if n := len(merged); n > 0 {
			prev := &merged[n-1]
			if prev.ShiftID == l.ShiftID && prev.Category == l.Category &&
				prev.Rate.Equal(l.Rate) && prev.Date.Equal(l.Date) {
				prev.Hours = prev.Hours.Add(l.Hours)
				prev.Amount = prev.Amount.Add(l.Amount)
				continue
			}
		}
		merged = append(merged, l)
	}
	return merged
}
