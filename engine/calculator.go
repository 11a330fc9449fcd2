/*
calculator.go - Calculation pipeline orchestration

PURPOSE:
  Runs the full rule pipeline for one employee and pay period:

    validate -> resolve rates -> segment shifts -> detect daily
    overtime -> price ordinary/penalty hours -> price overtime ->
    evaluate allowances -> aggregate totals

  Any error aborts the calculation; there are no partial results.

DETERMINISM:
  The rules are pure. The only non-deterministic inputs, the
  calculation id and timestamp, come from the Calculator's NewID and
  Now fields. Pin both and identical input yields byte-identical
  output, which is what replay verification relies on.

SEE ALSO:
  - audit.go: Step ordering produced by this pipeline
*/
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// longShiftWarningHours is the worked-hours threshold beyond which a
// single shift is flagged for human review.
var longShiftWarningHours = decimal.NewFromInt(12)

// segmentTolerance absorbs the last-digit residue of non-terminating
// second-to-hour conversions (20min = 0.333...h) when comparing a
// shift's segment hours against its worked hours.
var segmentTolerance = decimal.New(1, -9)

// Calculator runs pay calculations against one award configuration.
// Safe for concurrent use: it holds no per-calculation state.
type Calculator struct {
	Config *AwardConfig

	// Now and NewID default to time.Now and uuid.New. Tests and replay
	// verification pin them.
	Now   func() time.Time
	NewID func() uuid.UUID
}

// NewCalculator returns a Calculator with real clock and id sources.
func NewCalculator(cfg *AwardConfig) *Calculator {
	return &Calculator{Config: cfg, Now: time.Now, NewID: uuid.New}
}

// Calculate runs the full pipeline.
func (c *Calculator) Calculate(e Employee, period PayPeriod, shifts []Shift) (*CalculationResult, error) {
	started := c.Now()

	if err := ValidateInput(e, period, shifts); err != nil {
		return nil, err
	}

	trail := NewAuditTrail()

	rates, err := ResolveRates(c.Config, e, period, trail)
	if err != nil {
		return nil, err
	}

	// Segment every shift and check the segmentation invariant.
	var segments []ShiftSegment
	for _, s := range shifts {
		segs := SegmentShift(s, trail)

		total := decimal.Zero
		for _, seg := range segs {
			total = total.Add(seg.Hours)
		}
		if total.Sub(s.WorkedHours()).Abs().GreaterThan(segmentTolerance) {
			return nil, &CalculationError{Reason: fmt.Sprintf(
				"shift %s: segment hours %s != worked hours %s", s.ID, total, s.WorkedHours())}
		}

		if s.WorkedHours().GreaterThan(longShiftWarningHours) {
			trail.Warn("long_shift",
				fmt.Sprintf("shift %s has %sh worked, review for compliance", s.ID, s.WorkedHours()),
				SeverityMedium)
		}
		segments = append(segments, segs...)
	}

	// Daily overtime detection across all shifts on each calendar day.
	days := GroupByDay(segments)
	for i := range days {
		DetectDailyOvertime(c.Config, &days[i], trail)
		if period.IsPublicHoliday(days[i].Date) {
			trail.Warn("public_holiday_worked",
				fmt.Sprintf("work on declared public holiday %s; holiday rates are not applied by this engine", days[i].Date),
				SeverityInfo)
		}
	}

	allocs := make([][]SegmentAllocation, len(days))
	for i := range days {
		allocs[i] = AllocateDayHours(days[i])
	}

	lines := []PayLine{}
	for i := range days {
		for _, a := range allocs[i] {
			if a.Ordinary.Sign() > 0 {
				lines = append(lines, PriceOrdinaryHours(c.Config, e, rates, a.Segment, a.Ordinary, trail))
			}
		}
	}
	for i := range days {
		lines = append(lines, PriceDayOvertime(c.Config, e, rates, days[i], allocs[i], trail)...)
	}

	// Allowance rates come from the award tables even when the base
	// rate is an employer override. An eligible employee with no
	// effective table is a configuration gap, not a zero allowance.
	var allowanceRates AllowanceRates
	if table := c.Config.RateTableOn(period.StartDate); table != nil {
		allowanceRates = table.Allowances
	} else if AllowanceEligible(e) {
		return nil, &RateNotFoundError{Classification: e.ClassificationCode, Date: period.StartDate}
	}
	allowances := EvaluateAllowances(e, shifts, allowanceRates, trail)

	return &CalculationResult{
		CalculationID: c.NewID().String(),
		Timestamp:     c.Now().UTC(),
		EngineVersion: EngineVersion,
		EmployeeID:    e.ID,
		PayPeriod:     period,
		PayLines:      lines,
		Allowances:    allowances,
		Totals:        AggregateTotals(lines, allowances),
		AuditTrace:    trail.Build(c.Now().Sub(started)),
	}, nil
}
