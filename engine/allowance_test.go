package engine_test

import (
	"errors"
	"testing"
	"time"

	"github.com/warp/award-engine/engine"
)

func laundryCasual() engine.Employee {
	emp := casualEmployee()
	emp.Tags = []string{engine.TagLaundryAllowance}
	return emp
}

func TestCalculate_LaundryAllowance_CappedAtWeeklyMaximum(t *testing.T) {
	// GIVEN: A tagged casual working 6 shifts at $0.32/shift
	// WHEN: Calculating the week
	// THEN: 6 x $0.32 = $1.92 is capped at the weekly $1.49

	calc := testCalculator()
	shifts := []engine.Shift{
		shift("s1", 21, 9, 13), shift("s2", 22, 9, 13), shift("s3", 23, 9, 13),
		shift("s4", 24, 9, 13), shift("s5", 25, 9, 13), shift("s6", 26, 9, 13),
	}
	result, err := calc.Calculate(laundryCasual(), julyWeek(), shifts)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if len(result.Allowances) != 1 {
		t.Fatalf("expected 1 allowance, got %d", len(result.Allowances))
	}
	a := result.Allowances[0]
	if a.Type != "laundry" {
		t.Errorf("type = %s, want laundry", a.Type)
	}
	if a.Units != 6 {
		t.Errorf("units = %d, want 6", a.Units)
	}
	assertDecimal(t, "amount", a.Amount, dec("1.49"))
	assertDecimal(t, "allowances total", result.Totals.AllowancesTotal, dec("1.49"))
}

func TestCalculate_LaundryAllowance_UnderCap(t *testing.T) {
	// GIVEN: A tagged casual working 4 shifts
	// WHEN: Calculating
	// THEN: 4 x $0.32 = $1.28, below the cap, paid in full

	calc := testCalculator()
	shifts := []engine.Shift{
		shift("s1", 21, 9, 13), shift("s2", 22, 9, 13),
		shift("s3", 23, 9, 13), shift("s4", 24, 9, 13),
	}
	result, err := calc.Calculate(laundryCasual(), julyWeek(), shifts)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	assertDecimal(t, "amount", result.Allowances[0].Amount, dec("1.28"))
}

func TestCalculate_LaundryAllowance_MoreShiftsNeverPaysLess(t *testing.T) {
	// GIVEN: The same employee with increasing shift counts
	// WHEN: Calculating each week
	// THEN: The allowance never decreases as shifts are added

	calc := testCalculator()
	prev := dec("0")
	for n := 1; n <= 7; n++ {
		var shifts []engine.Shift
		for i := 0; i < n; i++ {
			shifts = append(shifts, shift(string(rune('a'+i)), 21+i, 9, 13))
		}
		result, err := calc.Calculate(laundryCasual(), julyWeek(), shifts)
		if err != nil {
			t.Fatalf("Calculate failed with %d shifts: %v", n, err)
		}
		if result.Totals.AllowancesTotal.LessThan(prev) {
			t.Errorf("allowance decreased from %s to %s at %d shifts",
				prev, result.Totals.AllowancesTotal, n)
		}
		prev = result.Totals.AllowancesTotal
	}
}

func TestCalculate_AllowanceEligible_NoEffectiveRateTable(t *testing.T) {
	// GIVEN: A tagged casual paid on an employer override, in a period
	//        before any rate table takes effect
	// WHEN: Calculating
	// THEN: ErrRateNotFound; the allowance is never silently zeroed

	calc := testCalculator()
	override := dec("30")
	emp := laundryCasual()
	emp.BaseHourlyRate = &override

	period := engine.PayPeriod{
		StartDate: engine.NewDate(2025, time.June, 2),
		EndDate:   engine.NewDate(2025, time.June, 8),
	}
	s := engine.Shift{
		ID:    "s1",
		Date:  engine.NewDate(2025, time.June, 2),
		Start: engine.NewDateTime(2025, time.June, 2, 9, 0),
		End:   engine.NewDateTime(2025, time.June, 2, 13, 0),
	}

	_, err := calc.Calculate(emp, period, []engine.Shift{s})
	if !errors.Is(err, engine.ErrRateNotFound) {
		t.Fatalf("err = %v, want ErrRateNotFound", err)
	}

	// Without allowance eligibility the override alone suffices.
	plain := casualEmployee()
	plain.BaseHourlyRate = &override
	if _, err := calc.Calculate(plain, period, []engine.Shift{s}); err != nil {
		t.Fatalf("Calculate failed without allowance eligibility: %v", err)
	}
}

func TestEvaluateAllowances_UnconfiguredLaundryRate_Warned(t *testing.T) {
	// GIVEN: An eligible employee but no laundry rate configured
	// WHEN: Evaluating allowances
	// THEN: No payment, and a warning flags the missing rate

	trail := engine.NewAuditTrail()
	payments := engine.EvaluateAllowances(laundryCasual(),
		[]engine.Shift{shift("s1", 21, 9, 13)}, engine.AllowanceRates{}, trail)

	if len(payments) != 0 {
		t.Fatalf("expected no payments, got %d", len(payments))
	}

	trace := trail.Build(0)
	found := false
	for _, w := range trace.Warnings {
		if w.Code == "allowance_rate_missing" {
			found = true
		}
	}
	if !found {
		t.Error("expected allowance_rate_missing warning")
	}
}

func TestCalculate_LaundryAllowance_IneligibleWithoutTag(t *testing.T) {
	// GIVEN: An untagged employee
	// WHEN: Calculating
	// THEN: No allowance payment, but the eligibility check is audited

	calc := testCalculator()
	result, err := calc.Calculate(fullTimeEmployee(), julyWeek(),
		[]engine.Shift{shift("s1", 21, 9, 17)})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if len(result.Allowances) != 0 {
		t.Fatalf("expected no allowances, got %d", len(result.Allowances))
	}

	found := false
	for _, step := range result.AuditTrace.Steps {
		if step.RuleID == "laundry_allowance" {
			found = true
		}
	}
	if !found {
		t.Error("laundry eligibility check should appear in the audit trace")
	}
}
