package engine_test

import (
	"testing"
	"time"

	"github.com/warp/award-engine/engine"
)

func ruleIDs(result *engine.CalculationResult) []string {
	ids := make([]string, len(result.AuditTrace.Steps))
	for i, s := range result.AuditTrace.Steps {
		ids[i] = s.RuleID
	}
	return ids
}

func TestAuditTrace_StepNumbersStrictlyIncreasing(t *testing.T) {
	// GIVEN: A calculation touching every rule family
	// WHEN: Inspecting the audit trace
	// THEN: Step numbers run 1..n with no gaps

	calc := testCalculator()
	result, err := calc.Calculate(laundryCasual(), julyWeek(), []engine.Shift{
		shift("s1", 21, 8, 19),
		shift("s2", 26, 7, 17),
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	for i, step := range result.AuditTrace.Steps {
		if step.StepNumber != i+1 {
			t.Fatalf("step %d has number %d", i, step.StepNumber)
		}
	}
}

func TestAuditTrace_PipelineOrdering(t *testing.T) {
	// GIVEN: A full-time week with overtime
	// WHEN: Inspecting rule ids in order
	// THEN: rate lookup, loading, segmentation, detection, pricing,
	//       then allowances

	calc := testCalculator()
	result, err := calc.Calculate(fullTimeEmployee(), julyWeek(),
		[]engine.Shift{shift("s1", 21, 8, 19)})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	ids := ruleIDs(result)
	want := []string{
		"base_rate_lookup",
		"casual_loading",
		"shift_segmentation",
		"daily_overtime_detection",
		"weekday_ordinary",
		"overtime_tier_1",
		"overtime_tier_2",
		"laundry_allowance",
	}
	if len(ids) != len(want) {
		t.Fatalf("rule ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("step %d rule = %s, want %s (full: %v)", i+1, ids[i], want[i], ids)
		}
	}
}

func TestAuditTrace_CasualLoadingRecordedForNonCasuals(t *testing.T) {
	// GIVEN: A full-time employee
	// WHEN: Calculating
	// THEN: The loading step is present and records that none applied

	calc := testCalculator()
	result, err := calc.Calculate(fullTimeEmployee(), julyWeek(),
		[]engine.Shift{shift("s1", 21, 9, 17)})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	for _, step := range result.AuditTrace.Steps {
		if step.RuleID == "casual_loading" {
			if applied, ok := step.Output["loading_applied"].(bool); !ok || applied {
				t.Errorf("loading_applied = %v, want false", step.Output["loading_applied"])
			}
			return
		}
	}
	t.Error("casual_loading step missing for non-casual employee")
}

func TestAuditTrace_ClauseReferences(t *testing.T) {
	// GIVEN: A Saturday shift with overtime for a casual
	// WHEN: Inspecting steps
	// THEN: Every step cites its award clause

	calc := testCalculator()
	result, err := calc.Calculate(casualEmployee(), julyWeek(),
		[]engine.Shift{shift("s1", 26, 7, 17)})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	clauses := map[string]string{
		"casual_loading":   "10.4(b)",
		"saturday_penalty": "23.2(a)",
		"weekend_overtime": "25.1(a)(i)(B)",
	}
	for _, step := range result.AuditTrace.Steps {
		if want, ok := clauses[step.RuleID]; ok && step.ClauseRef != want {
			t.Errorf("%s clause = %s, want %s", step.RuleID, step.ClauseRef, want)
		}
		if step.ClauseRef == "" {
			t.Errorf("%s has no clause reference", step.RuleID)
		}
		if step.Reasoning == "" {
			t.Errorf("%s has no reasoning", step.RuleID)
		}
	}
}

func TestAuditTrace_Warnings(t *testing.T) {
	// GIVEN: A 13h shift on a declared public holiday
	// WHEN: Calculating
	// THEN: long_shift and public_holiday_worked warnings are raised

	calc := testCalculator()
	period := julyWeek()
	period.PublicHolidays = []engine.Date{engine.NewDate(2025, time.July, 21)}

	result, err := calc.Calculate(fullTimeEmployee(), period,
		[]engine.Shift{shift("s1", 21, 6, 19)})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	codes := map[string]bool{}
	for _, w := range result.AuditTrace.Warnings {
		codes[w.Code] = true
	}
	if !codes["long_shift"] {
		t.Error("expected long_shift warning for a 13h shift")
	}
	if !codes["public_holiday_worked"] {
		t.Error("expected public_holiday_worked warning")
	}
}

func TestCalculationResult_Metadata(t *testing.T) {
	// GIVEN: Pinned id and clock sources
	// WHEN: Calculating
	// THEN: The result carries the pinned id, timestamp, and version

	calc := testCalculator()
	result, err := calc.Calculate(fullTimeEmployee(), julyWeek(), nil)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if result.CalculationID != fixedID.String() {
		t.Errorf("calculation id = %s, want %s", result.CalculationID, fixedID)
	}
	if !result.Timestamp.Equal(fixedTime) {
		t.Errorf("timestamp = %s, want %s", result.Timestamp, fixedTime)
	}
	if result.EngineVersion != engine.EngineVersion {
		t.Errorf("engine version = %s", result.EngineVersion)
	}
	if result.AuditTrace.DurationMicros != 0 {
		t.Errorf("pinned clock should give zero duration, got %d", result.AuditTrace.DurationMicros)
	}
}
