package engine_test

import (
	"errors"
	"testing"
	"time"

	"github.com/warp/award-engine/engine"
)

func TestCalculate_UnknownClassification(t *testing.T) {
	// GIVEN: An employee with a classification not in the award
	// WHEN: Calculating
	// THEN: ErrClassificationNotFound, no result

	calc := testCalculator()
	emp := fullTimeEmployee()
	emp.ClassificationCode = "nurse_level_9"

	result, err := calc.Calculate(emp, julyWeek(), []engine.Shift{shift("s1", 21, 9, 17)})
	if !errors.Is(err, engine.ErrClassificationNotFound) {
		t.Fatalf("err = %v, want ErrClassificationNotFound", err)
	}
	if result != nil {
		t.Error("no partial result on error")
	}

	var notFound *engine.ClassificationNotFoundError
	if !errors.As(err, &notFound) || notFound.Code != "nurse_level_9" {
		t.Errorf("error should carry the unknown code, got %v", err)
	}
}

func TestCalculate_NoEffectiveRate(t *testing.T) {
	// GIVEN: A pay period before any rate table's effective date
	// WHEN: Calculating
	// THEN: ErrRateNotFound

	calc := testCalculator()
	period := engine.PayPeriod{
		StartDate: engine.NewDate(2020, time.January, 6),
		EndDate:   engine.NewDate(2020, time.January, 12),
	}
	s := engine.Shift{
		ID:    "s1",
		Date:  engine.NewDate(2020, time.January, 6),
		Start: engine.NewDateTime(2020, time.January, 6, 9, 0),
		End:   engine.NewDateTime(2020, time.January, 6, 17, 0),
	}

	_, err := calc.Calculate(fullTimeEmployee(), period, []engine.Shift{s})
	if !errors.Is(err, engine.ErrRateNotFound) {
		t.Fatalf("err = %v, want ErrRateNotFound", err)
	}
}

func TestCalculate_InvalidPeriod(t *testing.T) {
	// GIVEN: A period ending before it starts
	// WHEN: Calculating
	// THEN: ErrInvalidPeriod

	calc := testCalculator()
	period := engine.PayPeriod{
		StartDate: engine.NewDate(2025, time.July, 27),
		EndDate:   engine.NewDate(2025, time.July, 21),
	}
	_, err := calc.Calculate(fullTimeEmployee(), period, nil)
	if !errors.Is(err, engine.ErrInvalidPeriod) {
		t.Fatalf("err = %v, want ErrInvalidPeriod", err)
	}
}

func TestCalculate_InvalidShifts(t *testing.T) {
	calc := testCalculator()

	endBeforeStart := shift("s1", 21, 17, 9)

	outsidePeriod := shift("s1", 14, 9, 17)

	breakOutsideShift := shift("s1", 21, 9, 17)
	breakOutsideShift.Breaks = []engine.Break{{
		Start: engine.NewDateTime(2025, time.July, 21, 18, 0),
		End:   engine.NewDateTime(2025, time.July, 21, 19, 0),
	}}

	overlappingBreaks := shift("s1", 21, 9, 17)
	overlappingBreaks.Breaks = []engine.Break{
		{Start: engine.NewDateTime(2025, time.July, 21, 12, 0), End: engine.NewDateTime(2025, time.July, 21, 13, 0)},
		{Start: engine.NewDateTime(2025, time.July, 21, 12, 30), End: engine.NewDateTime(2025, time.July, 21, 13, 30)},
	}

	dateMismatch := shift("s1", 22, 9, 17)
	dateMismatch.Start = engine.NewDateTime(2025, time.July, 21, 9, 0)
	dateMismatch.End = engine.NewDateTime(2025, time.July, 21, 17, 0)

	cases := []struct {
		name   string
		shifts []engine.Shift
	}{
		{"end before start", []engine.Shift{endBeforeStart}},
		{"outside period", []engine.Shift{outsidePeriod}},
		{"break outside shift", []engine.Shift{breakOutsideShift}},
		{"overlapping breaks", []engine.Shift{overlappingBreaks}},
		{"date mismatch", []engine.Shift{dateMismatch}},
		{"duplicate ids", []engine.Shift{shift("s1", 21, 9, 13), shift("s1", 22, 9, 13)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calc.Calculate(fullTimeEmployee(), julyWeek(), tc.shifts)
			if !errors.Is(err, engine.ErrInvalidShift) {
				t.Fatalf("err = %v, want ErrInvalidShift", err)
			}
		})
	}
}

func TestCalculate_InvalidEmployee(t *testing.T) {
	calc := testCalculator()

	missingID := fullTimeEmployee()
	missingID.ID = ""

	badType := fullTimeEmployee()
	badType.EmploymentType = "contractor"

	noRateSource := fullTimeEmployee()
	noRateSource.ClassificationCode = ""

	cases := []struct {
		name string
		emp  engine.Employee
	}{
		{"missing id", missingID},
		{"unknown employment type", badType},
		{"no classification or override", noRateSource},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calc.Calculate(tc.emp, julyWeek(), nil)
			if !errors.Is(err, engine.ErrInvalidEmployee) {
				t.Fatalf("err = %v, want ErrInvalidEmployee", err)
			}
			if !engine.IsValidationError(err) {
				t.Error("employee errors should classify as validation errors")
			}
		})
	}
}
