/*
validate.go - Input validation

PURPOSE:
  Rejects malformed input before any rule runs. Validation failure
  aborts the whole calculation; the engine never prices what it cannot
  trust.

RULES:
  Employee: non-empty id, known employment type, a classification code
  or a positive base rate override.
  Period: end on or after start.
  Shifts: unique non-empty ids, end after start, nominal date matching
  the start instant's calendar date, date inside the pay period, breaks
  inside the shift and non-overlapping, and at least some worked time
  left after unpaid breaks.
*/
package engine

import "fmt"

// ValidateInput checks the complete calculation input.
func ValidateInput(e Employee, period PayPeriod, shifts []Shift) error {
	if err := validateEmployee(e); err != nil {
		return err
	}
	if period.EndDate.Before(period.StartDate) {
		return ErrInvalidPeriod
	}

	seen := map[string]bool{}
	for _, s := range shifts {
		if err := validateShift(s, period); err != nil {
			return err
		}
		if seen[s.ID] {
			return &InvalidShiftError{ShiftID: s.ID, Reason: "duplicate shift id"}
		}
		seen[s.ID] = true
	}
	return nil
}

func validateEmployee(e Employee) error {
	if e.ID == "" {
		return &InvalidEmployeeError{Field: "id", Reason: "must not be empty"}
	}
	if !e.EmploymentType.Valid() {
		return &InvalidEmployeeError{Field: "employment_type",
			Reason: fmt.Sprintf("unknown employment type %q", e.EmploymentType)}
	}
	if e.ClassificationCode == "" && e.BaseHourlyRate == nil {
		return &InvalidEmployeeError{Field: "classification",
			Reason: "classification or base_hourly_rate required"}
	}
	if e.BaseHourlyRate != nil && e.BaseHourlyRate.Sign() <= 0 {
		return &InvalidEmployeeError{Field: "base_hourly_rate", Reason: "must be positive"}
	}
	return nil
}

func validateShift(s Shift, period PayPeriod) error {
	if s.ID == "" {
		return &InvalidShiftError{ShiftID: s.ID, Reason: "shift id must not be empty"}
	}
	if !s.End.After(s.Start) {
		return &InvalidShiftError{ShiftID: s.ID, Reason: "end must be after start"}
	}
	if !s.Date.Equal(s.Start.Date()) {
		return &InvalidShiftError{ShiftID: s.ID,
			Reason: fmt.Sprintf("date %s does not match start instant %s", s.Date, s.Start)}
	}
	if !period.ContainsDate(s.Date) {
		return &InvalidShiftError{ShiftID: s.ID,
			Reason: fmt.Sprintf("date %s outside pay period %s to %s", s.Date, period.StartDate, period.EndDate)}
	}

	for i, b := range s.Breaks {
		if !b.End.After(b.Start) {
			return &InvalidShiftError{ShiftID: s.ID, Reason: "break end must be after break start"}
		}
		if b.Start.Before(s.Start) || b.End.After(s.End) {
			return &InvalidShiftError{ShiftID: s.ID, Reason: "break must fall within the shift"}
		}
		for _, other := range s.Breaks[:i] {
			if b.Start.Before(other.End) && other.Start.Before(b.End) {
				return &InvalidShiftError{ShiftID: s.ID, Reason: "breaks must not overlap"}
			}
		}
	}

	if s.WorkedHours().Sign() <= 0 {
		return &InvalidShiftError{ShiftID: s.ID, Reason: "no worked time after unpaid breaks"}
	}
	return nil
}
