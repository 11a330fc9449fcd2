/*
shift.go - Employee, shift, break, and pay period models

PURPOSE:
  Input model for a pay calculation. These types carry no behavior
  beyond derived quantities (worked hours, period membership); all
  pricing logic lives in the rule files.

KEY CONCEPTS:
  - Worked hours are wall-clock span minus unpaid breaks. Paid breaks
    count as worked time.
  - A shift's nominal Date identifies the roster day; penalty day types
    are derived from the calendar date of each worked instant, so an
    overnight shift is priced across both days it touches.

SEE ALSO:
  - segment.go: Calendar-day segmentation of shifts
  - validate.go: Input validation rules
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// EMPLOYEE
// =============================================================================

// EmploymentType determines casual loading and penalty multipliers.
type EmploymentType string

const (
	FullTime EmploymentType = "full_time"
	PartTime EmploymentType = "part_time"
	Casual   EmploymentType = "casual"
)

// Valid reports whether the employment type is one of the known values.
func (t EmploymentType) Valid() bool {
	switch t {
	case FullTime, PartTime, Casual:
		return true
	}
	return false
}

// Employee is the subject of a calculation.
//
// BaseHourlyRate, when set, is an employer-provided override that
// short-circuits classification rate lookup. Tags drive allowance
// eligibility (e.g. "laundry_allowance").
type Employee struct {
	ID                  string           `json:"id"`
	EmploymentType      EmploymentType   `json:"employment_type"`
	ClassificationCode  string           `json:"classification"`
	DateOfBirth         *Date            `json:"date_of_birth,omitempty"`
	EmploymentStartDate *Date            `json:"employment_start_date,omitempty"`
	BaseHourlyRate      *decimal.Decimal `json:"base_hourly_rate,omitempty"`
	Tags                []string         `json:"tags,omitempty"`
}

// IsCasual reports whether casual loading applies.
func (e Employee) IsCasual() bool { return e.EmploymentType == Casual }

// HasTag reports whether the employee carries the given tag.
func (e Employee) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// =============================================================================
// SHIFTS AND BREAKS
// =============================================================================

// Break is a pause within a shift. Unpaid breaks are deducted from
// worked hours; paid breaks are not.
type Break struct {
	Start DateTime `json:"start"`
	End   DateTime `json:"end"`
	Paid  bool     `json:"paid"`
}

// Duration returns the break length in decimal hours.
func (b Break) Duration() decimal.Decimal {
	return hoursBetween(b.Start, b.End)
}

// Shift is a single rostered block of work. Start and End are local
// wall-clock instants; End after midnight means the shift spans into
// the next calendar day.
type Shift struct {
	ID     string   `json:"id"`
	Date   Date     `json:"date"`
	Start  DateTime `json:"start"`
	End    DateTime `json:"end"`
	Breaks []Break  `json:"breaks,omitempty"`
}

// WorkedHours returns wall-clock span minus unpaid breaks, in hours.
func (s Shift) WorkedHours() decimal.Decimal {
	worked := hoursBetween(s.Start, s.End)
	for _, b := range s.Breaks {
		if !b.Paid {
			worked = worked.Sub(b.Duration())
		}
	}
	return worked
}

// =============================================================================
// PAY PERIOD
// =============================================================================

// PayPeriod is the date range being calculated, inclusive of both ends.
// Declared public holidays are carried for audit warnings; public
// holiday penalty rates are outside this engine's scope.
type PayPeriod struct {
	StartDate      Date   `json:"start_date"`
	EndDate        Date   `json:"end_date"`
	PublicHolidays []Date `json:"public_holidays,omitempty"`
}

// ContainsDate reports whether d falls within the period.
func (p PayPeriod) ContainsDate(d Date) bool {
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// IsPublicHoliday reports whether d is a declared public holiday.
func (p PayPeriod) IsPublicHoliday(d Date) bool {
	for _, h := range p.PublicHolidays {
		if h.Equal(d) {
			return true
		}
	}
	return false
}

// hoursBetween converts a wall-clock span to decimal hours at second
// granularity, the finest resolution the timestamp format carries.
func hoursBetween(from, to DateTime) decimal.Decimal {
	seconds := int64(to.Sub(from.Time) / time.Second)
	return decimal.NewFromInt(seconds).Div(decimal.NewFromInt(3600))
}
