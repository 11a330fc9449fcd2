package engine

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// DATE - Calendar date without a time component
// =============================================================================

// Date is a calendar date. All award rules key off calendar dates:
// penalty day types, overtime accumulation, rate table effective dates.
// Dates are normalized to midnight UTC so they are safe as map keys.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date containing the instant t.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string     { return d.Format(dateLayout) }
func (d Date) DayType() DayType   { return DayTypeOf(d.Time) }
func (d Date) AddDays(n int) Date { return DateOf(d.AddDate(0, 0, n)) }
func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }
func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// =============================================================================
// DATETIME - Naive local timestamp (no zone)
// =============================================================================

// DateTime is a wall-clock instant without a zone. Shifts are recorded
// in the facility's local time; the award cares about local wall-clock
// boundaries (midnight, day of week), not absolute instants.
type DateTime struct {
	time.Time
}

const dateTimeLayout = "2006-01-02T15:04:05"

func NewDateTime(year int, month time.Month, day, hour, min int) DateTime {
	return DateTime{Time: time.Date(year, month, day, hour, min, 0, 0, time.UTC)}
}

// ParseDateTime parses a timestamp in YYYY-MM-DDTHH:MM:SS form.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.ParseInLocation(dateTimeLayout, s, time.UTC)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid datetime %q: %w", s, err)
	}
	return DateTime{Time: t}, nil
}

func (t DateTime) String() string         { return t.Format(dateTimeLayout) }
func (t DateTime) Date() Date             { return DateOf(t.Time) }
func (t DateTime) Before(o DateTime) bool { return t.Time.Before(o.Time) }
func (t DateTime) After(o DateTime) bool  { return t.Time.After(o.Time) }
func (t DateTime) Equal(o DateTime) bool  { return t.Time.Equal(o.Time) }

// Min returns the earlier of t and o.
func (t DateTime) Min(o DateTime) DateTime {
	if t.Before(o) {
		return t
	}
	return o
}

// Max returns the later of t and o.
func (t DateTime) Max(o DateTime) DateTime {
	if t.After(o) {
		return t
	}
	return o
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
