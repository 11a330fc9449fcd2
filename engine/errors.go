/*
errors.go - Centralized error types for the pay engine

PURPOSE:
  All engine error types in one place. Any error aborts the whole
  calculation: the engine never returns a partial result alongside an
  error.

ERROR CATEGORIES:
  1. Validation errors - malformed employee, shift, or period input
  2. Lookup errors     - classification or rate not found in the award
  3. Internal errors   - a rule invariant was violated (engine bug)

USAGE:
  Callers branch on sentinels:

    if errors.Is(err, engine.ErrClassificationNotFound) {
        // 400, unknown classification
    }

SEE ALSO:
  - validate.go: Produces the validation errors
  - rate.go: Produces the lookup errors
  - api/handlers.go: Maps these to HTTP status codes
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidEmployee is returned when the employee record fails validation.
	ErrInvalidEmployee = errors.New("invalid employee")

	// ErrInvalidShift is returned when a shift fails validation.
	ErrInvalidShift = errors.New("invalid shift")

	// ErrInvalidPeriod is returned when the pay period is malformed.
	ErrInvalidPeriod = errors.New("invalid pay period: end before start")

	// ErrClassificationNotFound is returned when the employee's
	// classification code is not in the award configuration.
	ErrClassificationNotFound = errors.New("classification not found")

	// ErrRateNotFound is returned when no rate table covers the pay period.
	ErrRateNotFound = errors.New("no rate effective for date")

	// ErrCalculation is returned when an internal invariant is violated.
	// This indicates an engine bug, never bad input.
	ErrCalculation = errors.New("calculation invariant violated")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidEmployeeError reports which employee field failed validation.
type InvalidEmployeeError struct {
	Field  string
	Reason string
}

func (e *InvalidEmployeeError) Error() string {
	return fmt.Sprintf("invalid employee: %s: %s", e.Field, e.Reason)
}

func (e *InvalidEmployeeError) Unwrap() error { return ErrInvalidEmployee }

// InvalidShiftError reports which shift failed validation and why.
type InvalidShiftError struct {
	ShiftID string
	Reason  string
}

func (e *InvalidShiftError) Error() string {
	return fmt.Sprintf("invalid shift %s: %s", e.ShiftID, e.Reason)
}

func (e *InvalidShiftError) Unwrap() error { return ErrInvalidShift }

// ClassificationNotFoundError identifies the unknown classification code.
type ClassificationNotFoundError struct {
	Code string
}

func (e *ClassificationNotFoundError) Error() string {
	return fmt.Sprintf("classification not found: %q", e.Code)
}

func (e *ClassificationNotFoundError) Unwrap() error { return ErrClassificationNotFound }

// RateNotFoundError identifies a classification with no effective rate.
type RateNotFoundError struct {
	Classification string
	Date           Date
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("no rate for classification %q effective on %s", e.Classification, e.Date)
}

func (e *RateNotFoundError) Unwrap() error { return ErrRateNotFound }

// CalculationError reports a broken internal invariant.
type CalculationError struct {
	Reason string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation error: %s", e.Reason)
}

func (e *CalculationError) Unwrap() error { return ErrCalculation }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidationError returns true if the error is due to invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEmployee) ||
		errors.Is(err, ErrInvalidShift) ||
		errors.Is(err, ErrInvalidPeriod)
}

// IsNotFound returns true if the error indicates a missing award entry.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrClassificationNotFound) ||
		errors.Is(err, ErrRateNotFound)
}
