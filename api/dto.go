/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. The calculation
  request and result reuse the engine's serialization contract
  directly; this file adds the request envelope and the small
  service-level responses.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO: Response types returned to clients

VALIDATION:
  Validation is done by the engine, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - engine/types.go: CalculationResult returned from /calculate
*/
package api

import (
	"github.com/warp/award-engine/engine"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalculateRequest is the request body for POST /api/calculate.
type CalculateRequest struct {
	Employee  engine.Employee  `json:"employee"`
	PayPeriod engine.PayPeriod `json:"pay_period"`
	Shifts    []engine.Shift   `json:"shifts"`
}

// HealthDTO is the health check response.
type HealthDTO struct {
	Status        string `json:"status"`
	EngineVersion string `json:"engine_version"`
}

// ClassificationDTO describes one classification in /api/info.
type ClassificationDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ClauseRef   string `json:"clause_ref"`
}

// InfoDTO describes the loaded award and engine.
type InfoDTO struct {
	Award           engine.AwardInfo    `json:"award"`
	EngineVersion   string              `json:"engine_version"`
	Classifications []ClassificationDTO `json:"classifications"`
}

// CalculationListDTO wraps a history listing.
type CalculationListDTO struct {
	EmployeeID   string                      `json:"employee_id"`
	Calculations []*engine.CalculationResult `json:"calculations"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Error codes returned in ErrorResponse.Code.
const (
	CodeMalformedJSON          = "MALFORMED_JSON"
	CodeValidationError        = "VALIDATION_ERROR"
	CodeClassificationNotFound = "CLASSIFICATION_NOT_FOUND"
	CodeRateNotFound           = "RATE_NOT_FOUND"
	CodeCalculationError       = "CALCULATION_ERROR"
	CodeNotFound               = "NOT_FOUND"
	CodeInternalError          = "INTERNAL_ERROR"
)
