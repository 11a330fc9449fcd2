/*
handlers.go - HTTP API handlers for the award pay engine

PURPOSE:
  Exposes the pay calculation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  Calculation:
    POST   /api/calculate              Run a pay calculation

  History:
    GET    /api/calculations           List stored results by employee
    GET    /api/calculations/{id}      Get one stored result

  Service:
    GET    /api/health                 Liveness and engine version
    GET    /api/info                   Award metadata and classifications

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Calculator: The pure calculation engine
  - Store: Optional calculation history (nil disables history)

ERROR HANDLING:
  Errors are returned as JSON with a stable code and appropriate
  HTTP status:
  - 400: Malformed JSON, validation errors, unknown classification,
         no effective rate
  - 404: Stored calculation not found
  - 500: Internal invariant failures

SECURITY NOTE:
  No authentication middleware. This service is an internal payroll
  collaborator, fronted by the platform gateway.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - engine/calculator.go: The pipeline behind POST /api/calculate
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/warp/award-engine/engine"
	"github.com/warp/award-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	Calculator *engine.Calculator
	Store      *sqlite.Store // nil disables calculation history
}

// NewHandler creates a handler. Pass a nil store to disable history.
func NewHandler(calc *engine.Calculator, store *sqlite.Store) *Handler {
	return &Handler{Calculator: calc, Store: store}
}

// =============================================================================
// CALCULATION
// =============================================================================

// Calculate runs a pay calculation and, when history is enabled,
// persists the result.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeMalformedJSON, "invalid request body", err)
		return
	}

	result, err := h.Calculator.Calculate(req.Employee, req.PayPeriod, req.Shifts)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if h.Store != nil {
		// History is best-effort: a storage failure must not withhold
		// a correct calculation from the caller.
		if err := h.Store.SaveCalculation(r.Context(), result); err != nil {
			log.Printf("failed to store calculation %s: %v", result.CalculationID, err)
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// =============================================================================
// HISTORY
// =============================================================================

// GetCalculation returns one stored calculation by id.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusNotFound, CodeNotFound, "calculation history is disabled", nil)
		return
	}

	id := chi.URLParam(r, "id")
	result, err := h.Store.GetCalculation(r.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, CodeNotFound, "calculation not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternalError, "failed to load calculation", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListCalculations returns an employee's stored calculations.
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusNotFound, CodeNotFound, "calculation history is disabled", nil)
		return
	}

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		writeError(w, http.StatusBadRequest, CodeValidationError, "employee_id query parameter is required", nil)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, CodeValidationError, "limit must be a non-negative integer", nil)
			return
		}
		limit = parsed
	}

	results, err := h.Store.ListByEmployee(r.Context(), employeeID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternalError, "failed to list calculations", err)
		return
	}
	if results == nil {
		results = []*engine.CalculationResult{}
	}

	writeJSON(w, http.StatusOK, CalculationListDTO{EmployeeID: employeeID, Calculations: results})
}

// =============================================================================
// SERVICE
// =============================================================================

// Health reports liveness and the engine version.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthDTO{Status: "ok", EngineVersion: engine.EngineVersion})
}

// Info describes the loaded award and its classifications.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	cfg := h.Calculator.Config

	classifications := make([]ClassificationDTO, 0, len(cfg.Classifications))
	for _, c := range cfg.Classifications {
		classifications = append(classifications, ClassificationDTO{
			Code:        c.Code,
			Name:        c.Name,
			Description: c.Description,
			ClauseRef:   c.ClauseRef,
		})
	}
	sort.Slice(classifications, func(i, j int) bool {
		return classifications[i].Code < classifications[j].Code
	})

	writeJSON(w, http.StatusOK, InfoDTO{
		Award:           cfg.Award,
		EngineVersion:   engine.EngineVersion,
		Classifications: classifications,
	})
}

// =============================================================================
// HELPERS
// =============================================================================

// writeEngineError maps engine errors to HTTP responses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrClassificationNotFound):
		writeError(w, http.StatusBadRequest, CodeClassificationNotFound, "unknown classification", err)
	case errors.Is(err, engine.ErrRateNotFound):
		writeError(w, http.StatusBadRequest, CodeRateNotFound, "no rate effective for pay period", err)
	case engine.IsValidationError(err):
		writeError(w, http.StatusBadRequest, CodeValidationError, "invalid calculation input", err)
	case errors.Is(err, engine.ErrCalculation):
		writeError(w, http.StatusInternalServerError, CodeCalculationError, "calculation failed", err)
	default:
		writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
