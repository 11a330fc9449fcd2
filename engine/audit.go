/*
audit.go - Audit trail construction

PURPOSE:
  Every rule the engine applies is recorded as a numbered step with the
  award clause it implements, a snapshot of its inputs and outputs, and
  a one-line human-readable reasoning. The trail is the engine's answer
  to "why was this shift paid this way" and is what a Fair Work audit
  would be handed.

STEP ORDERING:
  Steps are numbered in application order, which is fixed:
    1. base_rate_lookup
    2. casual_loading
    3. shift_segmentation (one per shift, in input order)
    4. daily_overtime_detection (one per worked calendar day)
    5. ordinary and penalty pricing (per day, chronological)
    6. overtime pricing (per day, chronological)
    7. allowances

WARNINGS:
  Warnings flag conditions worth human review without failing the
  calculation (very long shifts, work on a declared public holiday).
*/
package engine

import "time"

// Warning severities.
const (
	SeverityInfo   = "info"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// AuditStep records one applied rule.
type AuditStep struct {
	StepNumber int            `json:"step_number"`
	RuleID     string         `json:"rule_id"`
	RuleName   string         `json:"rule_name"`
	ClauseRef  string         `json:"clause_ref"`
	Input      map[string]any `json:"input"`
	Output     map[string]any `json:"output"`
	Reasoning  string         `json:"reasoning"`
}

// AuditWarning flags a condition worth human review.
type AuditWarning struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// AuditTrace is the completed trail attached to a CalculationResult.
type AuditTrace struct {
	Steps          []AuditStep    `json:"steps"`
	Warnings       []AuditWarning `json:"warnings"`
	DurationMicros int64          `json:"duration_us"`
}

// AuditTrail accumulates steps and warnings during a calculation.
// It is threaded explicitly through every rule; rules never share
// mutable state any other way.
type AuditTrail struct {
	steps    []AuditStep
	warnings []AuditWarning
}

// NewAuditTrail returns an empty trail.
func NewAuditTrail() *AuditTrail {
	return &AuditTrail{}
}

// Record appends a step. Step numbers are assigned here and are
// strictly increasing from 1.
func (t *AuditTrail) Record(ruleID, ruleName, clauseRef string, input, output map[string]any, reasoning string) {
	t.steps = append(t.steps, AuditStep{
		StepNumber: len(t.steps) + 1,
		RuleID:     ruleID,
		RuleName:   ruleName,
		ClauseRef:  clauseRef,
		Input:      input,
		Output:     output,
		Reasoning:  reasoning,
	})
}

// Warn appends a warning.
func (t *AuditTrail) Warn(code, message, severity string) {
	t.warnings = append(t.warnings, AuditWarning{Code: code, Message: message, Severity: severity})
}

// Steps returns the steps recorded so far.
func (t *AuditTrail) Steps() []AuditStep { return t.steps }

// Build finalizes the trail with the measured calculation duration.
func (t *AuditTrail) Build(duration time.Duration) AuditTrace {
	steps := t.steps
	if steps == nil {
		steps = []AuditStep{}
	}
	warnings := t.warnings
	if warnings == nil {
		warnings = []AuditWarning{}
	}
	return AuditTrace{
		Steps:          steps,
		Warnings:       warnings,
		DurationMicros: duration.Microseconds(),
	}
}
