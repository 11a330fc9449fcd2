/*
Package sqlite persists calculation history.

PURPOSE:
  The engine itself performs no I/O. The API layer records every
  successful calculation here so payroll runs can be retrieved,
  compared, and replayed later. Storage is append-only: results are
  immutable once written, matching the engine's replay guarantee.

KEY TABLE:
  calculations: One row per calculation. The full CalculationResult is
  stored as JSON; a few columns are lifted out for querying (employee,
  period, gross pay).

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so history reads do
  not block writes from concurrent calculation requests.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of database/sql's pooling.

USAGE:
  store, err := sqlite.New("./data/awards.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - api/handlers.go: Writes after each successful calculation
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/award-engine/engine"
)

// ErrNotFound is returned when a calculation id has no stored result.
var ErrNotFound = errors.New("calculation not found")

// Store persists calculation results in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Calculations (append-only history)
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		period_start TEXT NOT NULL,
		period_end TEXT NOT NULL,
		gross_pay TEXT NOT NULL,
		engine_version TEXT NOT NULL,
		result_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- For employee history queries (hot path)
	CREATE INDEX IF NOT EXISTS idx_calculations_employee_period
		ON calculations(employee_id, period_start DESC);

	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
		ON calculations(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveCalculation appends a calculation result. Results are immutable;
// saving the same id twice is an error.
func (s *Store) SaveCalculation(ctx context.Context, result *engine.CalculationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO calculations
			(id, employee_id, period_start, period_end, gross_pay, engine_version, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.CalculationID,
		result.EmployeeID,
		result.PayPeriod.StartDate.String(),
		result.PayPeriod.EndDate.String(),
		result.Totals.GrossPay.String(),
		result.EngineVersion,
		string(payload),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}
	return nil
}

// GetCalculation loads one stored result by id.
func (s *Store) GetCalculation(ctx context.Context, id string) (*engine.CalculationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT result_json FROM calculations WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load calculation: %w", err)
	}

	var result engine.CalculationResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal calculation %s: %w", id, err)
	}
	return &result, nil
}

// ListByEmployee returns an employee's stored results, most recent
// period first, up to limit (0 means no limit).
func (s *Store) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*engine.CalculationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT result_json FROM calculations
		WHERE employee_id = ? ORDER BY period_start DESC, created_at DESC`
	args := []any{employeeID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var results []*engine.CalculationResult
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var result engine.CalculationResult
		if err := json.Unmarshal([]byte(payload), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal calculation: %w", err)
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}
