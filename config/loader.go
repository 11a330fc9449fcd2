/*
Package config loads award configuration from a YAML directory.

PURPOSE:
  Award rules change over time (annual wage reviews, penalty rate
  decisions). Keeping the tables in versioned YAML files lets rates be
  updated without an engine release, and lets historical pay periods
  be recalculated with the rules of their day.

DIRECTORY LAYOUT:
  <dir>/
    award.yaml            award identity and casual loading
    classifications.yaml  classification levels
    penalties.yaml        weekend penalty and overtime multipliers
    rates/
      2025-07-01.yaml     minimum rates effective from that date
      ...                 one file per effective date

DECIMAL HANDLING:
  Monetary values and multipliers are YAML strings ("28.54", not
  28.54) and parsed with decimal.NewFromString. Encoding them as YAML
  floats would round-trip through float64 and lose exactness.

SEE ALSO:
  - engine/award.go: The structure this package produces
  - Default(): In-memory configuration mirroring config/ma000018
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/award-engine/engine"
)

// ErrConfig is wrapped by every configuration loading failure.
var ErrConfig = errors.New("invalid award configuration")

// LoadError reports which file failed and why.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("config file %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return ErrConfig }

// =============================================================================
// YAML DOCUMENT SHAPES
// =============================================================================

type awardDoc struct {
	Award struct {
		Code    string `yaml:"code"`
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"award"`
	CasualLoading string `yaml:"casual_loading"`
}

type classificationsDoc struct {
	Classifications map[string]struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Clause      string `yaml:"clause"`
	} `yaml:"classifications"`
}

type penaltyDoc struct {
	Saturday penaltyRatesDoc `yaml:"saturday"`
	Sunday   penaltyRatesDoc `yaml:"sunday"`
	Overtime struct {
		DailyThresholdHours string `yaml:"daily_threshold_hours"`
		TierBoundaryHours   string `yaml:"tier_boundary_hours"`
		Weekday             struct {
			FirstTwoHours       string `yaml:"first_two_hours"`
			AfterTwoHours       string `yaml:"after_two_hours"`
			CasualFirstTwoHours string `yaml:"casual_first_two_hours"`
			CasualAfterTwoHours string `yaml:"casual_after_two_hours"`
		} `yaml:"weekday"`
		Weekend struct {
			FullTime string `yaml:"full_time"`
			Casual   string `yaml:"casual"`
		} `yaml:"weekend"`
	} `yaml:"overtime"`
}

type penaltyRatesDoc struct {
	ClauseFullTime string `yaml:"clause_full_time"`
	ClauseCasual   string `yaml:"clause_casual"`
	FullTime       string `yaml:"full_time"`
	PartTime       string `yaml:"part_time"`
	Casual         string `yaml:"casual"`
}

type rateTableDoc struct {
	EffectiveDate string `yaml:"effective_date"`
	Rates         map[string]struct {
		Weekly string `yaml:"weekly"`
		Hourly string `yaml:"hourly"`
	} `yaml:"rates"`
	Allowances struct {
		LaundryPerShift string `yaml:"laundry_per_shift"`
		LaundryPerWeek  string `yaml:"laundry_per_week"`
	} `yaml:"allowances"`
}

// =============================================================================
// LOADER
// =============================================================================

// Load reads a complete award configuration from dir.
func Load(dir string) (*engine.AwardConfig, error) {
	cfg := &engine.AwardConfig{
		Classifications: map[string]engine.Classification{},
	}

	var award awardDoc
	if err := readYAML(filepath.Join(dir, "award.yaml"), &award); err != nil {
		return nil, err
	}
	cfg.Award = engine.AwardInfo{Code: award.Award.Code, Name: award.Award.Name, Version: award.Award.Version}

	loading, err := parseDecimal(award.CasualLoading, "award.yaml", "casual_loading")
	if err != nil {
		return nil, err
	}
	cfg.CasualLoading = loading

	var classes classificationsDoc
	if err := readYAML(filepath.Join(dir, "classifications.yaml"), &classes); err != nil {
		return nil, err
	}
	for code, c := range classes.Classifications {
		cfg.Classifications[code] = engine.Classification{
			Code:        code,
			Name:        c.Name,
			Description: c.Description,
			ClauseRef:   c.Clause,
		}
	}

	var penalties penaltyDoc
	if err := readYAML(filepath.Join(dir, "penalties.yaml"), &penalties); err != nil {
		return nil, err
	}
	if cfg.Saturday, err = convertPenaltyRates(penalties.Saturday, "penalties.yaml", "saturday"); err != nil {
		return nil, err
	}
	if cfg.Sunday, err = convertPenaltyRates(penalties.Sunday, "penalties.yaml", "sunday"); err != nil {
		return nil, err
	}
	if cfg.Overtime, err = convertOvertime(penalties); err != nil {
		return nil, err
	}

	tables, err := loadRateTables(filepath.Join(dir, "rates"))
	if err != nil {
		return nil, err
	}
	cfg.RateTables = tables

	return cfg, nil
}

func loadRateTables(dir string) ([]engine.RateTable, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{File: dir, Err: err}
	}

	var tables []engine.RateTable
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		var doc rateTableDoc
		if err := readYAML(path, &doc); err != nil {
			return nil, err
		}

		effective, err := engine.ParseDate(doc.EffectiveDate)
		if err != nil {
			return nil, &LoadError{File: path, Err: err}
		}

		table := engine.RateTable{
			EffectiveDate: effective,
			Rates:         map[string]engine.ClassificationRate{},
		}
		for code, r := range doc.Rates {
			weekly, err := parseDecimal(r.Weekly, path, code+".weekly")
			if err != nil {
				return nil, err
			}
			hourly, err := parseDecimal(r.Hourly, path, code+".hourly")
			if err != nil {
				return nil, err
			}
			table.Rates[code] = engine.ClassificationRate{WeeklyRate: weekly, HourlyRate: hourly}
		}

		if table.Allowances.LaundryPerShift, err = parseDecimal(doc.Allowances.LaundryPerShift, path, "laundry_per_shift"); err != nil {
			return nil, err
		}
		if table.Allowances.LaundryPerWeek, err = parseDecimal(doc.Allowances.LaundryPerWeek, path, "laundry_per_week"); err != nil {
			return nil, err
		}

		tables = append(tables, table)
	}

	sort.Slice(tables, func(i, j int) bool {
		return tables[i].EffectiveDate.Before(tables[j].EffectiveDate)
	})
	return tables, nil
}

func convertPenaltyRates(doc penaltyRatesDoc, file, section string) (engine.PenaltyRates, error) {
	var out engine.PenaltyRates
	var err error
	out.ClauseFullTime = doc.ClauseFullTime
	out.ClauseCasual = doc.ClauseCasual
	if out.FullTime, err = parseDecimal(doc.FullTime, file, section+".full_time"); err != nil {
		return out, err
	}
	if out.PartTime, err = parseDecimal(doc.PartTime, file, section+".part_time"); err != nil {
		return out, err
	}
	if out.Casual, err = parseDecimal(doc.Casual, file, section+".casual"); err != nil {
		return out, err
	}
	return out, nil
}

func convertOvertime(doc penaltyDoc) (engine.OvertimeRates, error) {
	const file = "penalties.yaml"
	var out engine.OvertimeRates
	var err error
	ot := doc.Overtime

	if out.DailyThresholdHours, err = parseDecimal(ot.DailyThresholdHours, file, "overtime.daily_threshold_hours"); err != nil {
		return out, err
	}
	if out.TierBoundaryHours, err = parseDecimal(ot.TierBoundaryHours, file, "overtime.tier_boundary_hours"); err != nil {
		return out, err
	}
	if out.WeekdayTier1, err = parseDecimal(ot.Weekday.FirstTwoHours, file, "overtime.weekday.first_two_hours"); err != nil {
		return out, err
	}
	if out.WeekdayTier2, err = parseDecimal(ot.Weekday.AfterTwoHours, file, "overtime.weekday.after_two_hours"); err != nil {
		return out, err
	}
	if out.WeekdayTier1Casual, err = parseDecimal(ot.Weekday.CasualFirstTwoHours, file, "overtime.weekday.casual_first_two_hours"); err != nil {
		return out, err
	}
	if out.WeekdayTier2Casual, err = parseDecimal(ot.Weekday.CasualAfterTwoHours, file, "overtime.weekday.casual_after_two_hours"); err != nil {
		return out, err
	}
	if out.Weekend, err = parseDecimal(ot.Weekend.FullTime, file, "overtime.weekend.full_time"); err != nil {
		return out, err
	}
	if out.WeekendCasual, err = parseDecimal(ot.Weekend.Casual, file, "overtime.weekend.casual"); err != nil {
		return out, err
	}
	return out, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{File: path, Err: err}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return &LoadError{File: path, Err: err}
	}
	return nil
}

func parseDecimal(s, file, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &LoadError{File: file, Err: fmt.Errorf("field %s: %w", field, err)}
	}
	return d, nil
}
