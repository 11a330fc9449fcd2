package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/warp/award-engine/config"
	"github.com/warp/award-engine/engine"
)

func TestLoad_ShippedConfiguration(t *testing.T) {
	// GIVEN: The shipped MA000018 directory
	// WHEN: Loading
	// THEN: It matches the built-in default configuration

	cfg, err := config.Load("ma000018")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	def := config.Default()
	if cfg.Award.Code != def.Award.Code {
		t.Errorf("award code = %s, want %s", cfg.Award.Code, def.Award.Code)
	}
	if !cfg.CasualLoading.Equal(def.CasualLoading) {
		t.Errorf("casual loading = %s, want %s", cfg.CasualLoading, def.CasualLoading)
	}
	if len(cfg.Classifications) != len(def.Classifications) {
		t.Errorf("classifications = %d, want %d", len(cfg.Classifications), len(def.Classifications))
	}
	if !cfg.Saturday.Casual.Equal(def.Saturday.Casual) {
		t.Errorf("saturday casual = %s, want %s", cfg.Saturday.Casual, def.Saturday.Casual)
	}
	if !cfg.Overtime.DailyThresholdHours.Equal(def.Overtime.DailyThresholdHours) {
		t.Errorf("daily threshold = %s", cfg.Overtime.DailyThresholdHours)
	}

	table := cfg.RateTableOn(engine.NewDate(2025, time.August, 1))
	if table == nil {
		t.Fatal("no rate table effective for 2025-08-01")
	}
	rate, ok := table.Rates["dce_level_3"]
	if !ok {
		t.Fatal("dce_level_3 missing from loaded rates")
	}
	if rate.HourlyRate.String() != "28.54" {
		t.Errorf("hourly rate = %s, want 28.54", rate.HourlyRate)
	}
	if !table.Allowances.LaundryPerWeek.Equal(def.RateTables[0].Allowances.LaundryPerWeek) {
		t.Errorf("laundry cap = %s", table.Allowances.LaundryPerWeek)
	}
}

func TestRateTableOn_EffectiveDateSelection(t *testing.T) {
	// GIVEN: The shipped configuration (rates effective 2025-07-01)
	// WHEN: Looking up dates around the effective date
	// THEN: Before it there is no table; on and after it there is

	cfg, err := config.Load("ma000018")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if table := cfg.RateTableOn(engine.NewDate(2025, time.June, 30)); table != nil {
		t.Error("no table should be effective before 2025-07-01")
	}
	if table := cfg.RateTableOn(engine.NewDate(2025, time.July, 1)); table == nil {
		t.Error("table should be effective on its effective date")
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, config.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestLoad_FloatInsteadOfString(t *testing.T) {
	// GIVEN: A config whose casual_loading is a bare YAML float
	// WHEN: Loading
	// THEN: Loading fails rather than silently round-tripping float64

	dir := t.TempDir()
	writeFile(t, dir, "award.yaml", `
award:
  code: MA000018
  name: Aged Care Award 2010
  version: "1"
casual_loading: 0.25
`)
	writeFile(t, dir, "classifications.yaml", "classifications: {}\n")
	writeFile(t, dir, "penalties.yaml", "")

	_, err := config.Load(dir)
	if !errors.Is(err, config.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}

	var loadErr *config.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("err = %v, want *LoadError", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
