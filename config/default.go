/*
default.go - In-memory award configuration

PURPOSE:
  A complete MA000018 configuration built in code, mirroring the
  shipped config/ma000018 directory. Used by tests and as a fallback
  when no configuration directory is supplied.
*/
package config

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/engine"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("config: bad literal " + s)
	}
	return d
}

// Default returns the built-in Aged Care Award configuration with
// rates effective 1 July 2025.
func Default() *engine.AwardConfig {
	return &engine.AwardConfig{
		Award: engine.AwardInfo{
			Code:    "MA000018",
			Name:    "Aged Care Award 2010",
			Version: "2025-07-01",
		},
		CasualLoading: dec("0.25"),
		Classifications: map[string]engine.Classification{
			"dce_level_1": {
				Code:      "dce_level_1",
				Name:      "Direct Care Employee Level 1",
				ClauseRef: "14.2",
			},
			"dce_level_2": {
				Code:      "dce_level_2",
				Name:      "Direct Care Employee Level 2",
				ClauseRef: "14.2",
			},
			"dce_level_3": {
				Code:        "dce_level_3",
				Name:        "Direct Care Employee Level 3",
				Description: "Certificate III qualified personal care worker",
				ClauseRef:   "14.2",
			},
			"dce_level_4": {
				Code:      "dce_level_4",
				Name:      "Direct Care Employee Level 4",
				ClauseRef: "14.2",
			},
		},
		Saturday: engine.PenaltyRates{
			ClauseFullTime: "23.1",
			ClauseCasual:   "23.2(a)",
			FullTime:       dec("1.5"),
			PartTime:       dec("1.5"),
			Casual:         dec("1.75"),
		},
		Sunday: engine.PenaltyRates{
			ClauseFullTime: "23.1",
			ClauseCasual:   "23.2(b)",
			FullTime:       dec("1.75"),
			PartTime:       dec("1.75"),
			Casual:         dec("2.0"),
		},
		Overtime: engine.OvertimeRates{
			DailyThresholdHours: dec("8"),
			TierBoundaryHours:   dec("2"),
			WeekdayTier1:        dec("1.5"),
			WeekdayTier2:        dec("2.0"),
			WeekdayTier1Casual:  dec("1.875"),
			WeekdayTier2Casual:  dec("2.5"),
			Weekend:             dec("2.0"),
			WeekendCasual:       dec("2.5"),
		},
		RateTables: []engine.RateTable{
			{
				EffectiveDate: engine.NewDate(2025, time.July, 1),
				Rates: map[string]engine.ClassificationRate{
					"dce_level_1": {WeeklyRate: dec("980.78"), HourlyRate: dec("25.81")},
					"dce_level_2": {WeeklyRate: dec("1018.78"), HourlyRate: dec("26.81")},
					"dce_level_3": {WeeklyRate: dec("1084.52"), HourlyRate: dec("28.54")},
					"dce_level_4": {WeeklyRate: dec("1097.06"), HourlyRate: dec("28.87")},
				},
				Allowances: engine.AllowanceRates{
					LaundryPerShift: dec("0.32"),
					LaundryPerWeek:  dec("1.49"),
				},
			},
		},
	}
}
