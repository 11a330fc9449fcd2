/*
aggregate.go - Totals over pay lines and allowances

PURPOSE:
  Sums pay lines into category-family hour totals and a gross amount.
  All sums are exact; nothing is rounded.

GROUPING:
  ordinary_hours  = ordinary + ordinary_casual
  penalty_hours   = saturday(+casual) + sunday(+casual)
  overtime_hours  = overtime_150 + overtime_200
*/
package engine

import "github.com/shopspring/decimal"

// AggregateTotals computes PayTotals from pay lines and allowances.
func AggregateTotals(lines []PayLine, allowances []AllowancePayment) PayTotals {
	totals := PayTotals{
		GrossPay:        decimal.Zero,
		OrdinaryHours:   decimal.Zero,
		OvertimeHours:   decimal.Zero,
		PenaltyHours:    decimal.Zero,
		AllowancesTotal: decimal.Zero,
	}

	for _, l := range lines {
		totals.GrossPay = totals.GrossPay.Add(l.Amount)
		switch {
		case l.Category.IsOrdinary():
			totals.OrdinaryHours = totals.OrdinaryHours.Add(l.Hours)
		case l.Category.IsPenalty():
			totals.PenaltyHours = totals.PenaltyHours.Add(l.Hours)
		case l.Category.IsOvertime():
			totals.OvertimeHours = totals.OvertimeHours.Add(l.Hours)
		}
	}

	for _, a := range allowances {
		totals.AllowancesTotal = totals.AllowancesTotal.Add(a.Amount)
		totals.GrossPay = totals.GrossPay.Add(a.Amount)
	}

	return totals
}
