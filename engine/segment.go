/*
segment.go - Calendar-day segmentation of shifts

PURPOSE:
  Splits each shift at midnight boundaries so every worked hour is
  attributed to the calendar day it actually falls on. An overnight
  Saturday shift becomes a Saturday segment and a Sunday segment, each
  priced under its own day's rules.

BREAK HANDLING:
  Unpaid breaks are deducted from the segment(s) they overlap by
  wall-clock intersection. An unpaid break spanning midnight is
  apportioned to each side, so each segment's hours stand on their own.
  Paid breaks are ignored: they count as worked time.

INVARIANT:
  The hours of a shift's segments always sum to the shift's worked
  hours. The calculator re-checks this and fails the calculation if
  segmentation ever disagrees with WorkedHours().
*/
package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ShiftSegment is the portion of a shift falling on one calendar day.
type ShiftSegment struct {
	ShiftID string          `json:"shift_id"`
	Date    Date            `json:"date"`
	DayType DayType         `json:"day_type"`
	Start   DateTime        `json:"start"`
	End     DateTime        `json:"end"`
	Hours   decimal.Decimal `json:"hours"`
}

// SegmentShift splits a shift at midnight boundaries and deducts unpaid
// breaks from the segments they overlap. Segments reduced to zero hours
// are dropped. One segmentation step is recorded per shift.
func SegmentShift(s Shift, trail *AuditTrail) []ShiftSegment {
	var segments []ShiftSegment

	cur := s.Start
	for cur.Before(s.End) {
		nextMidnight := DateTime{Time: cur.Date().AddDays(1).Time}
		segEnd := nextMidnight.Min(s.End)

		hours := hoursBetween(cur, segEnd).Sub(unpaidOverlap(s.Breaks, cur, segEnd))
		if hours.Sign() > 0 {
			segments = append(segments, ShiftSegment{
				ShiftID: s.ID,
				Date:    cur.Date(),
				DayType: cur.Date().DayType(),
				Start:   cur,
				End:     segEnd,
				Hours:   hours,
			})
		}
		cur = segEnd
	}

	recordSegmentation(s, segments, trail)
	return segments
}

// unpaidOverlap returns the unpaid break time falling inside [from, to).
func unpaidOverlap(breaks []Break, from, to DateTime) decimal.Decimal {
	total := decimal.Zero
	for _, b := range breaks {
		if b.Paid {
			continue
		}
		start := b.Start.Max(from)
		end := b.End.Min(to)
		if start.Before(end) {
			total = total.Add(hoursBetween(start, end))
		}
	}
	return total
}

func recordSegmentation(s Shift, segments []ShiftSegment, trail *AuditTrail) {
	segOut := make([]map[string]any, len(segments))
	parts := make([]string, len(segments))
	for i, seg := range segments {
		segOut[i] = map[string]any{
			"date":     seg.Date.String(),
			"day_type": string(seg.DayType),
			"hours":    seg.Hours,
		}
		parts[i] = fmt.Sprintf("%sh %s %s", seg.Hours, seg.DayType, seg.Date)
	}

	reasoning := fmt.Sprintf("Shift %s falls entirely on %s", s.ID, s.Date)
	if len(segments) > 1 {
		reasoning = fmt.Sprintf("Shift %s crosses midnight: %s", s.ID, strings.Join(parts, ", "))
	}

	trail.Record("shift_segmentation", "Shift Segmentation", "23",
		map[string]any{
			"shift_id": s.ID,
			"start":    s.Start.String(),
			"end":      s.End.String(),
		},
		map[string]any{"segments": segOut},
		reasoning)
}
