package engine_test

import (
	"testing"
	"time"

	"github.com/warp/award-engine/engine"
)

func TestSegmentShift_SingleDay(t *testing.T) {
	// GIVEN: A shift entirely within one Monday
	// WHEN: Segmenting
	// THEN: One weekday segment with the full worked hours

	trail := engine.NewAuditTrail()
	segs := engine.SegmentShift(shift("s1", 21, 9, 17), trail)

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].DayType != engine.DayWeekday {
		t.Errorf("day type = %s, want weekday", segs[0].DayType)
	}
	assertDecimal(t, "hours", segs[0].Hours, dec("8"))
}

func TestSegmentShift_CrossesMidnight(t *testing.T) {
	// GIVEN: A shift from Saturday 22:00 to Sunday 06:00
	// WHEN: Segmenting
	// THEN: A 2h Saturday segment and a 6h Sunday segment

	trail := engine.NewAuditTrail()
	s := engine.Shift{
		ID:    "s1",
		Date:  engine.NewDate(2025, time.July, 26),
		Start: engine.NewDateTime(2025, time.July, 26, 22, 0),
		End:   engine.NewDateTime(2025, time.July, 27, 6, 0),
	}
	segs := engine.SegmentShift(s, trail)

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].DayType != engine.DaySaturday || segs[1].DayType != engine.DaySunday {
		t.Errorf("day types = %s, %s; want saturday, sunday", segs[0].DayType, segs[1].DayType)
	}
	assertDecimal(t, "saturday hours", segs[0].Hours, dec("2"))
	assertDecimal(t, "sunday hours", segs[1].Hours, dec("6"))
}

func TestSegmentShift_BreakSpanningMidnight_Apportioned(t *testing.T) {
	// GIVEN: Saturday 20:00 - Sunday 04:00 with an unpaid break 23:30-00:30
	// WHEN: Segmenting
	// THEN: Each side of midnight loses its own half hour:
	//       Saturday 4h - 0.5h = 3.5h, Sunday 4h - 0.5h = 3.5h

	trail := engine.NewAuditTrail()
	s := engine.Shift{
		ID:    "s1",
		Date:  engine.NewDate(2025, time.July, 26),
		Start: engine.NewDateTime(2025, time.July, 26, 20, 0),
		End:   engine.NewDateTime(2025, time.July, 27, 4, 0),
		Breaks: []engine.Break{{
			Start: engine.NewDateTime(2025, time.July, 26, 23, 30),
			End:   engine.NewDateTime(2025, time.July, 27, 0, 30),
			Paid:  false,
		}},
	}
	segs := engine.SegmentShift(s, trail)

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	assertDecimal(t, "saturday hours", segs[0].Hours, dec("3.5"))
	assertDecimal(t, "sunday hours", segs[1].Hours, dec("3.5"))

	total := segs[0].Hours.Add(segs[1].Hours)
	assertDecimal(t, "segment sum equals worked hours", total, s.WorkedHours())
}

func TestSegmentShift_SegmentConsumedByBreak_Dropped(t *testing.T) {
	// GIVEN: A shift crossing midnight whose post-midnight portion is
	//        entirely an unpaid break
	// WHEN: Segmenting
	// THEN: Only the first day's segment remains

	trail := engine.NewAuditTrail()
	s := engine.Shift{
		ID:    "s1",
		Date:  engine.NewDate(2025, time.July, 21),
		Start: engine.NewDateTime(2025, time.July, 21, 20, 0),
		End:   engine.NewDateTime(2025, time.July, 22, 1, 0),
		Breaks: []engine.Break{{
			Start: engine.NewDateTime(2025, time.July, 22, 0, 0),
			End:   engine.NewDateTime(2025, time.July, 22, 1, 0),
			Paid:  false,
		}},
	}
	segs := engine.SegmentShift(s, trail)

	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	assertDecimal(t, "hours", segs[0].Hours, dec("4"))
}

func TestGroupByDay_MergesShiftsOnSameDate(t *testing.T) {
	// GIVEN: Segments from two shifts on the same Monday, out of order
	// WHEN: Grouping by day
	// THEN: One day with both segments in chronological order

	trail := engine.NewAuditTrail()
	var segs []engine.ShiftSegment
	segs = append(segs, engine.SegmentShift(shift("pm", 21, 13, 18), trail)...)
	segs = append(segs, engine.SegmentShift(shift("am", 21, 6, 11), trail)...)

	days := engine.GroupByDay(segs)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	assertDecimal(t, "total hours", days[0].TotalHours, dec("10"))
	if days[0].Segments[0].ShiftID != "am" || days[0].Segments[1].ShiftID != "pm" {
		t.Errorf("segments not chronological: %s, %s",
			days[0].Segments[0].ShiftID, days[0].Segments[1].ShiftID)
	}
}
