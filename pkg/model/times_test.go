package model

import (
	"reflect"
	"testing"
)

func TestParseTimesMWF(t *testing.T) {
	week := ParseTimes("MWF 14:00 - 14:55")

	for _, day := range []int{0, 2, 4} {
		if len(week[day]) != 1 {
			t.Fatalf("day %d: got %d intervals, want 1", day, len(week[day]))
		}
		interval := week[day][0]
		if interval.Start != ReferenceDay(day, 14, 0) {
			t.Fatalf("day %d: start = %v, want 14:00", day, interval.Start)
		}
		if interval.End != ReferenceDay(day, 14, 55) {
			t.Fatalf("day %d: end = %v, want 14:55", day, interval.End)
		}
	}
	for _, day := range []int{1, 3} {
		if len(week[day]) != 0 {
			t.Fatalf("day %d: got %d intervals, want 0", day, len(week[day]))
		}
	}
}

func TestParseTimesClampsEndHour23(t *testing.T) {
	// A known catalog data-entry error encodes 11am as hour 23.
	week := ParseTimes("TR 23:00 - 23:50")

	for _, day := range []int{1, 3} {
		if len(week[day]) != 1 {
			t.Fatalf("day %d: got %d intervals, want 1", day, len(week[day]))
		}
		if week[day][0].End != ReferenceDay(day, 11, 50) {
			t.Fatalf("day %d: end = %v, want clamped 11:50", day, week[day][0].End)
		}
		// The start hour is left alone.
		if week[day][0].Start != ReferenceDay(day, 23, 0) {
			t.Fatalf("day %d: start = %v, want 23:00", day, week[day][0].Start)
		}
	}
}

func TestParseTimesArrangedSentinel(t *testing.T) {
	if !ParseTimes("A").Empty() {
		t.Fatal(`ParseTimes("A") produced intervals, want none`)
	}
}

func TestParseTimesStripsStrayArrangedMarker(t *testing.T) {
	week := ParseTimes("MWF 14:00 - 14:55\nA")
	if len(week[0]) != 1 || len(week[2]) != 1 || len(week[4]) != 1 {
		t.Fatalf("stray marker broke parsing: %v", week)
	}
}

func TestParseTimesMultipleClauses(t *testing.T) {
	week := ParseTimes("MW 10:00 - 10:55, F 15:00 - 16:55")

	if len(week[0]) != 1 || len(week[2]) != 1 {
		t.Fatalf("MW clause: got %d/%d intervals, want 1/1", len(week[0]), len(week[2]))
	}
	if len(week[4]) != 1 {
		t.Fatalf("F clause: got %d intervals, want 1", len(week[4]))
	}
	if week[4][0].Start != ReferenceDay(4, 15, 0) {
		t.Fatalf("F start = %v, want 15:00", week[4][0].Start)
	}
}

func TestParseTimesSkipsMalformedClauses(t *testing.T) {
	week := ParseTimes("garbage, MWF 09:00 - 09:55, S 10:00 - 11:00")
	total := 0
	for day := range week {
		total += len(week[day])
	}
	if total != 3 {
		t.Fatalf("got %d intervals, want 3 (only the MWF clause)", total)
	}
}

func TestParseTimesDeterministic(t *testing.T) {
	const raw = "MWF 14:00 - 14:55\nTR 10:30 - 11:55"
	first := ParseTimes(raw)
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(ParseTimes(raw), first) {
			t.Fatal("ParseTimes is not deterministic")
		}
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	nine := TimeInterval{Start: ReferenceDay(0, 9, 0), End: ReferenceDay(0, 10, 0)}
	ten := TimeInterval{Start: ReferenceDay(0, 10, 0), End: ReferenceDay(0, 11, 0)}
	halfPast := TimeInterval{Start: ReferenceDay(0, 9, 30), End: ReferenceDay(0, 10, 30)}

	if nine.Overlaps(ten) {
		t.Fatal("touching endpoints must not overlap")
	}
	if !nine.Overlaps(halfPast) {
		t.Fatal("[09:00,10:00) and [09:30,10:30) must overlap")
	}
	if !halfPast.Overlaps(nine) {
		t.Fatal("Overlaps must be symmetric")
	}
}
