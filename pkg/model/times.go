package model

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimesArranged marks a section with no fixed weekly meeting time.
const TimesArranged = "A"

// WeekdayCount is the number of schedulable days. No weekend courses.
const WeekdayCount = 5

// WeekdayLetters maps weekday index 0..4 to its catalog letter.
const WeekdayLetters = "MTWRF"

// TimeInterval is a single meeting anchored to the reference week.
// Intervals are half-open: a meeting occupies [Start, End).
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// Week holds all weekly meetings of a section, bucketed Mon..Fri.
type Week [WeekdayCount][]TimeInterval

// Overlaps reports whether two intervals intersect under half-open
// semantics. Touching endpoints (9:00-10:00 vs 10:00-11:00) do not overlap.
func (a TimeInterval) Overlaps(b TimeInterval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Empty reports whether the week holds no meetings at all.
func (w Week) Empty() bool {
	for i := range w {
		if len(w[i]) > 0 {
			return false
		}
	}
	return true
}

var clauseRegex = regexp.MustCompile(`([MTWRF]+) (\d\d):(\d\d) - (\d\d):(\d\d)`)

// ReferenceDay returns weekday i of the fixed reference week at the given
// wall-clock time. All intervals are anchored to this week so sections can
// be compared purely by weekday and time of day.
func ReferenceDay(weekday, hour, minute int) time.Time {
	return time.Date(2018, time.January, weekday+1, hour, minute, 0, 0, time.UTC)
}

// ParseTimes converts a section's raw times string into per-weekday
// intervals. Clauses that don't match the "<days> HH:MM - HH:MM" pattern,
// including the bare "A" sentinel, are skipped silently: parsing is
// best-effort, not validation. Pure and deterministic.
func ParseTimes(raw string) Week {
	var week Week

	// Some catalog records append a standalone "A" marker after
	// legitimate clauses. Strip it before tokenizing.
	cleaned := strings.Replace(raw, "\nA", "", 1)

	for _, clause := range strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		match := clauseRegex.FindStringSubmatch(clause)
		if match == nil {
			continue
		}
		startHour, _ := strconv.Atoi(match[2])
		startMin, _ := strconv.Atoi(match[3])
		endHour, _ := strconv.Atoi(match[4])
		endMin, _ := strconv.Atoi(match[5])

		// A few catalog entries encode 11am as hour 23. This clamp is a
		// narrow data-quality patch for exactly that case, not a general
		// clock-format rule, so it applies to the end hour only.
		if endHour == 23 {
			endHour = 11
		}

		for _, letter := range match[1] {
			day := strings.IndexRune(WeekdayLetters, letter)
			if day < 0 {
				continue
			}
			week[day] = append(week[day], TimeInterval{
				Start: ReferenceDay(day, startHour, startMin),
				End:   ReferenceDay(day, endHour, endMin),
			})
		}
	}
	return week
}
