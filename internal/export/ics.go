// Package export renders a workspace's chosen schedule into shareable
// artifacts: an ICS calendar and a printable PDF timetable.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rchalamala/beavered/pkg/model"
)

const icsDayLetters = "MTWRFSU"

// ICS renders the enabled chosen sections as weekly-recurring calendar
// events anchored at the term start date. Arranged ("A") clauses produce
// no events. The ten-week recurrence matches the term length.
func ICS(courses []model.CourseRequest, termStart time.Time) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\n")
	b.WriteString("VERSION:2.0\n")
	b.WriteString("PRODID:-//beavered//Course Planner//EN\n")
	b.WriteString("CALSCALE:GREGORIAN\n")
	b.WriteString("METHOD:PUBLISH\n")

	for _, c := range courses {
		if !c.Enabled || !c.HasSection() {
			continue
		}
		section := c.ChosenSection()
		times := strings.Split(section.Times, "\n")
		locations := strings.Split(section.Locations, "\n")

		for i, clause := range times {
			location := "Unknown"
			if i < len(locations) && locations[i] != "" {
				location = locations[i]
			}
			fields := strings.Fields(clause)
			// "<days> HH:MM - HH:MM" splits into four fields.
			if len(fields) != 4 || fields[0] == model.TimesArranged {
				continue
			}
			days, startClock, endClock := fields[0], fields[1], fields[3]
			for _, day := range days {
				start, ok := firstOccurrence(termStart, day, startClock)
				if !ok {
					continue
				}
				end, _ := firstOccurrence(termStart, day, endClock)
				writeEvent(&b, c.Course.Number, location, start, end)
			}
		}
	}

	b.WriteString("END:VCALENDAR")
	return b.String()
}

func writeEvent(b *strings.Builder, summary, location string, start, end time.Time) {
	const stamp = "20060102T150405Z"
	fmt.Fprintf(b, "BEGIN:VEVENT\n")
	fmt.Fprintf(b, "SUMMARY:%s\n", summary)
	fmt.Fprintf(b, "LOCATION:%s\n", location)
	fmt.Fprintf(b, "DTSTART:%s\n", start.UTC().Format(stamp))
	fmt.Fprintf(b, "DTEND:%s\n", end.UTC().Format(stamp))
	fmt.Fprintf(b, "RRULE:FREQ=WEEKLY;COUNT=10\n")
	fmt.Fprintf(b, "UID:%s@caltech.dev\n", uuid.NewString())
	fmt.Fprintf(b, "END:VEVENT\n")
}

// firstOccurrence finds the first time the given weekday letter occurs on
// or after the term start date, at the given "HH:MM" wall-clock time.
func firstOccurrence(termStart time.Time, day rune, clock string) (time.Time, bool) {
	target := strings.IndexRune(icsDayLetters, day)
	if target < 0 {
		return time.Time{}, false
	}
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return time.Time{}, false
	}
	offset := (target + 1 - int(termStart.Weekday()) + 7) % 7
	date := termStart.AddDate(0, 0, offset)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, termStart.Location()), true
}
