package model

import "time"

// TimeWindow is the earliest start and latest end allowed on one weekday.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Availability holds one window per weekday, Mon..Fri. A chosen section's
// interval on a weekday must lie entirely within that day's window.
type Availability [WeekdayCount]TimeWindow

// Contains reports whether the interval lies entirely inside the window.
func (w TimeWindow) Contains(interval TimeInterval) bool {
	return !interval.Start.Before(w.Start) && !interval.End.After(w.End)
}

// DefaultAvailability allows 08:00 through 23:00 on every weekday, the
// planner's stock window.
func DefaultAvailability() Availability {
	var avail Availability
	for day := 0; day < WeekdayCount; day++ {
		avail[day] = TimeWindow{
			Start: ReferenceDay(day, 8, 0),
			End:   ReferenceDay(day, 23, 0),
		}
	}
	return avail
}
