package scheduler

import (
	"github.com/rchalamala/beavered/pkg/model"
)

// SectionsIntersect checks the chosen sections of two requests for a
// meeting-time collision. Disabled or sectionless requests never conflict.
func SectionsIntersect(a, b model.CourseRequest) bool {
	if !a.Enabled || !b.Enabled {
		return false
	}
	if !a.HasSection() || !b.HasSection() {
		return false
	}

	timesA := model.ParseTimes(a.ChosenSection().Times)
	timesB := model.ParseTimes(b.ChosenSection().Times)

	for day := 0; day < model.WeekdayCount; day++ {
		for _, intervalA := range timesA[day] {
			for _, intervalB := range timesB[day] {
				if intervalA.Overlaps(intervalB) {
					return true
				}
			}
		}
	}
	return false
}

// WithinAvailability checks that every meeting of the request's chosen
// section fits inside the per-weekday windows. Requests without a section
// pass trivially, as do arranged ("A") sections since they parse to no
// intervals.
func WithinAvailability(r model.CourseRequest, avail model.Availability) bool {
	if !r.HasSection() {
		return true
	}
	week := model.ParseTimes(r.ChosenSection().Times)
	for day := 0; day < model.WeekdayCount; day++ {
		for _, interval := range week[day] {
			if !avail[day].Contains(interval) {
				return false
			}
		}
	}
	return true
}

// validPrefix checks an accumulated search prefix: no pair of requests may
// conflict and every chosen section must respect the availability windows.
// All-pairs is quadratic but request counts stay in the low tens.
func validPrefix(prefix []model.CourseRequest, avail model.Availability) bool {
	for i := 0; i < len(prefix); i++ {
		for j := i + 1; j < len(prefix); j++ {
			if SectionsIntersect(prefix[i], prefix[j]) {
				return false
			}
		}
	}
	for _, r := range prefix {
		if !WithinAvailability(r, avail) {
			return false
		}
	}
	return true
}
