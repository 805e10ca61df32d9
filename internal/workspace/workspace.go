// Package workspace holds the mutable planning state layered over the
// search: course requests, the generated arrangements, and the cursor
// into them. Every mutation reruns the search and applies the cursor
// policy, so callers always observe a consistent snapshot.
package workspace

import (
	"time"

	"github.com/rchalamala/beavered/internal/catalog"
	"github.com/rchalamala/beavered/internal/scheduler"
	"github.com/rchalamala/beavered/pkg/model"
)

// NoArrangement marks an unset cursor.
const NoArrangement = -1

// Workspace is one independent planning surface. The zero value is not
// usable; construct with New.
type Workspace struct {
	catalog *catalog.Catalog

	Courses        []model.CourseRequest
	Arrangements   []model.Arrangement
	ArrangementIdx int
	Availability   model.Availability
}

// New returns an empty workspace backed by the given catalog, with the
// stock 08:00-23:00 availability windows.
func New(cat *catalog.Catalog) *Workspace {
	return &Workspace{
		catalog:        cat,
		Arrangements:   []model.Arrangement{},
		ArrangementIdx: NoArrangement,
		Availability:   model.DefaultAvailability(),
	}
}

// clearUnlockedPicks drops the section choice of every unlocked request.
// Locked picks are never altered by the engine.
func (w *Workspace) clearUnlockedPicks() {
	courses := make([]model.CourseRequest, len(w.Courses))
	for i, c := range w.Courses {
		if !c.Locked {
			c.Section = model.NoSection
		}
		courses[i] = c
	}
	w.Courses = courses
}

// materialize copies the picks of the arrangement at idx into the live
// course list.
func (w *Workspace) materialize(idx int) {
	w.ArrangementIdx = idx
	w.Courses, _ = w.catalog.Lengthen(w.Arrangements[idx])
}

// recomputeAndJump reruns the search and grounds the cursor at the first
// arrangement, or clears everything when none exist. This is the policy
// for every mutation that reshapes the search space.
func (w *Workspace) recomputeAndJump() {
	w.Arrangements = scheduler.Generate(w.Courses, w.Availability)
	if len(w.Arrangements) == 0 {
		w.ArrangementIdx = NoArrangement
		w.clearUnlockedPicks()
		return
	}
	w.materialize(0)
}

// AddCourse adds a request to the workspace. Re-adding a course that is
// already present replaces the old entry with the new pick and locks it,
// which is how explicit section selection pins a choice.
func (w *Workspace) AddCourse(req model.CourseRequest) {
	replaced := false
	courses := make([]model.CourseRequest, len(w.Courses))
	for i, c := range w.Courses {
		if c.Course.ID == req.Course.ID {
			pinned := req
			pinned.Locked = true
			courses[i] = pinned
			replaced = true
		} else {
			courses[i] = c
		}
	}
	if !replaced {
		courses = append(courses, req)
	}
	w.Courses = courses
	w.recomputeAndJump()
}

// RemoveCourse deletes the request for the given course id.
func (w *Workspace) RemoveCourse(id model.CourseID) {
	courses := make([]model.CourseRequest, 0, len(w.Courses))
	for _, c := range w.Courses {
		if c.Course.ID != id {
			courses = append(courses, c)
		}
	}
	w.Courses = courses
	w.recomputeAndJump()
}

// ToggleEnabled flips whether the course takes part in scheduling.
// Enabling a course, or toggling an unlocked one, re-grounds the cursor
// at the first arrangement; disabling a locked course only shrinks the
// constraint set, so the current position is kept when still valid.
func (w *Workspace) ToggleEnabled(id model.CourseID) {
	var toggled model.CourseRequest
	found := false
	courses := make([]model.CourseRequest, len(w.Courses))
	for i, c := range w.Courses {
		if c.Course.ID == id {
			c.Enabled = !c.Enabled
			toggled = c
			found = true
		}
		courses[i] = c
	}
	if !found {
		return
	}
	w.Courses = courses

	w.Arrangements = scheduler.Generate(w.Courses, w.Availability)
	if len(w.Arrangements) == 0 {
		w.ArrangementIdx = NoArrangement
		w.clearUnlockedPicks()
		return
	}
	if toggled.Enabled || !toggled.Locked {
		w.materialize(0)
		return
	}
	if w.ArrangementIdx < 0 || w.ArrangementIdx >= len(w.Arrangements) {
		w.materialize(0)
	}
}

// ToggleLock flips whether the course's pick is pinned. Locking changes
// the shape of the search space enough that the cursor always re-grounds
// at the first arrangement.
func (w *Workspace) ToggleLock(id model.CourseID) {
	courses := make([]model.CourseRequest, len(w.Courses))
	for i, c := range w.Courses {
		if c.Course.ID == id {
			c.Locked = !c.Locked
		}
		courses[i] = c
	}
	w.Courses = courses
	w.recomputeAndJump()
}

// SetCourses replaces the whole request list (bulk edits, reorders,
// imports).
func (w *Workspace) SetCourses(courses []model.CourseRequest) {
	w.Courses = courses
	w.recomputeAndJump()
}

// Reorder moves the request at index from to index to.
func (w *Workspace) Reorder(from, to int) {
	if from < 0 || from >= len(w.Courses) || to < 0 || to >= len(w.Courses) || from == to {
		return
	}
	courses := make([]model.CourseRequest, 0, len(w.Courses))
	courses = append(courses, w.Courses...)
	moved := courses[from]
	courses = append(courses[:from], courses[from+1:]...)
	courses = append(courses[:to], append([]model.CourseRequest{moved}, courses[to:]...)...)
	w.SetCourses(courses)
}

func (w *Workspace) setAll(mutate func(model.CourseRequest) model.CourseRequest) {
	courses := make([]model.CourseRequest, len(w.Courses))
	for i, c := range w.Courses {
		courses[i] = mutate(c)
	}
	w.SetCourses(courses)
}

// LockAll pins every pick.
func (w *Workspace) LockAll() {
	w.setAll(func(c model.CourseRequest) model.CourseRequest { c.Locked = true; return c })
}

// UnlockAll unpins every pick.
func (w *Workspace) UnlockAll() {
	w.setAll(func(c model.CourseRequest) model.CourseRequest { c.Locked = false; return c })
}

// EnableAll includes every course in scheduling.
func (w *Workspace) EnableAll() {
	w.setAll(func(c model.CourseRequest) model.CourseRequest { c.Enabled = true; return c })
}

// DisableAll excludes every course from scheduling.
func (w *Workspace) DisableAll() {
	w.setAll(func(c model.CourseRequest) model.CourseRequest { c.Enabled = false; return c })
}

// Clear removes every request.
func (w *Workspace) Clear() {
	w.SetCourses(nil)
}

// UpdateAvailability moves one boundary of one weekday's window. A pure
// widening that leaves the arrangement count unchanged cannot invalidate
// the current selection, so the cursor stays put; any other edit
// re-grounds at the first arrangement.
func (w *Workspace) UpdateAvailability(day int, isStart bool, t time.Time) {
	if day < 0 || day >= model.WeekdayCount {
		return
	}
	old := w.Availability[day]
	widening := (isStart && t.Before(old.Start)) || (!isStart && t.After(old.End))

	avail := w.Availability
	if isStart {
		avail[day] = model.TimeWindow{Start: t, End: old.End}
	} else {
		avail[day] = model.TimeWindow{Start: old.Start, End: t}
	}

	previousCount := len(w.Arrangements)
	w.Availability = avail
	w.Arrangements = scheduler.Generate(w.Courses, w.Availability)
	if len(w.Arrangements) == 0 {
		w.ArrangementIdx = NoArrangement
		w.clearUnlockedPicks()
		return
	}
	if !widening || len(w.Arrangements) != previousCount {
		w.materialize(0)
		return
	}
	if w.ArrangementIdx < 0 || w.ArrangementIdx >= len(w.Arrangements) {
		w.materialize(0)
	}
}

// NextArrangement advances the cursor with wraparound and copies the
// selected arrangement's picks into the course list.
func (w *Workspace) NextArrangement() {
	w.stepArrangement(1)
}

// PrevArrangement retreats the cursor with wraparound.
func (w *Workspace) PrevArrangement() {
	w.stepArrangement(-1)
}

func (w *Workspace) stepArrangement(delta int) {
	count := len(w.Arrangements)
	switch {
	case count == 0:
		w.ArrangementIdx = NoArrangement
		return
	case w.ArrangementIdx == NoArrangement:
		w.ArrangementIdx = 0
	default:
		w.ArrangementIdx = (count + w.ArrangementIdx + delta) % count
	}
	w.materialize(w.ArrangementIdx)
}

// Units sums the (lecture-lab-outside) unit triples of enabled courses.
func (w *Workspace) Units() [3]int {
	var units [3]int
	for _, c := range w.Courses {
		if !c.Enabled {
			continue
		}
		for i := 0; i < 3; i++ {
			units[i] += c.Course.Units[i]
		}
	}
	return units
}

// AllSectionsSet reports whether no request is both enabled and unlocked,
// i.e. the search has nothing left to vary.
func (w *Workspace) AllSectionsSet() bool {
	for _, c := range w.Courses {
		if c.Enabled && !c.Locked {
			return false
		}
	}
	return true
}
