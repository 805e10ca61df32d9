// Package catalog indexes a term's course data and resolves the compact
// course references used by arrangements and workspace share codes.
package catalog

import (
	"sort"

	"github.com/rchalamala/beavered/pkg/model"
)

// Catalog is a read-only index from course id to course data.
type Catalog struct {
	courses map[model.CourseID]*model.Course
	ordered []*model.Course
}

// New builds a catalog from a course list. Later duplicates of an id win,
// matching how the scraped data is indexed.
func New(courses []*model.Course) *Catalog {
	c := &Catalog{courses: make(map[model.CourseID]*model.Course, len(courses))}
	for _, course := range courses {
		c.courses[course.ID] = course
	}
	for _, course := range c.courses {
		c.ordered = append(c.ordered, course)
	}
	sort.Slice(c.ordered, func(i, j int) bool {
		return c.ordered[i].ID < c.ordered[j].ID
	})
	return c
}

// Len returns the number of distinct courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Courses returns all courses ordered by id.
func (c *Catalog) Courses() []*model.Course {
	return c.ordered
}

// ByID looks a course up by its catalog identifier.
func (c *Catalog) ByID(id model.CourseID) (*model.Course, bool) {
	course, ok := c.courses[id]
	return course, ok
}

// ByNumber looks a course up by its display number, e.g. "Ma 1 a".
func (c *Catalog) ByNumber(number string) (*model.Course, bool) {
	for _, course := range c.ordered {
		if course.Number == number {
			return course, true
		}
	}
	return nil, false
}

// ByName looks a course up by its full display name.
func (c *Catalog) ByName(name string) (*model.Course, bool) {
	for _, course := range c.ordered {
		if course.Name == name {
			return course, true
		}
	}
	return nil, false
}

// Request builds a fresh unlocked, enabled request for a course resolved
// by number first, then by name. Used for seeding default schedules.
func (c *Catalog) Request(identifier string) (model.CourseRequest, bool) {
	course, ok := c.ByNumber(identifier)
	if !ok {
		course, ok = c.ByName(identifier)
	}
	if !ok {
		return model.CourseRequest{}, false
	}
	// Courses deserialized with an empty section list get no pick.
	section := model.NoSection
	if len(course.Sections) > 0 {
		section = 0
	}
	return model.CourseRequest{
		Course:  course,
		Section: section,
		Enabled: true,
		Locked:  false,
	}, true
}

// Lengthen expands short-form entries back into full requests. Stale
// references (share codes from another term's catalog) are recovered
// rather than propagated: entries whose course id is missing from the
// catalog are dropped, and a section index outside the course's section
// list is reset to no-section. The second return value counts both kinds
// of repair.
func (c *Catalog) Lengthen(short []model.ShortRequest) ([]model.CourseRequest, int) {
	requests := make([]model.CourseRequest, 0, len(short))
	dropped := 0
	for _, s := range short {
		course, ok := c.courses[s.CourseID]
		if !ok {
			dropped++
			continue
		}
		section := s.Section
		if section != model.NoSection && (section < 0 || section >= len(course.Sections)) {
			section = model.NoSection
			dropped++
		}
		requests = append(requests, model.CourseRequest{
			Course:  course,
			Section: section,
			Enabled: s.Enabled,
			Locked:  s.Locked,
		})
	}
	return requests, dropped
}
