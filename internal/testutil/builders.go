// Package testutil provides fluent builders for catalog fixtures.
package testutil

import (
	"github.com/rchalamala/beavered/pkg/model"
)

// CourseBuilder provides a fluent API for creating test courses.
type CourseBuilder struct {
	course model.Course
}

func NewCourse(id uint64, number string) *CourseBuilder {
	return &CourseBuilder{
		course: model.Course{
			ID:     model.CourseID(id),
			Number: number,
			Name:   "Test Course " + number,
			Units:  [3]int{3, 0, 6},
		},
	}
}

func (b *CourseBuilder) WithName(name string) *CourseBuilder {
	b.course.Name = name
	return b
}

func (b *CourseBuilder) WithUnits(lecture, lab, outside int) *CourseBuilder {
	b.course.Units = [3]int{lecture, lab, outside}
	return b
}

// WithSection appends a section numbered after the existing ones.
func (b *CourseBuilder) WithSection(times string) *CourseBuilder {
	b.course.Sections = append(b.course.Sections, model.Section{
		Number:     len(b.course.Sections) + 1,
		Instructor: "Staff",
		Locations:  "101 Test Hall",
		Times:      times,
	})
	return b
}

func (b *CourseBuilder) Build() *model.Course {
	course := b.course
	return &course
}

// Request wraps a course in an enabled, unlocked request.
func Request(course *model.Course, section int) model.CourseRequest {
	return model.CourseRequest{
		Course:  course,
		Section: section,
		Enabled: true,
		Locked:  false,
	}
}
