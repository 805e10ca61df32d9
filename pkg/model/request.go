package model

// NoSection marks a request with no chosen section.
const NoSection = -1

// CourseRequest is a course's presence in a workspace: the full course
// data plus which section (if any) is picked, whether the course takes
// part in scheduling at all, and whether the pick is pinned.
//
// Requests are values. Mutations construct a fresh request instead of
// writing through a shared reference; the search in particular never
// reuses a candidate across branches.
type CourseRequest struct {
	Course  *Course
	Section int
	Enabled bool
	Locked  bool
}

// ShortRequest is the compact form of a request used in arrangements and
// workspace share codes: just the course identity and flags, expandable
// back to a full request through the catalog.
type ShortRequest struct {
	CourseID CourseID `json:"courseId"`
	Section  int      `json:"sectionId"`
	Enabled  bool     `json:"enabled"`
	Locked   bool     `json:"locked"`
}

// Arrangement is one complete conflict-free assignment of sections,
// one entry per request, in request order. Arrangements are produced
// fresh by every search and owned by the workspace that asked for them.
type Arrangement []ShortRequest

// HasSection reports whether the request has a chosen section.
func (r CourseRequest) HasSection() bool {
	return r.Section != NoSection
}

// ChosenSection returns the picked section. Callers must check HasSection.
func (r CourseRequest) ChosenSection() Section {
	return r.Course.Sections[r.Section]
}

// WithSection returns a copy of the request with the given section picked.
func (r CourseRequest) WithSection(section int) CourseRequest {
	r.Section = section
	return r
}

// Short converts the request to its compact form.
func (r CourseRequest) Short() ShortRequest {
	return ShortRequest{
		CourseID: r.Course.ID,
		Section:  r.Section,
		Enabled:  r.Enabled,
		Locked:   r.Locked,
	}
}

// Shorten converts a full request list to its compact form.
func Shorten(requests []CourseRequest) Arrangement {
	short := make(Arrangement, len(requests))
	for i, r := range requests {
		short[i] = r.Short()
	}
	return short
}
