package model

type CourseID uint64

// Course is an immutable catalog entry. Courses are loaded once per term
// and shared by every workspace; nothing in the engine mutates them.
type Course struct {
	ID            CourseID  `json:"id"`
	Number        string    `json:"number"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Prerequisites string    `json:"prerequisites"`
	Units         [3]int    `json:"units"`
	Rating        string    `json:"rating"`
	Link          string    `json:"link"`
	Sections      []Section `json:"sections"`
}

// Section is one scheduled offering of a course. Times is either the
// sentinel "A" (arranged, no fixed meeting time) or clauses of the form
// "MWF 14:00 - 14:55" separated by commas or newlines. Locations holds
// one line per times clause.
type Section struct {
	Number     int    `json:"number"`
	Instructor string `json:"instructor"`
	Locations  string `json:"locations"`
	Times      string `json:"times"`
}

// Arranged reports whether the course has no fixed weekly meeting time.
// Arranged courses are excluded from conflict checking and search branching.
func (c *Course) Arranged() bool {
	return len(c.Sections) > 0 && c.Sections[0].Times == TimesArranged
}
