// Package csvio loads course catalogs from disk and writes chosen
// schedules back out as CSV.
package csvio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/rchalamala/beavered/internal/catalog"
	"github.com/rchalamala/beavered/pkg/model"
)

// CatalogCSVRow is one scraped catalog line: course fields repeated per
// section. Times and locations keep their embedded newlines inside the
// quoted cell.
type CatalogCSVRow struct {
	CourseID      uint64 `csv:"course_id"`
	Number        string `csv:"number"`
	Name          string `csv:"name"`
	Description   string `csv:"description"`
	Prerequisites string `csv:"prerequisites"`
	Units         string `csv:"units"`
	Rating        string `csv:"rating"`
	Link          string `csv:"link"`
	Section       int    `csv:"section"`
	Instructor    string `csv:"instructor"`
	Locations     string `csv:"locations"`
	Times         string `csv:"times"`
}

// LoadCatalog reads and parses the given csv file for course data,
// grouping section rows by course id in first-seen order.
func LoadCatalog(path string, delim rune) (*catalog.Catalog, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer file.Close()

	rows := []*CatalogCSVRow{}
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	return CatalogFromRows(rows)
}

// CatalogFromRows assembles courses from per-section rows.
func CatalogFromRows(rows []*CatalogCSVRow) (*catalog.Catalog, error) {
	byID := make(map[model.CourseID]*model.Course)
	var ordered []*model.Course

	for _, row := range rows {
		id := model.CourseID(row.CourseID)
		course, ok := byID[id]
		if !ok {
			units, err := parseUnits(row.Units)
			if err != nil {
				return nil, fmt.Errorf("course %d: %w", row.CourseID, err)
			}
			course = &model.Course{
				ID:            id,
				Number:        row.Number,
				Name:          row.Name,
				Description:   row.Description,
				Prerequisites: row.Prerequisites,
				Units:         units,
				Rating:        row.Rating,
				Link:          row.Link,
			}
			byID[id] = course
			ordered = append(ordered, course)
		}
		course.Sections = append(course.Sections, model.Section{
			Number:     row.Section,
			Instructor: row.Instructor,
			Locations:  row.Locations,
			Times:      row.Times,
		})
	}

	return catalog.New(ordered), nil
}

// LoadCatalogJSON reads the indexed JSON shape the web planner ships:
// a map from stringified course id to course record.
func LoadCatalogJSON(path string) (*catalog.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	indexed := map[string]*model.Course{}
	if err := json.Unmarshal(raw, &indexed); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	courses := make([]*model.Course, 0, len(indexed))
	for _, course := range indexed {
		courses = append(courses, course)
	}
	return catalog.New(courses), nil
}

// parseUnits parses a "lecture-lab-outside" triple like "3-0-6".
func parseUnits(raw string) ([3]int, error) {
	var units [3]int
	parts := strings.Split(raw, "-")
	if len(parts) != 3 {
		return units, fmt.Errorf("bad units %q", raw)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return units, fmt.Errorf("bad units %q", raw)
		}
		units[i] = n
	}
	return units, nil
}
