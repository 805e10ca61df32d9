package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rchalamala/beavered/internal/testutil"
	"github.com/rchalamala/beavered/pkg/model"
)

func TestCatalogFromRowsGroupsSections(t *testing.T) {
	rows := []*CatalogCSVRow{
		{CourseID: 1, Number: "Ma 1 a", Name: "Calculus", Units: "4-0-8",
			Section: 1, Instructor: "Staff", Times: "MWF 09:00 - 09:55"},
		{CourseID: 1, Number: "Ma 1 a", Name: "Calculus", Units: "4-0-8",
			Section: 2, Instructor: "Staff", Times: "MWF 10:00 - 10:55"},
		{CourseID: 2, Number: "Ph 1 a", Name: "Mechanics", Units: "4-0-8",
			Section: 1, Instructor: "Staff", Times: "TR 09:00 - 09:55"},
	}

	cat, err := CatalogFromRows(rows)
	if err != nil {
		t.Fatalf("CatalogFromRows: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("got %d courses, want 2", cat.Len())
	}

	ma, ok := cat.ByID(1)
	if !ok || len(ma.Sections) != 2 {
		t.Fatalf("course 1 sections = %v", ma)
	}
	if ma.Units != [3]int{4, 0, 8} {
		t.Fatalf("units = %v, want [4 0 8]", ma.Units)
	}
	if ma.Sections[1].Times != "MWF 10:00 - 10:55" {
		t.Fatalf("section 2 times = %q", ma.Sections[1].Times)
	}
}

func TestCatalogFromRowsBadUnits(t *testing.T) {
	rows := []*CatalogCSVRow{
		{CourseID: 1, Number: "Ma 1 a", Units: "four", Section: 1},
	}
	if _, err := CatalogFromRows(rows); err == nil {
		t.Fatal("bad units accepted")
	}
}

func TestLoadCatalogCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	content := "course_id,number,name,description,prerequisites,units,rating,link,section,instructor,locations,times\n" +
		"1,Ma 1 a,Calculus,Intro calculus,None,4-0-8,4.2,http://example.org,1,Staff,101 Hall,MWF 09:00 - 09:55\n" +
		"1,Ma 1 a,Calculus,Intro calculus,None,4-0-8,4.2,http://example.org,2,Staff,101 Hall,MWF 10:00 - 10:55\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadCatalog(path, ',')
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	course, ok := cat.ByNumber("Ma 1 a")
	if !ok || len(course.Sections) != 2 {
		t.Fatalf("loaded course = %v, %v", course, ok)
	}
}

func TestLoadCatalogJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{
		"3149": {
			"id": 3149,
			"number": "Ma 1 a",
			"name": "Calculus",
			"units": [4, 0, 8],
			"sections": [
				{"number": 1, "instructor": "Staff", "locations": "101 Hall", "times": "MWF 09:00 - 09:55"}
			]
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadCatalogJSON(path)
	if err != nil {
		t.Fatalf("LoadCatalogJSON: %v", err)
	}
	course, ok := cat.ByID(3149)
	if !ok {
		t.Fatal("course 3149 missing")
	}
	if course.Units != [3]int{4, 0, 8} || len(course.Sections) != 1 {
		t.Fatalf("course = %+v", course)
	}
}

func TestExportScheduleString(t *testing.T) {
	ma := testutil.NewCourse(1, "Ma 1 a").WithSection("MW 09:00 - 09:55").Build()
	disabled := testutil.NewCourse(2, "Ph 1 a").WithSection("F 10:00 - 10:55").Build()

	off := testutil.Request(disabled, 0)
	off.Enabled = false

	out, err := ExportScheduleString([]model.CourseRequest{
		testutil.Request(ma, 0),
		off,
	})
	if err != nil {
		t.Fatalf("ExportScheduleString: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus one row per weekly meeting of the enabled course.
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out)
	}
	if !strings.Contains(lines[1], "Ma 1 a") || !strings.Contains(lines[1], "M,09:00,09:55") {
		t.Fatalf("unexpected row: %q", lines[1])
	}
	if strings.Contains(out, "Ph 1 a") {
		t.Fatal("disabled course exported")
	}
}
