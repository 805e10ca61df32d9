package workspace

import (
	"encoding/base64"
	"testing"

	"github.com/rchalamala/beavered/internal/catalog"
	"github.com/rchalamala/beavered/internal/testutil"
	"github.com/rchalamala/beavered/pkg/model"
)

func TestCodeRoundTrip(t *testing.T) {
	ma := testutil.NewCourse(1, "Ma 1 a").WithSection("M 09:00 - 09:55").Build()
	ph := testutil.NewCourse(2, "Ph 1 a").WithSection("T 09:00 - 09:55").Build()

	locked := testutil.Request(ma, 0)
	locked.Locked = true
	sectionless := testutil.Request(ph, model.NoSection)
	sectionless.Enabled = false

	code, err := ExportCode([]model.CourseRequest{locked, sectionless})
	if err != nil {
		t.Fatalf("ExportCode: %v", err)
	}

	short, err := ImportCode(code)
	if err != nil {
		t.Fatalf("ImportCode: %v", err)
	}
	if len(short) != 2 {
		t.Fatalf("got %d entries, want 2", len(short))
	}
	if short[0].CourseID != 1 || !short[0].Locked || !short[0].Enabled || short[0].Section != 0 {
		t.Fatalf("entry 0 = %+v", short[0])
	}
	if short[1].CourseID != 2 || short[1].Locked || short[1].Enabled || short[1].Section != model.NoSection {
		t.Fatalf("entry 1 = %+v", short[1])
	}
}

func TestImportCodeWebFormat(t *testing.T) {
	// A code produced by the web planner: btoa of a flat JSON array of
	// [courseId, enabled, locked, sectionId] quadruples.
	code := base64.StdEncoding.EncodeToString(
		[]byte(`[3149,true,false,0,2860,true,true,null]`),
	)

	short, err := ImportCode(code)
	if err != nil {
		t.Fatalf("ImportCode: %v", err)
	}
	if len(short) != 2 {
		t.Fatalf("got %d entries, want 2", len(short))
	}
	if short[0].CourseID != 3149 || short[0].Section != 0 {
		t.Fatalf("entry 0 = %+v", short[0])
	}
	if short[1].CourseID != 2860 || short[1].Section != model.NoSection || !short[1].Locked {
		t.Fatalf("entry 1 = %+v", short[1])
	}
}

func TestImportCodeErrors(t *testing.T) {
	cases := []struct {
		name string
		code string
	}{
		{"not base64", "!!!"},
		{"not json", base64.StdEncoding.EncodeToString([]byte("nope"))},
		{"truncated entry", base64.StdEncoding.EncodeToString([]byte(`[1,true,false]`))},
		{"wrong types", base64.StdEncoding.EncodeToString([]byte(`["x",true,false,0]`))},
	}
	for _, tc := range cases {
		if _, err := ImportCode(tc.code); err == nil {
			t.Fatalf("%s: ImportCode accepted %q", tc.name, tc.code)
		}
	}
}

func TestImportedCodeDropsStaleCourses(t *testing.T) {
	ma := testutil.NewCourse(1, "Ma 1 a").WithSection("M 09:00 - 09:55").Build()
	cat := catalog.New([]*model.Course{ma})

	// Entry 99 references a course from another term's catalog.
	code := base64.StdEncoding.EncodeToString(
		[]byte(`[1,true,false,0,99,true,false,null]`),
	)
	short, err := ImportCode(code)
	if err != nil {
		t.Fatalf("ImportCode: %v", err)
	}

	requests, dropped := cat.Lengthen(short)
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if len(requests) != 1 || requests[0].Course.ID != 1 {
		t.Fatalf("requests = %+v, want just course 1", requests)
	}
}

func TestImportedCodeClearsStaleSectionIndex(t *testing.T) {
	ma := testutil.NewCourse(1, "Ma 1 a").WithSection("M 09:00 - 09:55").Build()
	cat := catalog.New([]*model.Course{ma})

	// A locked pick of section 7 on a one-section course, e.g. a code
	// saved against a previous term's section list.
	code := base64.StdEncoding.EncodeToString(
		[]byte(`[1,true,true,7]`),
	)
	short, err := ImportCode(code)
	if err != nil {
		t.Fatalf("ImportCode: %v", err)
	}

	requests, dropped := cat.Lengthen(short)
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if len(requests) != 1 || requests[0].HasSection() {
		t.Fatalf("requests = %+v, want course 1 with no section", requests)
	}

	// The repaired request list must survive a full recompute.
	ws := New(cat)
	ws.SetCourses(requests)
	if len(ws.Arrangements) != 1 {
		t.Fatalf("got %d arrangements, want 1", len(ws.Arrangements))
	}
}
