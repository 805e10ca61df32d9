package workspace

import (
	"testing"

	"github.com/google/uuid"

	"github.com/rchalamala/beavered/internal/catalog"
	"github.com/rchalamala/beavered/internal/testutil"
	"github.com/rchalamala/beavered/pkg/model"
)

func TestStoreActivePointer(t *testing.T) {
	cat := catalog.New(nil)
	store := NewStore(cat, 3)

	ids := store.IDs()
	if len(ids) != 3 {
		t.Fatalf("got %d workspaces, want 3", len(ids))
	}
	if store.ActiveID() != ids[0] {
		t.Fatal("first workspace must start active")
	}

	if err := store.SetActive(ids[2]); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if store.ActiveID() != ids[2] {
		t.Fatal("active pointer not moved")
	}

	if err := store.SetActive(uuid.New()); err == nil {
		t.Fatal("SetActive accepted an unknown id")
	}
	if store.ActiveID() != ids[2] {
		t.Fatal("failed SetActive moved the pointer")
	}
}

func TestStoreDoAddressesWorkspaces(t *testing.T) {
	course := testutil.NewCourse(1, "Ma 1 a").WithSection("M 09:00 - 09:55").Build()
	store := NewStore(catalog.New([]*model.Course{course}), 2)
	ids := store.IDs()

	err := store.Do(ids[1], func(ws *Workspace) error {
		ws.AddCourse(testutil.Request(course, model.NoSection))
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	// The nil id addresses the active workspace, which is still the first
	// one and still empty.
	_ = store.Do(uuid.Nil, func(ws *Workspace) error {
		if len(ws.Courses) != 0 {
			t.Fatal("mutation leaked into the active workspace")
		}
		return nil
	})

	if err := store.Do(uuid.New(), func(*Workspace) error { return nil }); err == nil {
		t.Fatal("Do accepted an unknown id")
	}

	added := store.Add()
	if err := store.Do(added, func(*Workspace) error { return nil }); err != nil {
		t.Fatalf("Do on added workspace: %v", err)
	}
}
