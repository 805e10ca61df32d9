package workspace

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/rchalamala/beavered/internal/catalog"
)

// Store owns a set of workspaces keyed by id plus a separate active-id
// pointer, so callers address workspaces explicitly instead of by list
// position. The engine itself is synchronous; the mutex only serializes
// concurrent HTTP handlers.
type Store struct {
	mu         sync.Mutex
	catalog    *catalog.Catalog
	workspaces map[uuid.UUID]*Workspace
	order      []uuid.UUID
	active     uuid.UUID
}

// DefaultWorkspaceCount matches the planner's five fixed tabs.
const DefaultWorkspaceCount = 5

// NewStore creates a store with count empty workspaces and the first one
// active.
func NewStore(cat *catalog.Catalog, count int) *Store {
	s := &Store{
		catalog:    cat,
		workspaces: make(map[uuid.UUID]*Workspace, count),
	}
	for i := 0; i < count; i++ {
		id := uuid.New()
		s.workspaces[id] = New(cat)
		s.order = append(s.order, id)
	}
	if count > 0 {
		s.active = s.order[0]
	}
	return s
}

// Catalog returns the course catalog backing every workspace.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// IDs returns the workspace ids in creation order.
func (s *Store) IDs() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uuid.UUID, len(s.order))
	copy(ids, s.order)
	return ids
}

// ActiveID returns the id of the active workspace.
func (s *Store) ActiveID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SetActive switches the active workspace. Unknown ids leave the pointer
// untouched, preserving the invariant that it always names a live
// workspace.
func (s *Store) SetActive(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workspaces[id]; !ok {
		return fmt.Errorf("workspace %s: not found", id)
	}
	s.active = id
	return nil
}

// Add creates a new empty workspace and returns its id.
func (s *Store) Add() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.workspaces[id] = New(s.catalog)
	s.order = append(s.order, id)
	return id
}

// Do runs fn against the workspace with the given id while holding the
// store lock. The nil id addresses the active workspace.
func (s *Store) Do(id uuid.UUID, fn func(*Workspace) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == uuid.Nil {
		id = s.active
	}
	ws, ok := s.workspaces[id]
	if !ok {
		return fmt.Errorf("workspace %s: not found", id)
	}
	return fn(ws)
}
