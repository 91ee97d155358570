package service

import (
	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/salaleitura/leitura-backend/internal/realtime"
	"github.com/salaleitura/leitura-backend/internal/store"
)

// ClassSummary is a class plus how many students it currently holds.
type ClassSummary struct {
	model.SchoolClass
	StudentCount int `json:"student_count"`
}

// ClassService handles class business logic.
type ClassService struct {
	store *store.Store
	hub   *realtime.Hub
}

// NewClassService creates a new ClassService.
func NewClassService(st *store.Store, hub *realtime.Hub) *ClassService {
	return &ClassService{store: st, hub: hub}
}

// List retrieves all classes with their student counts.
func (s *ClassService) List() []ClassSummary {
	snap := s.store.Snapshot()

	counts := make(map[string]int, len(snap.Classes))
	for _, st := range snap.Students {
		if st.ClassID != "" {
			counts[st.ClassID]++
		}
	}

	summaries := make([]ClassSummary, 0, len(snap.Classes))
	for _, c := range snap.Classes {
		summaries = append(summaries, ClassSummary{SchoolClass: c, StudentCount: counts[c.ID]})
	}
	return summaries
}

// Create adds a new class.
func (s *ClassService) Create(c *model.SchoolClass) {
	s.store.AddClass(c)
	s.hub.Notify()
}

// Update replaces an existing class.
func (s *ClassService) Update(c *model.SchoolClass) error {
	if err := s.store.UpdateClass(c); err != nil {
		return err
	}
	s.hub.Notify()
	return nil
}

// Delete removes a class. Students assigned to it become unassigned;
// the store maintains that referential rule, not the caller.
func (s *ClassService) Delete(id string) error {
	if err := s.store.DeleteClass(id); err != nil {
		return err
	}
	s.hub.Notify()
	return nil
}
