package service

import (
	"github.com/salaleitura/leitura-backend/internal/analytics"
	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/salaleitura/leitura-backend/internal/realtime"
	"github.com/salaleitura/leitura-backend/internal/store"
)

// StudentService handles student business logic.
type StudentService struct {
	store *store.Store
	hub   *realtime.Hub
}

// NewStudentService creates a new StudentService.
func NewStudentService(st *store.Store, hub *realtime.Hub) *StudentService {
	return &StudentService{store: st, hub: hub}
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(id string) (model.Student, bool) {
	return s.store.GetStudent(id)
}

// ListFiltered computes the filtered student view plus its statistics for
// the given class selector and name search.
func (s *StudentService) ListFiltered(filter analytics.Filter) analytics.Overview {
	return analytics.ComputeOverview(s.store.Snapshot(), filter)
}

// Create adds a new student. A non-empty class reference must exist.
func (s *StudentService) Create(st *model.Student) error {
	if err := s.store.AddStudent(st); err != nil {
		return err
	}
	s.hub.Notify()
	return nil
}

// Update replaces a student by ID.
func (s *StudentService) Update(st *model.Student) error {
	if err := s.store.UpdateStudent(st); err != nil {
		return err
	}
	s.hub.Notify()
	return nil
}

// Delete removes a student. Assessment history is preserved on purpose:
// past assessments stay in the collections, orphaned.
func (s *StudentService) Delete(id string) error {
	if err := s.store.DeleteStudent(id); err != nil {
		return err
	}
	s.hub.Notify()
	return nil
}
