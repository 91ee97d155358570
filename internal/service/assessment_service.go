package service

import (
	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/salaleitura/leitura-backend/internal/realtime"
	"github.com/salaleitura/leitura-backend/internal/store"
)

// AssessmentService handles the assessment submission flow. Assessments
// are immutable: there is no update or delete.
type AssessmentService struct {
	store *store.Store
	hub   *realtime.Hub
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(st *store.Store, hub *realtime.Hub) *AssessmentService {
	return &AssessmentService{store: st, hub: hub}
}

// Create records a new assessment for an existing student.
func (s *AssessmentService) Create(a *model.Assessment) error {
	if _, ok := s.store.GetStudent(a.StudentID); !ok {
		return store.ErrNotFound
	}
	if err := s.store.AddAssessment(a); err != nil {
		return err
	}
	s.hub.Notify()
	return nil
}

// HistoryByStudent returns a student's full assessment history sorted
// most-recent-first.
func (s *AssessmentService) HistoryByStudent(studentID string) ([]model.Assessment, error) {
	if _, ok := s.store.GetStudent(studentID); !ok {
		return nil, store.ErrNotFound
	}
	return s.store.AssessmentsByStudent(studentID), nil
}
