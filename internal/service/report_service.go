package service

import (
	"context"
	"sync"

	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/salaleitura/leitura-backend/internal/report"
	"github.com/salaleitura/leitura-backend/internal/store"
)

// materialKey guards material generation the same way a student ID guards
// report generation. One material request at a time is plenty for a
// single-teacher deployment.
const materialKey = "material"

// ReportService drives AI generation of pedagogical reports and reading
// material. Generation requests have no cancellation on the provider side,
// so a second trigger for the same student is rejected instead of racing
// the first.
type ReportService struct {
	store     *store.Store
	generator report.Generator

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewReportService creates a new ReportService. generator may be nil when
// no API key is configured; callers get report.ErrInvalidConfig.
func NewReportService(st *store.Store, generator report.Generator) *ReportService {
	return &ReportService{
		store:     st,
		generator: generator,
		inFlight:  make(map[string]struct{}),
	}
}

// GenerateStudentReport builds the student's prompt context and asks the
// generator for a pedagogical report.
func (s *ReportService) GenerateStudentReport(ctx context.Context, studentID string) (string, error) {
	if s.generator == nil {
		return "", report.ErrInvalidConfig
	}

	student, ok := s.store.GetStudent(studentID)
	if !ok {
		return "", store.ErrNotFound
	}

	if err := s.acquire(studentID); err != nil {
		return "", err
	}
	defer s.release(studentID)

	gradeLabel := ""
	if student.ClassID != "" {
		if class, ok := s.store.GetClass(student.ClassID); ok {
			gradeLabel = class.Name + " (" + class.GradeLevel + ")"
		}
	}

	history := s.store.AssessmentsByStudent(studentID)
	reqCtx := report.BuildStudentContext(student, gradeLabel, history)

	return s.generator.GenerateReport(ctx, report.ReportRequest{Context: reqCtx})
}

// GenerateMaterial asks the generator for a reading passage.
func (s *ReportService) GenerateMaterial(ctx context.Context, level model.ReadingLevel, topic string, wordCount int) (string, error) {
	if s.generator == nil {
		return "", report.ErrInvalidConfig
	}

	if err := s.acquire(materialKey); err != nil {
		return "", err
	}
	defer s.release(materialKey)

	if wordCount <= 0 {
		wordCount = 100
	}

	return s.generator.GenerateMaterial(ctx, report.MaterialRequest{
		ReadingLevel: level,
		Topic:        topic,
		WordCount:    wordCount,
	})
}

func (s *ReportService) acquire(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return report.ErrGenerationPending
	}
	s.inFlight[key] = struct{}{}
	return nil
}

func (s *ReportService) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}
