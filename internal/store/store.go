package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/salaleitura/leitura-backend/internal/model"
)

// Common store errors.
var (
	ErrNotFound      = errors.New("record not found")
	ErrClassNotFound = errors.New("referenced class not found")
	ErrMalformedDate = errors.New("assessment date must be an ISO calendar day")
)

// Store is the in-memory source of truth for students, assessments and
// classes. All reads hand out deep copies, so callers can never observe a
// partial mutation or alias internal state. Collections are classroom-sized;
// linear scans are deliberate.
type Store struct {
	mu          sync.RWMutex
	students    []model.Student
	assessments []model.Assessment
	classes     []model.SchoolClass
}

// Snapshot is a consistent, caller-owned copy of all three collections.
type Snapshot struct {
	Students    []model.Student
	Assessments []model.Assessment
	Classes     []model.SchoolClass
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Students:    copyStudents(s.students),
		Assessments: copyAssessments(s.assessments),
		Classes:     copyClasses(s.classes),
	}
}

// ─── Students ───────────────────────────────────────────────────────

// AddStudent inserts a new student, assigning its ID and timestamps.
// A non-empty ClassID must reference an existing class.
func (s *Store) AddStudent(st *model.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.ClassID != "" && s.classIndex(st.ClassID) < 0 {
		return ErrClassNotFound
	}

	now := time.Now()
	st.ID = uuid.NewString()
	st.CreatedAt = now
	st.UpdatedAt = now
	s.students = append(s.students, *st)
	return nil
}

// UpdateStudent replaces a student by ID, preserving CreatedAt.
func (s *Store) UpdateStudent(st *model.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.studentIndex(st.ID)
	if i < 0 {
		return ErrNotFound
	}
	if st.ClassID != "" && s.classIndex(st.ClassID) < 0 {
		return ErrClassNotFound
	}

	st.CreatedAt = s.students[i].CreatedAt
	st.UpdatedAt = time.Now()
	s.students[i] = *st
	return nil
}

// DeleteStudent removes a student by ID. Assessments referencing the
// student are kept for history.
func (s *Store) DeleteStudent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.studentIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	s.students = append(s.students[:i], s.students[i+1:]...)
	return nil
}

// GetStudent retrieves a copy of a student by ID.
func (s *Store) GetStudent(id string) (model.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.studentIndex(id)
	if i < 0 {
		return model.Student{}, false
	}
	return s.students[i], true
}

// ─── Classes ────────────────────────────────────────────────────────

// AddClass inserts a new class, assigning its ID and timestamps.
func (s *Store) AddClass(c *model.SchoolClass) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.classes = append(s.classes, *c)
}

// UpdateClass replaces a class by ID, preserving CreatedAt.
func (s *Store) UpdateClass(c *model.SchoolClass) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.classIndex(c.ID)
	if i < 0 {
		return ErrNotFound
	}
	c.CreatedAt = s.classes[i].CreatedAt
	c.UpdatedAt = time.Now()
	s.classes[i] = *c
	return nil
}

// DeleteClass removes a class and unsets ClassID on every student that
// referenced it. Orphaned students stay; only the reference is cleared.
func (s *Store) DeleteClass(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.classIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	s.classes = append(s.classes[:i], s.classes[i+1:]...)

	now := time.Now()
	for j := range s.students {
		if s.students[j].ClassID == id {
			s.students[j].ClassID = ""
			s.students[j].UpdatedAt = now
		}
	}
	return nil
}

// GetClass retrieves a copy of a class by ID.
func (s *Store) GetClass(id string) (model.SchoolClass, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.classIndex(id)
	if i < 0 {
		return model.SchoolClass{}, false
	}
	return s.classes[i], true
}

// ─── Assessments ────────────────────────────────────────────────────

// AddAssessment inserts a new assessment, assigning its ID and CreatedAt.
// The date must be a zero-padded ISO calendar day; anything else would
// silently break the chronological sort of the time series, so it is
// rejected here even though the HTTP layer validates it too. Assessments
// may reference a deleted student (kept for history), so the student
// reference is not checked.
func (s *Store) AddAssessment(a *model.Assessment) error {
	if _, err := time.Parse(model.DateLayout, a.Date); err != nil {
		return ErrMalformedDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	s.assessments = append(s.assessments, cloneAssessment(*a))
	return nil
}

// AssessmentsByStudent returns the student's full assessment history
// sorted most-recent-first (by date, then by creation time).
func (s *Store) AssessmentsByStudent(studentID string) []model.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]model.Assessment, 0)
	for _, a := range s.assessments {
		if a.StudentID == studentID {
			history = append(history, cloneAssessment(a))
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		if history[i].Date != history[j].Date {
			return history[i].Date > history[j].Date
		}
		return history[i].CreatedAt.After(history[j].CreatedAt)
	})
	return history
}

// ─── Internal helpers ───────────────────────────────────────────────

func (s *Store) studentIndex(id string) int {
	for i := range s.students {
		if s.students[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) classIndex(id string) int {
	for i := range s.classes {
		if s.classes[i].ID == id {
			return i
		}
	}
	return -1
}

func copyStudents(src []model.Student) []model.Student {
	dst := make([]model.Student, len(src))
	copy(dst, src)
	return dst
}

func copyClasses(src []model.SchoolClass) []model.SchoolClass {
	dst := make([]model.SchoolClass, len(src))
	copy(dst, src)
	return dst
}

func copyAssessments(src []model.Assessment) []model.Assessment {
	dst := make([]model.Assessment, len(src))
	for i, a := range src {
		dst[i] = cloneAssessment(a)
	}
	return dst
}

// cloneAssessment deep-copies the pointer and map fields so snapshots
// never share mutable state with the store.
func cloneAssessment(a model.Assessment) model.Assessment {
	if a.MathScore != nil {
		score := *a.MathScore
		a.MathScore = &score
	}
	if a.Criteria != nil {
		c := model.Criteria{
			Fluency:       copyChecklist(a.Criteria.Fluency),
			Comprehension: copyChecklist(a.Criteria.Comprehension),
			Math:          copyChecklist(a.Criteria.Math),
		}
		a.Criteria = &c
	}
	return a
}

func copyChecklist(src map[string]bool) map[string]bool {
	if src == nil {
		return nil
	}
	dst := make(map[string]bool, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
