package store

import (
	"testing"

	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClass(t *testing.T, s *Store, name string) model.SchoolClass {
	t.Helper()
	c := model.SchoolClass{Name: name, GradeLevel: "1º Ano"}
	s.AddClass(&c)
	require.NotEmpty(t, c.ID)
	return c
}

func newStudent(t *testing.T, s *Store, name, classID string) model.Student {
	t.Helper()
	st := model.Student{Name: name, ClassID: classID, ReadingLevel: model.ReadingLevelIniciante}
	require.NoError(t, s.AddStudent(&st))
	require.NotEmpty(t, st.ID)
	return st
}

func TestAddStudentRejectsUnknownClass(t *testing.T) {
	s := New()
	st := model.Student{Name: "Ana", ClassID: "missing", ReadingLevel: model.ReadingLevelIniciante}
	assert.ErrorIs(t, s.AddStudent(&st), ErrClassNotFound)

	// Unassigned is always valid.
	st.ClassID = ""
	assert.NoError(t, s.AddStudent(&st))
}

func TestStudentIDsAreUnique(t *testing.T) {
	s := New()
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		st := newStudent(t, s, "Aluno", "")
		_, dup := seen[st.ID]
		require.False(t, dup)
		seen[st.ID] = struct{}{}
	}
}

func TestUpdateStudentReplacesByID(t *testing.T) {
	s := New()
	c := newClass(t, s, "Turma A")
	st := newStudent(t, s, "Ana", "")

	updated := st
	updated.Name = "Ana Clara"
	updated.ClassID = c.ID
	updated.ReadingLevel = model.ReadingLevelFluente
	require.NoError(t, s.UpdateStudent(&updated))

	got, ok := s.GetStudent(st.ID)
	require.True(t, ok)
	assert.Equal(t, "Ana Clara", got.Name)
	assert.Equal(t, c.ID, got.ClassID)
	assert.Equal(t, model.ReadingLevelFluente, got.ReadingLevel)
	assert.Equal(t, st.CreatedAt, got.CreatedAt)
}

func TestUpdateStudentNotFound(t *testing.T) {
	s := New()
	st := model.Student{ID: "nope", Name: "Ana", ReadingLevel: model.ReadingLevelIniciante}
	assert.ErrorIs(t, s.UpdateStudent(&st), ErrNotFound)
}

func TestDeleteClassUnassignsExactlyItsStudents(t *testing.T) {
	s := New()
	a := newClass(t, s, "Turma A")
	b := newClass(t, s, "Turma B")

	inA1 := newStudent(t, s, "Ana", a.ID)
	inA2 := newStudent(t, s, "Bruno", a.ID)
	inB := newStudent(t, s, "Carla", b.ID)

	require.NoError(t, s.DeleteClass(a.ID))

	_, ok := s.GetClass(a.ID)
	assert.False(t, ok, "class should be gone")

	for _, id := range []string{inA1.ID, inA2.ID} {
		st, ok := s.GetStudent(id)
		require.True(t, ok)
		assert.Empty(t, st.ClassID, "students of the deleted class become unassigned")
	}

	st, ok := s.GetStudent(inB.ID)
	require.True(t, ok)
	assert.Equal(t, b.ID, st.ClassID, "students of other classes are untouched")
}

func TestDeleteStudentKeepsAssessments(t *testing.T) {
	s := New()
	st := newStudent(t, s, "Ana", "")

	a := model.Assessment{StudentID: st.ID, Date: "2024-03-01", WPM: 40, Accuracy: 80}
	require.NoError(t, s.AddAssessment(&a))

	before := s.Snapshot()
	require.NoError(t, s.DeleteStudent(st.ID))
	after := s.Snapshot()

	assert.Empty(t, after.Students)
	assert.Equal(t, before.Assessments, after.Assessments, "assessment history survives student deletion")
}

func TestAddAssessmentRejectsMalformedDate(t *testing.T) {
	s := New()
	st := newStudent(t, s, "Ana", "")

	for _, date := range []string{"2024-3-1", "01/03/2024", "2024-03-01T10:00:00Z", ""} {
		a := model.Assessment{StudentID: st.ID, Date: date, WPM: 40}
		assert.ErrorIs(t, s.AddAssessment(&a), ErrMalformedDate, "date %q", date)
	}
}

func TestAssessmentsByStudentSortedMostRecentFirst(t *testing.T) {
	s := New()
	st := newStudent(t, s, "Ana", "")

	for _, date := range []string{"2024-03-02", "2024-03-10", "2024-02-28"} {
		a := model.Assessment{StudentID: st.ID, Date: date, WPM: 40}
		require.NoError(t, s.AddAssessment(&a))
	}
	other := newStudent(t, s, "Bruno", "")
	b := model.Assessment{StudentID: other.ID, Date: "2024-03-05", WPM: 50}
	require.NoError(t, s.AddAssessment(&b))

	history := s.AssessmentsByStudent(st.ID)
	require.Len(t, history, 3)
	assert.Equal(t, "2024-03-10", history[0].Date)
	assert.Equal(t, "2024-03-02", history[1].Date)
	assert.Equal(t, "2024-02-28", history[2].Date)
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()
	st := newStudent(t, s, "Ana", "")

	score := 7
	a := model.Assessment{
		StudentID: st.ID,
		Date:      "2024-03-01",
		WPM:       40,
		MathScore: &score,
		Criteria:  &model.Criteria{Fluency: map[string]bool{"lê sílabas": true}},
	}
	require.NoError(t, s.AddAssessment(&a))

	snap := s.Snapshot()
	snap.Students[0].Name = "mutated"
	*snap.Assessments[0].MathScore = 99
	snap.Assessments[0].Criteria.Fluency["lê sílabas"] = false

	fresh := s.Snapshot()
	assert.Equal(t, "Ana", fresh.Students[0].Name)
	assert.Equal(t, 7, *fresh.Assessments[0].MathScore)
	assert.True(t, fresh.Assessments[0].Criteria.Fluency["lê sílabas"])
}
