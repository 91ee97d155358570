package analytics

import (
	"testing"

	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/salaleitura/leitura-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureSnapshot() store.Snapshot {
	return store.Snapshot{
		Classes: []model.SchoolClass{
			{ID: "c1", Name: "Turma A", GradeLevel: "1º Ano"},
		},
		Students: []model.Student{
			{ID: "s1", Name: "Ana", ClassID: "c1", ReadingLevel: model.ReadingLevelIniciante},
		},
		Assessments: []model.Assessment{
			{ID: "a1", StudentID: "s1", Date: "2024-03-01", WPM: 40, Accuracy: 80},
			{ID: "a2", StudentID: "s1", Date: "2024-03-02", WPM: 60, Accuracy: 90},
		},
	}
}

func TestComputeOverviewClassFilter(t *testing.T) {
	overview := ComputeOverview(fixtureSnapshot(), Filter{ClassID: "c1"})

	require.Len(t, overview.Students, 1)
	require.Len(t, overview.Assessments, 2)
	assert.Equal(t, Stats{
		StudentCount:    1,
		AssessmentCount: 2,
		AvgWPM:          50,
		AvgAccuracy:     85,
	}, overview.Stats)
}

func TestComputeOverviewNoMatches(t *testing.T) {
	overview := ComputeOverview(fixtureSnapshot(), Filter{ClassID: "c2"})

	assert.Empty(t, overview.Students)
	assert.Empty(t, overview.Assessments)
	assert.Equal(t, Stats{}, overview.Stats, "empty scope yields zero stats, never NaN")
}

func TestComputeOverviewAllSentinel(t *testing.T) {
	forAll := ComputeOverview(fixtureSnapshot(), Filter{ClassID: AllClasses})
	forEmpty := ComputeOverview(fixtureSnapshot(), Filter{})

	assert.Equal(t, forEmpty, forAll)
	assert.Len(t, forAll.Students, 1)
}

func TestComputeOverviewNameSearchCaseFolded(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Students = append(snap.Students, model.Student{
		ID: "s2", Name: "Bruno Almeida", ReadingLevel: model.ReadingLevelFluente,
	})

	overview := ComputeOverview(snap, Filter{Search: "ALMEI"})
	require.Len(t, overview.Students, 1)
	assert.Equal(t, "s2", overview.Students[0].ID)
	assert.Empty(t, overview.Assessments, "no assessments belong to the match")
}

func TestFilteredAssessmentsAreExactlyTheFilteredStudents(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Students = append(snap.Students,
		model.Student{ID: "s2", Name: "Bruno", ClassID: "c2", ReadingLevel: model.ReadingLevelAvancado},
	)
	snap.Assessments = append(snap.Assessments,
		model.Assessment{ID: "a3", StudentID: "s2", Date: "2024-03-03", WPM: 80, Accuracy: 95},
		// Orphan of a deleted student: never included unless its student matches.
		model.Assessment{ID: "a4", StudentID: "gone", Date: "2024-03-04", WPM: 10, Accuracy: 50},
	)

	overview := ComputeOverview(snap, Filter{ClassID: "c1"})

	ids := make(map[string]struct{})
	for _, st := range overview.Students {
		ids[st.ID] = struct{}{}
	}
	for _, a := range overview.Assessments {
		_, ok := ids[a.StudentID]
		assert.True(t, ok, "assessment %s leaked into the filtered scope", a.ID)
	}
	assert.Len(t, overview.Assessments, 2, "no omission either")
}

func TestAveragesRoundToNearest(t *testing.T) {
	snap := store.Snapshot{
		Students: []model.Student{{ID: "s1", Name: "Ana", ReadingLevel: model.ReadingLevelIniciante}},
		Assessments: []model.Assessment{
			{ID: "a1", StudentID: "s1", Date: "2024-03-01", WPM: 41, Accuracy: 80},
			{ID: "a2", StudentID: "s1", Date: "2024-03-02", WPM: 42, Accuracy: 81},
		},
	}

	overview := ComputeOverview(snap, Filter{})
	assert.Equal(t, 42, overview.Stats.AvgWPM, "41.5 rounds to 42")
	assert.Equal(t, 81, overview.Stats.AvgAccuracy, "80.5 rounds to 81")
}
