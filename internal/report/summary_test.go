package report

import (
	"testing"

	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryLineFieldOrder(t *testing.T) {
	math := 8
	a := model.Assessment{
		Date:               "2024-03-01",
		WPM:                40,
		Accuracy:           80,
		ComprehensionScore: 7,
		MathScore:          &math,
		Criteria: &model.Criteria{
			Fluency:       map[string]bool{"lê palavras": true, "lê frases": false},
			Comprehension: map[string]bool{"reconta a história": true},
		},
		Notes: "Leu com apoio.",
	}

	line := SummaryLine(a)
	assert.Equal(t,
		"2024-03-01 | 40 ppm | 80% precisão | fluência 1/2 | compreensão 1/1 | matemática 0/0 | nota compreensão 7 | nota matemática 8 | obs: Leu com apoio.",
		line)
}

func TestSummaryLineDefaults(t *testing.T) {
	a := model.Assessment{Date: "2024-03-02", WPM: 55, Accuracy: 91, ComprehensionScore: 5}

	line := SummaryLine(a)
	assert.Equal(t,
		"2024-03-02 | 55 ppm | 91% precisão | fluência 0/0 | compreensão 0/0 | matemática 0/0 | nota compreensão 5 | nota matemática - | obs: -",
		line)
}

func TestBuildStudentContextTruncatesToThreeMostRecent(t *testing.T) {
	st := model.Student{ID: "s1", Name: "Ana", ReadingLevel: model.ReadingLevelIniciante}

	// Already sorted most-recent-first, as the store hands it out.
	history := []model.Assessment{
		{Date: "2024-03-10", WPM: 70},
		{Date: "2024-03-05", WPM: 60},
		{Date: "2024-03-02", WPM: 50},
		{Date: "2024-02-20", WPM: 40},
		{Date: "2024-02-10", WPM: 30},
	}

	ctx := BuildStudentContext(st, "Turma A (1º Ano)", history)

	assert.Equal(t, 5, ctx.HistoryCount)
	require.Len(t, ctx.RecentSummaries, 3)
	assert.Contains(t, ctx.RecentSummaries[0], "2024-03-10")
	assert.Contains(t, ctx.RecentSummaries[2], "2024-03-02")
	assert.Equal(t, "Turma A (1º Ano)", ctx.GradeLabel)
}

func TestBuildStudentContextUnassignedGradeLabel(t *testing.T) {
	st := model.Student{ID: "s1", Name: "Ana", ReadingLevel: model.ReadingLevelIniciante}

	ctx := BuildStudentContext(st, "", nil)
	assert.Equal(t, UnassignedGradeLabel, ctx.GradeLabel)
	assert.Empty(t, ctx.RecentSummaries)
	assert.Zero(t, ctx.HistoryCount)
}
