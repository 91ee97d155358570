package analytics

import (
	"testing"

	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingLevelDistributionCountsAndOrder(t *testing.T) {
	students := []model.Student{
		{ID: "s1", ReadingLevel: model.ReadingLevelIniciante},
		{ID: "s2", ReadingLevel: model.ReadingLevelFluente},
		{ID: "s3", ReadingLevel: model.ReadingLevelIniciante},
		{ID: "s4", ReadingLevel: model.ReadingLevelAvancado},
	}

	dist := ReadingLevelDistribution(students)

	require.Len(t, dist, 3, "one pair per level observed")
	// Sorted by level label: Avançado < Fluente < Iniciante.
	assert.Equal(t, []LevelCount{
		{Level: model.ReadingLevelAvancado, Count: 1},
		{Level: model.ReadingLevelFluente, Count: 1},
		{Level: model.ReadingLevelIniciante, Count: 2},
	}, dist)
}

func TestReadingLevelDistributionDeterministic(t *testing.T) {
	students := []model.Student{
		{ID: "s1", ReadingLevel: model.ReadingLevelPreLeitor},
		{ID: "s2", ReadingLevel: model.ReadingLevelIntermediario},
		{ID: "s3", ReadingLevel: model.ReadingLevelFluente},
	}

	first := ReadingLevelDistribution(students)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ReadingLevelDistribution(students))
	}
}

func TestReadingLevelDistributionEmpty(t *testing.T) {
	assert.Empty(t, ReadingLevelDistribution(nil))
}
