package analytics

import (
	"sort"

	"github.com/salaleitura/leitura-backend/internal/model"
)

// LevelCount is one bar of the reading-level distribution chart.
type LevelCount struct {
	Level model.ReadingLevel `json:"level"`
	Count int                `json:"count"`
}

// ReadingLevelDistribution buckets the given students by reading level.
// One pair is returned per level actually observed, sorted by level label
// so repeated aggregations of the same data produce identical output.
func ReadingLevelDistribution(students []model.Student) []LevelCount {
	counts := make(map[model.ReadingLevel]int)
	for _, st := range students {
		counts[st.ReadingLevel]++
	}

	dist := make([]LevelCount, 0, len(counts))
	for level, count := range counts {
		dist = append(dist, LevelCount{Level: level, Count: count})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].Level < dist[j].Level })
	return dist
}
