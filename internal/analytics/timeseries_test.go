package analytics

import (
	"sort"
	"testing"

	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFluencySeriesScenario(t *testing.T) {
	series := FluencySeries([]model.Assessment{
		{StudentID: "s1", Date: "2024-03-01", WPM: 40},
		{StudentID: "s1", Date: "2024-03-02", WPM: 60},
	})

	require.Len(t, series, 2)
	assert.Equal(t, SeriesPoint{Date: "2024-03-01", DisplayDate: "01/03", AvgWPM: 40}, series[0])
	assert.Equal(t, SeriesPoint{Date: "2024-03-02", DisplayDate: "02/03", AvgWPM: 60}, series[1])
}

func TestFluencySeriesGroupsAndRoundsPerDay(t *testing.T) {
	series := FluencySeries([]model.Assessment{
		{Date: "2024-03-01", WPM: 40},
		{Date: "2024-03-01", WPM: 45},
		{Date: "2024-03-01", WPM: 46},
	})

	require.Len(t, series, 1)
	assert.Equal(t, 44, series[0].AvgWPM, "(40+45+46)/3 = 43.67 rounds to 44")
}

func TestFluencySeriesSortedChronologically(t *testing.T) {
	series := FluencySeries([]model.Assessment{
		{Date: "2024-12-31", WPM: 10},
		{Date: "2024-01-02", WPM: 20},
		{Date: "2024-10-05", WPM: 30},
		{Date: "2023-06-15", WPM: 40},
	})

	require.Len(t, series, 4)
	assert.True(t, sort.SliceIsSorted(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	}))
	assert.Equal(t, "2023-06-15", series[0].Date)
	assert.Equal(t, "2024-12-31", series[3].Date)
}

func TestFluencySeriesLengthEqualsDistinctDays(t *testing.T) {
	assessments := []model.Assessment{
		{Date: "2024-03-01", WPM: 40},
		{Date: "2024-03-01", WPM: 50},
		{Date: "2024-03-02", WPM: 60},
		{Date: "2024-03-02", WPM: 70},
		{Date: "2024-03-05", WPM: 80},
	}

	assert.Len(t, FluencySeries(assessments), 3)
}

func TestFluencySeriesSkipsMalformedDates(t *testing.T) {
	series := FluencySeries([]model.Assessment{
		{Date: "2024-03-01", WPM: 40},
		{Date: "2024-3-2", WPM: 999},  // not zero-padded
		{Date: "03/04/2024", WPM: 999},
	})

	require.Len(t, series, 1)
	assert.Equal(t, "2024-03-01", series[0].Date)
}

func TestFluencySeriesEmptyInput(t *testing.T) {
	assert.Empty(t, FluencySeries(nil))
}
