package analytics

import (
	"sort"
	"time"

	"github.com/salaleitura/leitura-backend/internal/model"
)

// SeriesPoint is one chart point: all assessments of one calendar day
// collapsed into a rounded mean of the fluency metric.
type SeriesPoint struct {
	Date        string `json:"date"`
	DisplayDate string `json:"display_date"`
	AvgWPM      int    `json:"avg_wpm"`
}

// FluencySeries groups the given assessments by calendar day and returns
// one point per distinct day, sorted chronologically. Lexicographic order
// of the ISO day keys is chronological order, which the store guarantees
// by rejecting non-ISO dates; a malformed date that slipped in anyway is
// skipped rather than allowed to corrupt the sort.
func FluencySeries(assessments []model.Assessment) []SeriesPoint {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, a := range assessments {
		if _, err := time.Parse(model.DateLayout, a.Date); err != nil {
			continue
		}
		sums[a.Date] += a.WPM
		counts[a.Date]++
	}

	days := make([]string, 0, len(sums))
	for day := range sums {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]SeriesPoint, 0, len(days))
	for _, day := range days {
		series = append(series, SeriesPoint{
			Date:        day,
			DisplayDate: displayDay(day),
			AvgWPM:      roundMean(sums[day], counts[day]),
		})
	}
	return series
}

// displayDay renders an ISO day as dd/mm for chart labels. The day is
// reconstructed from explicit calendar fields instead of parsing the
// string as UTC midnight, so no timezone can shift it by a day.
func displayDay(day string) string {
	parsed, err := time.Parse(model.DateLayout, day)
	if err != nil {
		return day
	}
	local := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 12, 0, 0, 0, time.Local)
	return local.Format("02/01")
}
