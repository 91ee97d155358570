// Package analytics contains the pure derived-data computations behind the
// dashboard: filtered views, aggregate statistics, the per-day fluency time
// series and the reading-level distribution. Every function is a pure
// function of a store snapshot plus filter parameters; nothing is cached.
package analytics

import (
	"math"
	"strings"

	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/salaleitura/leitura-backend/internal/store"
)

// AllClasses is the class filter sentinel meaning "no class filter".
// An empty ClassID means the same thing.
const AllClasses = "all"

// Filter selects the student subset the derived views are computed over.
type Filter struct {
	ClassID string
	Search  string
}

// Stats are the aggregate numbers for a filtered scope. Averages are
// rounded to the nearest integer and defined as zero when the filtered
// assessment count is zero.
type Stats struct {
	StudentCount    int `json:"student_count"`
	AssessmentCount int `json:"assessment_count"`
	AvgWPM          int `json:"avg_wpm"`
	AvgAccuracy     int `json:"avg_accuracy"`
}

// Overview bundles the filtered collections with their statistics.
type Overview struct {
	Students    []model.Student    `json:"students"`
	Assessments []model.Assessment `json:"assessments"`
	Stats       Stats              `json:"stats"`
}

// ComputeOverview filters the snapshot by class and case-insensitive name
// substring, then computes statistics over the matching assessments. An
// assessment matches when its student is in the filtered subset; the check
// is a set-membership lookup, not a nested scan.
func ComputeOverview(snap store.Snapshot, f Filter) Overview {
	classID := f.ClassID
	if classID == AllClasses {
		classID = ""
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	students := make([]model.Student, 0, len(snap.Students))
	ids := make(map[string]struct{}, len(snap.Students))
	for _, st := range snap.Students {
		if classID != "" && st.ClassID != classID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(st.Name), search) {
			continue
		}
		students = append(students, st)
		ids[st.ID] = struct{}{}
	}

	assessments := make([]model.Assessment, 0, len(snap.Assessments))
	var sumWPM, sumAccuracy int
	for _, a := range snap.Assessments {
		if _, ok := ids[a.StudentID]; !ok {
			continue
		}
		assessments = append(assessments, a)
		sumWPM += a.WPM
		sumAccuracy += a.Accuracy
	}

	stats := Stats{
		StudentCount:    len(students),
		AssessmentCount: len(assessments),
	}
	if n := len(assessments); n > 0 {
		stats.AvgWPM = roundMean(sumWPM, n)
		stats.AvgAccuracy = roundMean(sumAccuracy, n)
	}

	return Overview{Students: students, Assessments: assessments, Stats: stats}
}

func roundMean(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
