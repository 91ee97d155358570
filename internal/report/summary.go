// Package report owns the textual contract between the domain data and the
// AI generator: the enriched student view and the compact per-assessment
// summary lines used for prompt construction. Field order in the summary
// line is part of that contract.
package report

import (
	"fmt"
	"strings"

	"github.com/salaleitura/leitura-backend/internal/model"
)

// maxRecentAssessments caps how much history goes into a prompt.
const maxRecentAssessments = 3

// UnassignedGradeLabel is used when the student has no class.
const UnassignedGradeLabel = "Sem turma"

// StudentContext is the student-enrichment view handed to the generator:
// the student, the resolved grade label and the most recent assessments
// serialized as summary lines, most-recent-first.
type StudentContext struct {
	Student         model.Student
	GradeLabel      string
	RecentSummaries []string
	HistoryCount    int
}

// BuildStudentContext assembles the prompt context for one student.
// history must already be sorted most-recent-first; only the most recent
// three entries are summarized.
func BuildStudentContext(st model.Student, gradeLabel string, history []model.Assessment) StudentContext {
	if gradeLabel == "" {
		gradeLabel = UnassignedGradeLabel
	}

	recent := history
	if len(recent) > maxRecentAssessments {
		recent = recent[:maxRecentAssessments]
	}
	summaries := make([]string, 0, len(recent))
	for _, a := range recent {
		summaries = append(summaries, SummaryLine(a))
	}

	return StudentContext{
		Student:         st,
		GradeLabel:      gradeLabel,
		RecentSummaries: summaries,
		HistoryCount:    len(history),
	}
}

// SummaryLine serializes one assessment into a single prompt line:
// date, WPM, accuracy, sub-skill counts, scores and notes, in that order.
func SummaryLine(a model.Assessment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | %d ppm | %d%% precisão", a.Date, a.WPM, a.Accuracy)

	fluDone, fluTotal := checklistCounts(criteriaOf(a).Fluency)
	compDone, compTotal := checklistCounts(criteriaOf(a).Comprehension)
	mathDone, mathTotal := checklistCounts(criteriaOf(a).Math)
	fmt.Fprintf(&b, " | fluência %d/%d | compreensão %d/%d | matemática %d/%d",
		fluDone, fluTotal, compDone, compTotal, mathDone, mathTotal)

	fmt.Fprintf(&b, " | nota compreensão %d", a.ComprehensionScore)
	if a.MathScore != nil {
		fmt.Fprintf(&b, " | nota matemática %d", *a.MathScore)
	} else {
		b.WriteString(" | nota matemática -")
	}

	notes := strings.TrimSpace(a.Notes)
	if notes == "" {
		notes = "-"
	}
	fmt.Fprintf(&b, " | obs: %s", notes)
	return b.String()
}

func criteriaOf(a model.Assessment) model.Criteria {
	if a.Criteria == nil {
		return model.Criteria{}
	}
	return *a.Criteria
}

func checklistCounts(checklist map[string]bool) (done, total int) {
	for _, met := range checklist {
		if met {
			done++
		}
	}
	return done, len(checklist)
}
