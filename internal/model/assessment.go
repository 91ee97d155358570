package model

import "time"

// DateLayout is the calendar-day format used by Assessment.Date.
// Zero-padded ISO days sort lexicographically in chronological order,
// which the time-series aggregation relies on.
const DateLayout = "2006-01-02"

// Criteria holds the optional sub-skill checklists filled in during an
// assessment. Keys are criterion labels, values whether the student met them.
type Criteria struct {
	Fluency       map[string]bool `json:"fluency,omitempty"`
	Comprehension map[string]bool `json:"comprehension,omitempty"`
	Math          map[string]bool `json:"math,omitempty"`
}

// Assessment is a single reading (and optionally math) assessment record.
// Assessments are immutable once created; deleting a student keeps its
// assessments for history.
type Assessment struct {
	ID                 string    `json:"id"`
	StudentID          string    `json:"student_id"`
	Date               string    `json:"date"`
	WPM                int       `json:"wpm"`
	Accuracy           int       `json:"accuracy"`
	ComprehensionScore int       `json:"comprehension_score"`
	MathScore          *int      `json:"math_score,omitempty"`
	Criteria           *Criteria `json:"criteria,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreateAssessmentRequest is the payload of the assessment submission flow.
type CreateAssessmentRequest struct {
	StudentID          string    `json:"student_id" binding:"required,uuid"`
	Date               string    `json:"date" binding:"required,datetime=2006-01-02"`
	WPM                int       `json:"wpm" binding:"min=0"`
	Accuracy           int       `json:"accuracy" binding:"min=0,max=100"`
	ComprehensionScore int       `json:"comprehension_score" binding:"min=0,max=10"`
	MathScore          *int      `json:"math_score" binding:"omitempty,min=0,max=10"`
	Criteria           *Criteria `json:"criteria" binding:"omitempty"`
	Notes              string    `json:"notes" binding:"omitempty,max=2000"`
}
