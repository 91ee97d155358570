package model

import "time"

// ReadingLevel classifies a student's current reading stage.
type ReadingLevel string

const (
	ReadingLevelPreLeitor     ReadingLevel = "Pré-Leitor"
	ReadingLevelIniciante     ReadingLevel = "Iniciante"
	ReadingLevelIntermediario ReadingLevel = "Intermediário"
	ReadingLevelAvancado      ReadingLevel = "Avançado"
	ReadingLevelFluente       ReadingLevel = "Fluente"
)

// Student represents a student tracked by the teacher.
// ClassID is empty when the student is not assigned to any class.
type Student struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ClassID      string       `json:"class_id"`
	ReadingLevel ReadingLevel `json:"reading_level"`
	AvatarURL    string       `json:"avatar_url,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// CreateStudentRequest is the payload for creating a new student.
type CreateStudentRequest struct {
	Name         string       `json:"name" binding:"required,min=2,max=100"`
	ClassID      string       `json:"class_id" binding:"omitempty,uuid"`
	ReadingLevel ReadingLevel `json:"reading_level" binding:"required,oneof=Pré-Leitor Iniciante Intermediário Avançado Fluente"`
	AvatarURL    string       `json:"avatar_url" binding:"omitempty,max=500"`
}

// UpdateStudentRequest is the payload for replacing an existing student.
// Replacement is full: omitting class_id unassigns the student.
type UpdateStudentRequest struct {
	Name         string       `json:"name" binding:"required,min=2,max=100"`
	ClassID      string       `json:"class_id" binding:"omitempty,uuid"`
	ReadingLevel ReadingLevel `json:"reading_level" binding:"required,oneof=Pré-Leitor Iniciante Intermediário Avançado Fluente"`
	AvatarURL    string       `json:"avatar_url" binding:"omitempty,max=500"`
}
