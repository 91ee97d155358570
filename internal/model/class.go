package model

import "time"

// SchoolClass represents a class group of students.
type SchoolClass struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	GradeLevel string    `json:"grade_level"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateClassRequest is the payload for creating or updating a class.
type CreateClassRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	GradeLevel string `json:"grade_level" binding:"required,min=1,max=30"`
}
