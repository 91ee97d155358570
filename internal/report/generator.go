package report

import (
	"context"
	"errors"

	"github.com/salaleitura/leitura-backend/internal/model"
)

// Generator errors. Callers distinguish misconfiguration, content blocked
// by the provider's safety filters, and everything else.
var (
	ErrInvalidConfig     = errors.New("invalid generator configuration")
	ErrContentBlocked    = errors.New("content blocked by safety filters")
	ErrGenerationFailed  = errors.New("generation failed")
	ErrEmptyStudentData  = errors.New("student has no data to report on")
	ErrGenerationPending = errors.New("a generation is already in progress")
)

// ReportRequest asks for a pedagogical report about one student.
type ReportRequest struct {
	Context StudentContext
}

// MaterialRequest asks for a piece of reading material.
type MaterialRequest struct {
	ReadingLevel model.ReadingLevel
	Topic        string
	WordCount    int
}

// Generator produces AI-authored text. Implementations own their own
// retry and timeout policy; the analytics core makes no promises there.
type Generator interface {
	GenerateReport(ctx context.Context, req ReportRequest) (string, error)
	GenerateMaterial(ctx context.Context, req MaterialRequest) (string, error)
}
