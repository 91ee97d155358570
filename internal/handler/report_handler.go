package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/salaleitura/leitura-backend/internal/report"
	"github.com/salaleitura/leitura-backend/internal/response"
	"github.com/salaleitura/leitura-backend/internal/service"
	"github.com/salaleitura/leitura-backend/internal/store"
	"github.com/salaleitura/leitura-backend/internal/validator"
)

// ReportHandler handles AI-generated reports and reading material.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GenerateReport godoc
// POST /api/v1/teacher/students/:id/report
// Generates a pedagogical report for a student from their most recent
// assessments. One generation per student at a time.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	text, err := h.reportService.GenerateStudentReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failGeneration(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"report": text})
}

// MaterialRequest is the payload for reading-material generation.
type MaterialRequest struct {
	ReadingLevel model.ReadingLevel `json:"reading_level" binding:"required,oneof=Pré-Leitor Iniciante Intermediário Avançado Fluente"`
	Topic        string             `json:"topic" binding:"omitempty,max=200"`
	WordCount    int                `json:"word_count" binding:"omitempty,min=20,max=600"`
}

// GenerateMaterial godoc
// POST /api/v1/teacher/materials
// Generates a reading passage adequate for a reading level.
func (h *ReportHandler) GenerateMaterial(c *gin.Context) {
	var req MaterialRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	text, err := h.reportService.GenerateMaterial(c.Request.Context(), req.ReadingLevel, req.Topic, req.WordCount)
	if err != nil {
		h.failGeneration(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"material": text})
}

func (h *ReportHandler) failGeneration(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, report.ErrGenerationPending):
		response.Fail(c, http.StatusConflict, response.ErrGenerationPending)
	case errors.Is(err, report.ErrEmptyStudentData):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoAssessmentData)
	case errors.Is(err, report.ErrContentBlocked):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrGenerationBlocked)
	case errors.Is(err, report.ErrInvalidConfig):
		response.Fail(c, http.StatusServiceUnavailable, response.ErrGeneratorDisabled)
	default:
		response.Fail(c, http.StatusBadGateway, response.ErrGenerationFailed)
	}
}
