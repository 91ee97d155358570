package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/salaleitura/leitura-backend/internal/response"
	"github.com/salaleitura/leitura-backend/internal/service"
	"github.com/salaleitura/leitura-backend/internal/store"
	"github.com/salaleitura/leitura-backend/internal/validator"
)

// AssessmentHandler handles the assessment submission flow and history.
type AssessmentHandler struct {
	assessmentService *service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentService *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// CreateAssessment godoc
// POST /api/v1/teacher/assessments
// Records a new assessment for an existing student.
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req model.CreateAssessmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assessment := &model.Assessment{
		StudentID:          req.StudentID,
		Date:               req.Date,
		WPM:                req.WPM,
		Accuracy:           req.Accuracy,
		ComprehensionScore: req.ComprehensionScore,
		MathScore:          req.MathScore,
		Criteria:           req.Criteria,
		Notes:              req.Notes,
	}

	if err := h.assessmentService.Create(assessment); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, store.ErrMalformedDate):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrInvalidDate)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"assessment": assessment})
}

// StudentHistory godoc
// GET /api/v1/teacher/students/:id/assessments
// Returns the student's full assessment history, most recent first.
func (h *AssessmentHandler) StudentHistory(c *gin.Context) {
	history, err := h.assessmentService.HistoryByStudent(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assessments": history})
}
