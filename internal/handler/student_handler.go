package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salaleitura/leitura-backend/internal/analytics"
	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/salaleitura/leitura-backend/internal/response"
	"github.com/salaleitura/leitura-backend/internal/service"
	"github.com/salaleitura/leitura-backend/internal/store"
	"github.com/salaleitura/leitura-backend/internal/validator"
)

// StudentHandler handles student management (CRUD plus filtered listing).
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// ListStudents godoc
// GET /api/v1/teacher/students?class_id=&search=
// Lists students filtered by class ("all" or empty means every class) and
// case-insensitive name search, together with the scope's statistics and
// the matching assessments.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	filter := analytics.Filter{
		ClassID: c.Query("class_id"),
		Search:  c.Query("search"),
	}

	overview := h.studentService.ListFiltered(filter)
	response.Success(c, http.StatusOK, overview)
}

// CreateStudent godoc
// POST /api/v1/teacher/students
// Creates a new student.
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := &model.Student{
		Name:         req.Name,
		ClassID:      req.ClassID,
		ReadingLevel: req.ReadingLevel,
		AvatarURL:    req.AvatarURL,
	}

	if err := h.studentService.Create(student); err != nil {
		if errors.Is(err, store.ErrClassNotFound) {
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrClassNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// UpdateStudent godoc
// PUT /api/v1/teacher/students/:id
// Replaces a student by ID.
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := &model.Student{
		ID:           c.Param("id"),
		Name:         req.Name,
		ClassID:      req.ClassID,
		ReadingLevel: req.ReadingLevel,
		AvatarURL:    req.AvatarURL,
	}

	if err := h.studentService.Update(student); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, store.ErrClassNotFound):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrClassNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// DeleteStudent godoc
// DELETE /api/v1/teacher/students/:id
// Deletes a student. Assessment history is kept.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.studentService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "aluno removido com sucesso"})
}
