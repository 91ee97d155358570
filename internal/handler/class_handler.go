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

// ClassHandler handles class management (CRUD).
type ClassHandler struct {
	classService *service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// ListClasses godoc
// GET /api/v1/teacher/classes
// Lists all classes with their student counts.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"classes": h.classService.List()})
}

// CreateClass godoc
// POST /api/v1/teacher/classes
// Creates a new class.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req model.CreateClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class := &model.SchoolClass{
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
	}
	h.classService.Create(class)

	response.Success(c, http.StatusCreated, gin.H{"class": class})
}

// UpdateClass godoc
// PUT /api/v1/teacher/classes/:id
// Replaces an existing class by ID.
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	var req model.CreateClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class := &model.SchoolClass{
		ID:         c.Param("id"),
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
	}

	if err := h.classService.Update(class); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class": class})
}

// DeleteClass godoc
// DELETE /api/v1/teacher/classes/:id
// Deletes a class. Its students become unassigned, not deleted.
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	if err := h.classService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "turma removida com sucesso"})
}
