package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salaleitura/leitura-backend/internal/navigation"
	"github.com/salaleitura/leitura-backend/internal/response"
	"github.com/salaleitura/leitura-backend/internal/service"
	"github.com/salaleitura/leitura-backend/internal/validator"
)

// NavigationHandler runs view transitions through the navigation
// controller and returns the resolved view with its data payload.
type NavigationHandler struct {
	controller       *navigation.Controller
	dashboardService *service.DashboardService
}

// NewNavigationHandler creates a new NavigationHandler.
func NewNavigationHandler(controller *navigation.Controller, dashboardService *service.DashboardService) *NavigationHandler {
	return &NavigationHandler{controller: controller, dashboardService: dashboardService}
}

// NavigateRequest is a single navigation event.
//   - action "menu":            primary-menu navigation to View
//   - action "class_students":  open StudentList filtered to ClassID
//   - action "student_history": open a student's history
type NavigateRequest struct {
	Action    string          `json:"action" binding:"required,oneof=menu class_students student_history"`
	View      navigation.View `json:"view" binding:"required_if=Action menu"`
	ClassID   string          `json:"class_id" binding:"required_if=Action class_students"`
	StudentID string          `json:"student_id" binding:"required_if=Action student_history"`
}

// Navigate godoc
// POST /api/v1/teacher/ui/navigate
// Applies a navigation event and returns the resolved view state plus the
// derived data that view renders.
func (h *NavigationHandler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var state navigation.State
	switch req.Action {
	case "class_students":
		state = h.controller.ViewClassStudents(req.ClassID)
	case "student_history":
		state = h.controller.OpenStudentHistory(req.StudentID)
	default:
		state = h.controller.GoTo(req.View)
	}

	response.Success(c, http.StatusOK, h.dashboardService.ResolveView(state))
}

// CurrentView godoc
// GET /api/v1/teacher/ui/state
// Returns the current view state with its data payload.
func (h *NavigationHandler) CurrentView(c *gin.Context) {
	response.Success(c, http.StatusOK, h.dashboardService.ResolveView(h.controller.State()))
}
