package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salaleitura/leitura-backend/internal/analytics"
	"github.com/salaleitura/leitura-backend/internal/response"
	"github.com/salaleitura/leitura-backend/internal/service"
)

// DashboardHandler handles the dashboard endpoint.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboardData godoc
// GET /api/v1/teacher/dashboard?class_id=&search=
// Returns the filtered stat cards, fluency time series and reading-level
// distribution, recomputed from the current store snapshot.
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	filter := analytics.Filter{
		ClassID: c.Query("class_id"),
		Search:  c.Query("search"),
	}

	response.Success(c, http.StatusOK, h.dashboardService.GetDashboardData(filter))
}
