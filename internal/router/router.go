package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/salaleitura/leitura-backend/internal/config"
	"github.com/salaleitura/leitura-backend/internal/handler"
	"github.com/salaleitura/leitura-backend/internal/middleware"
	"github.com/salaleitura/leitura-backend/internal/response"
	"github.com/salaleitura/leitura-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Class      *handler.ClassHandler
	Student    *handler.StudentHandler
	Assessment *handler.AssessmentHandler
	Dashboard  *handler.DashboardHandler
	Navigation *handler.NavigationHandler
	Report     *handler.ReportHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", middleware.RequireTeacherJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. Teacher Group (JWT) ────────────────────────────────────────
	teacherAPI := router.Group("/api/v1/teacher")
	teacherAPI.Use(middleware.RequireTeacherJWT(authService))
	{
		// Class management
		teacherAPI.GET("/classes", handlers.Class.ListClasses)
		teacherAPI.POST("/classes", handlers.Class.CreateClass)
		teacherAPI.PUT("/classes/:id", handlers.Class.UpdateClass)
		teacherAPI.DELETE("/classes/:id", handlers.Class.DeleteClass)

		// Student management
		teacherAPI.GET("/students", handlers.Student.ListStudents)
		teacherAPI.POST("/students", handlers.Student.CreateStudent)
		teacherAPI.PUT("/students/:id", handlers.Student.UpdateStudent)
		teacherAPI.DELETE("/students/:id", handlers.Student.DeleteStudent)

		// Assessments (immutable once created)
		teacherAPI.POST("/assessments", handlers.Assessment.CreateAssessment)
		teacherAPI.GET("/students/:id/assessments", handlers.Assessment.StudentHistory)

		// Dashboard
		teacherAPI.GET("/dashboard", handlers.Dashboard.GetDashboardData)

		// View navigation
		teacherAPI.GET("/ui/state", handlers.Navigation.CurrentView)
		teacherAPI.POST("/ui/navigate", handlers.Navigation.Navigate)

		// AI generation
		teacherAPI.POST("/students/:id/report", handlers.Report.GenerateReport)
		teacherAPI.POST("/materials", handlers.Report.GenerateMaterial)
	}

	// ─── 3. WebSocket Group (token query auth) ─────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireTeacherJWT(authService))
	{
		ws.GET("/dashboard/stream", handlers.WS.DashboardStream)
	}

	return router
}
