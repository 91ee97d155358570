package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/salaleitura/leitura-backend/internal/ai"
	"github.com/salaleitura/leitura-backend/internal/config"
	"github.com/salaleitura/leitura-backend/internal/handler"
	"github.com/salaleitura/leitura-backend/internal/logger"
	"github.com/salaleitura/leitura-backend/internal/navigation"
	"github.com/salaleitura/leitura-backend/internal/realtime"
	"github.com/salaleitura/leitura-backend/internal/report"
	"github.com/salaleitura/leitura-backend/internal/router"
	"github.com/salaleitura/leitura-backend/internal/service"
	"github.com/salaleitura/leitura-backend/internal/store"
	"github.com/salaleitura/leitura-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Leitura Backend")

	if cfg.TeacherPasswordHash == "" {
		log.Warn().Msg("TEACHER_PASSWORD_HASH is not set; login is disabled (generate one with cmd/hash-password)")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Domain Store (in-memory, process lifetime) ────────────────────
	dataStore := store.New()
	hub := realtime.NewHub()

	// ─── AI Generator (optional) ───────────────────────────────────────
	var generator report.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiGenerator(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Gemini generator")
		}
		generator = gemini
	} else {
		log.Warn().Msg("GEMINI_API_KEY is not set; AI generation endpoints are disabled")
	}

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	classService := service.NewClassService(dataStore, hub)
	studentService := service.NewStudentService(dataStore, hub)
	assessmentService := service.NewAssessmentService(dataStore, hub)
	dashboardService := service.NewDashboardService(dataStore, classService, assessmentService)
	reportService := service.NewReportService(dataStore, generator)

	navController := navigation.New(func(id string) bool {
		_, ok := dataStore.GetStudent(id)
		return ok
	})

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Class:      handler.NewClassHandler(classService),
		Student:    handler.NewStudentHandler(studentService),
		Assessment: handler.NewAssessmentHandler(assessmentService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Navigation: handler.NewNavigationHandler(navController, dashboardService),
		Report:     handler.NewReportHandler(reportService),
		WS:         handler.NewWSHandler(hub, dashboardService, log, cfg.AllowedOrigins),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// Stop accepting new HTTP requests (5s timeout), then drop the
	// dashboard streams. Domain data lives in memory only and dies with
	// the process; there is nothing to flush.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	hub.Close()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
