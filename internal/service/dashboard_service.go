package service

import (
	"github.com/salaleitura/leitura-backend/internal/analytics"
	"github.com/salaleitura/leitura-backend/internal/model"
	"github.com/salaleitura/leitura-backend/internal/navigation"
	"github.com/salaleitura/leitura-backend/internal/store"
)

// DashboardData consolidates every derived view the dashboard renders:
// filtered collections, aggregate statistics, the per-day fluency series
// and the reading-level distribution. It is recomputed from a fresh
// snapshot on every call; nothing is cached.
type DashboardData struct {
	Students     []model.Student         `json:"students"`
	Stats        analytics.Stats         `json:"stats"`
	TimeSeries   []analytics.SeriesPoint `json:"time_series"`
	Distribution []analytics.LevelCount  `json:"distribution"`
}

// ResolvedView pairs a navigation state with the data that view needs.
type ResolvedView struct {
	State navigation.State `json:"state"`
	Data  interface{}      `json:"data"`
}

// DashboardService computes derived dashboard data and resolves navigation
// states into view payloads.
type DashboardService struct {
	store       *store.Store
	classes     *ClassService
	assessments *AssessmentService
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(st *store.Store, classes *ClassService, assessments *AssessmentService) *DashboardService {
	return &DashboardService{store: st, classes: classes, assessments: assessments}
}

// GetDashboardData computes the full dashboard payload for a filter.
func (s *DashboardService) GetDashboardData(filter analytics.Filter) DashboardData {
	overview := analytics.ComputeOverview(s.store.Snapshot(), filter)
	return DashboardData{
		Students:     overview.Students,
		Stats:        overview.Stats,
		TimeSeries:   analytics.FluencySeries(overview.Assessments),
		Distribution: analytics.ReadingLevelDistribution(overview.Students),
	}
}

// ResolveView returns the data payload belonging to a navigation state.
// The caller has already run the transition through the controller, so
// states arriving here are valid; a StudentHistory state always carries a
// student that existed at transition time.
func (s *DashboardService) ResolveView(state navigation.State) ResolvedView {
	switch state.View {
	case navigation.ViewClassList:
		return ResolvedView{State: state, Data: map[string]interface{}{"classes": s.classes.List()}}

	case navigation.ViewStudentList:
		overview := analytics.ComputeOverview(s.store.Snapshot(), analytics.Filter{ClassID: state.ClassFilter})
		return ResolvedView{State: state, Data: overview}

	case navigation.ViewStudentHistory:
		student, ok := s.store.GetStudent(state.StudentID)
		if !ok {
			// Deleted between transition and resolution: same fallback
			// the controller applies at entry.
			return s.ResolveView(navigation.State{View: navigation.ViewDashboard})
		}
		history := s.store.AssessmentsByStudent(state.StudentID)
		return ResolvedView{State: state, Data: map[string]interface{}{
			"student":     student,
			"assessments": history,
		}}

	case navigation.ViewAssessmentForm:
		overview := analytics.ComputeOverview(s.store.Snapshot(), analytics.Filter{})
		return ResolvedView{State: state, Data: map[string]interface{}{"students": overview.Students}}

	default:
		return ResolvedView{State: state, Data: s.GetDashboardData(analytics.Filter{})}
	}
}
