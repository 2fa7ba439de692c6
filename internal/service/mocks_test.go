package service_test

import (
	"context"
	"time"

	"github.com/pkordes/eld-logbook/internal/domain"
	"github.com/pkordes/eld-logbook/internal/service"
)

// mockPlanner is a hand-written test double for service.RoutePlanner.
type mockPlanner struct {
	plan func(ctx context.Context, req domain.RouteRequest) (domain.RoutePlan, error)
}

func (m *mockPlanner) Plan(ctx context.Context, req domain.RouteRequest) (domain.RoutePlan, error) {
	return m.plan(ctx, req)
}

var _ service.RoutePlanner = (*mockPlanner)(nil)

// stateSpy records what the route service stores.
type stateSpy struct {
	trips  []domain.TripInfo
	routes []domain.RoutePlan
}

func (s *stateSpy) SetTrip(trip domain.TripInfo)   { s.trips = append(s.trips, trip) }
func (s *stateSpy) SetRoute(plan domain.RoutePlan) { s.routes = append(s.routes, plan) }

var _ service.TripState = (*stateSpy)(nil)

type mockExporter struct {
	exportPDF func(ctx context.Context, logs []domain.DailyLog) ([]byte, string, error)
}

func (m *mockExporter) ExportPDF(ctx context.Context, logs []domain.DailyLog) ([]byte, string, error) {
	return m.exportPDF(ctx, logs)
}

var _ service.PDFExporter = (*mockExporter)(nil)

type staticLogs []domain.DailyLog

func (s staticLogs) Logs() []domain.DailyLog { return s }

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }
