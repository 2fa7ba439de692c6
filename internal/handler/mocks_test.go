package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/eld-logbook/internal/domain"
	"github.com/pkordes/eld-logbook/internal/handler"
	"github.com/pkordes/eld-logbook/internal/hos"
)

// mockEngine is a hand-written test double for handler.Engine.
// Set only the function fields a test needs.
type mockEngine struct {
	record        func(status domain.DutyStatus, location string) domain.StatusEvent
	recordArrival func(status domain.DutyStatus, stopIndex int) (domain.StatusEvent, error)
	setLocation   func(location string)
	setTrip       func(trip domain.TripInfo)
	trip          func() domain.TripInfo
	route         func() (domain.RoutePlan, bool)
	nextStop      func() (domain.PlannedStop, bool)
	snapshot      func() hos.Day
	logs          func() []domain.DailyLog
	logsPage      func(p domain.PaginationParams) ([]domain.DailyLog, int)
	unsynced      func() []domain.DailyLog
	log           func(ctx context.Context, id uuid.UUID) (domain.DailyLog, error)
	finalize      func(ctx context.Context) hos.FinalizeResult
}

func (m *mockEngine) Record(status domain.DutyStatus, location string) domain.StatusEvent {
	return m.record(status, location)
}
func (m *mockEngine) RecordArrival(status domain.DutyStatus, stopIndex int) (domain.StatusEvent, error) {
	return m.recordArrival(status, stopIndex)
}
func (m *mockEngine) SetLocation(location string) {
	m.setLocation(location)
}
func (m *mockEngine) SetTrip(trip domain.TripInfo) {
	m.setTrip(trip)
}
func (m *mockEngine) Trip() domain.TripInfo {
	return m.trip()
}
func (m *mockEngine) Route() (domain.RoutePlan, bool) {
	return m.route()
}
func (m *mockEngine) NextStop() (domain.PlannedStop, bool) {
	return m.nextStop()
}
func (m *mockEngine) Snapshot() hos.Day {
	return m.snapshot()
}
func (m *mockEngine) Logs() []domain.DailyLog {
	return m.logs()
}
func (m *mockEngine) LogsPage(p domain.PaginationParams) ([]domain.DailyLog, int) {
	return m.logsPage(p)
}
func (m *mockEngine) Unsynced() []domain.DailyLog {
	return m.unsynced()
}
func (m *mockEngine) Log(ctx context.Context, id uuid.UUID) (domain.DailyLog, error) {
	return m.log(ctx, id)
}
func (m *mockEngine) Finalize(ctx context.Context) hos.FinalizeResult {
	return m.finalize(ctx)
}

// compile-time checks: the mock and the real engine satisfy handler.Engine.
var (
	_ handler.Engine = (*mockEngine)(nil)
	_ handler.Engine = (*hos.Engine)(nil)
)

type mockRoutePlanner struct {
	plan func(ctx context.Context, trip domain.TripInfo) (domain.RoutePlan, error)
}

func (m *mockRoutePlanner) Plan(ctx context.Context, trip domain.TripInfo) (domain.RoutePlan, error) {
	return m.plan(ctx, trip)
}

var _ handler.RoutePlanner = (*mockRoutePlanner)(nil)

type mockExporter struct {
	export func(ctx context.Context, format domain.ExportFormat) (domain.ExportDocument, error)
}

func (m *mockExporter) Export(ctx context.Context, format domain.ExportFormat) (domain.ExportDocument, error) {
	return m.export(ctx, format)
}

var _ handler.Exporter = (*mockExporter)(nil)

// newTestHandler wires a Server around the given doubles. Nil doubles are
// fine for tests that never reach them.
func newTestHandler(engine handler.Engine, routes handler.RoutePlanner, exports handler.Exporter) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(engine, routes, exports, []byte("openapi: 3.0.3\n"), logger).Routes()
}
