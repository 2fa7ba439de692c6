// Package handler implements the HTTP API of the ELD logbook.
// All handlers are methods on Server and are split into files by resource.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/eld-logbook/internal/domain"
	"github.com/pkordes/eld-logbook/internal/hos"
)

// Engine is the driver-session behaviour the handlers depend on.
// *hos.Engine satisfies it.
type Engine interface {
	Record(status domain.DutyStatus, location string) domain.StatusEvent
	RecordArrival(status domain.DutyStatus, stopIndex int) (domain.StatusEvent, error)
	SetLocation(location string)
	SetTrip(trip domain.TripInfo)
	Trip() domain.TripInfo
	Route() (domain.RoutePlan, bool)
	NextStop() (domain.PlannedStop, bool)
	Snapshot() hos.Day
	Logs() []domain.DailyLog
	LogsPage(p domain.PaginationParams) ([]domain.DailyLog, int)
	Unsynced() []domain.DailyLog
	Log(ctx context.Context, id uuid.UUID) (domain.DailyLog, error)
	Finalize(ctx context.Context) hos.FinalizeResult
}

// RoutePlanner validates a trip and plans its route.
type RoutePlanner interface {
	Plan(ctx context.Context, trip domain.TripInfo) (domain.RoutePlan, error)
}

// Exporter builds downloadable log bundles.
type Exporter interface {
	Export(ctx context.Context, format domain.ExportFormat) (domain.ExportDocument, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	engine  Engine
	routes  RoutePlanner
	exports Exporter
	openAPI []byte
	logger  *slog.Logger
}

// NewServer constructs the Server. openAPI is served verbatim at /openapi.yaml.
func NewServer(engine Engine, routes RoutePlanner, exports Exporter, openAPI []byte, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: engine, routes: routes, exports: exports, openAPI: openAPI, logger: logger}
}

// Routes returns a chi router with every API endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get("/status", s.GetStatus)
	r.Post("/status", s.RecordStatus)
	r.Put("/location", s.SetLocation)

	r.Get("/day", s.GetDay)
	r.Get("/day/grid", s.GetDayGrid)

	r.Get("/trip", s.GetTrip)
	r.Put("/trip", s.UpdateTrip)
	r.Post("/route", s.PlanRoute)
	r.Get("/next-stop", s.GetNextStop)
	r.Post("/arrivals", s.RecordArrival)

	r.Post("/finalize", s.FinalizeDay)
	r.Get("/logs", s.ListLogs)
	r.Get("/logs/unsynced", s.ListUnsyncedLogs)
	r.Get("/logs/{id}", s.GetLog)
	r.Get("/logs/{id}/grid", s.GetLogGrid)
	r.Get("/export", s.GetExport)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such endpoint")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" is not allowed here")
	})
	return r
}
