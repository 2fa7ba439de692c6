package handler

import (
	"fmt"
	"net/http"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// GetTrip handles GET /trip.
func (s *Server) GetTrip(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Trip())
}

// UpdateTrip handles PUT /trip. The whole trip entry is replaced.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.TripInfo
	if !decodeBody(w, r, &trip) {
		return
	}
	s.engine.SetTrip(trip)
	writeJSON(w, http.StatusOK, s.engine.Trip())
}

// PlanRoute handles POST /route. An empty body plans the stored trip entry;
// a body replaces it, but only once the planner succeeds.
func (s *Server) PlanRoute(w http.ResponseWriter, r *http.Request) {
	trip := s.engine.Trip()
	if r.ContentLength != 0 {
		if !decodeBody(w, r, &trip) {
			return
		}
	}

	plan, err := s.routes.Plan(r.Context(), trip)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// GetNextStop handles GET /next-stop.
func (s *Server) GetNextStop(w http.ResponseWriter, _ *http.Request) {
	if _, ok := s.engine.Route(); !ok {
		writeError(w, http.StatusNotFound, "not_found", "no route planned")
		return
	}
	stop, ok := s.engine.NextStop()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "every planned stop has been visited")
		return
	}
	writeJSON(w, http.StatusOK, NextStopResponse{Stop: stop})
}

// RecordArrival handles POST /arrivals: a status change at a planned stop,
// referenced by its index in the route.
func (s *Server) RecordArrival(w http.ResponseWriter, r *http.Request) {
	var req ArrivalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StopIndex == nil {
		s.writeDomainError(w, r, fmt.Errorf("%w: stop_index is required", domain.ErrValidation))
		return
	}
	status := domain.OnDuty
	if req.Status != "" {
		var err error
		if status, err = domain.ParseDutyStatus(req.Status); err != nil {
			s.writeDomainError(w, r, err)
			return
		}
	}

	event, err := s.engine.RecordArrival(status, *req.StopIndex)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}
