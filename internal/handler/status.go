package handler

import (
	"net/http"
	"strings"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// GetStatus handles GET /status.
func (s *Server) GetStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusToResponse(s.engine.Snapshot()))
}

// RecordStatus handles POST /status.
// The status is one of the codes off, sleeper, driving, on.
func (s *Server) RecordStatus(w http.ResponseWriter, r *http.Request) {
	var req RecordStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	status, err := domain.ParseDutyStatus(req.Status)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	event := s.engine.Record(status, strings.TrimSpace(req.Location))
	writeJSON(w, http.StatusCreated, event)
}

// SetLocation handles PUT /location.
func (s *Server) SetLocation(w http.ResponseWriter, r *http.Request) {
	var req SetLocationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.engine.SetLocation(strings.TrimSpace(req.Location))
	writeJSON(w, http.StatusOK, statusToResponse(s.engine.Snapshot()))
}
