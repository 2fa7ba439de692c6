package handler

import "net/http"

// GetDay handles GET /day.
// Totals, compliance and segments cover closed segments only; the open
// status is reported under "current".
func (s *Server) GetDay(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dayToResponse(s.engine.Snapshot()))
}

// GetDayGrid handles GET /day/grid.
func (s *Server) GetDayGrid(w http.ResponseWriter, _ *http.Request) {
	d := s.engine.Snapshot()
	writeJSON(w, http.StatusOK, gridToResponse(d.Date, d.Grid, d.Summary))
}
