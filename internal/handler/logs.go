package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// FinalizeDay handles POST /finalize. A store failure still finalizes the
// day; the response reports outcome "local_only" with the store error.
func (s *Server) FinalizeDay(w http.ResponseWriter, r *http.Request) {
	result := s.engine.Finalize(r.Context())

	resp := FinalizeResponse{Outcome: result.Outcome, Log: result.Log}
	if result.StoreErr != nil {
		resp.StoreError = result.StoreErr.Error()
	}
	writeJSON(w, http.StatusCreated, resp)
}

// ListLogs handles GET /logs.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100) and an
// optional ?date=YYYY-MM-DD filter.
func (s *Server) ListLogs(w http.ResponseWriter, r *http.Request) {
	var (
		page, limit *int
		date        *openapi_types.Date
	)
	query := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &page); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &limit); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "date", query, &date); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	params := domain.NewPaginationParams(page, limit)

	var (
		logs  []domain.DailyLog
		total int
	)
	if date == nil {
		logs, total = s.engine.LogsPage(params)
	} else {
		logs, total = filterByDate(s.engine.Logs(), date.String(), params)
	}
	if logs == nil {
		logs = []domain.DailyLog{}
	}

	writeJSON(w, http.StatusOK, LogListResponse{
		Data:       logs,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// ListUnsyncedLogs handles GET /logs/unsynced: logs kept locally because the
// store rejected them.
func (s *Server) ListUnsyncedLogs(w http.ResponseWriter, _ *http.Request) {
	logs := s.engine.Unsynced()
	if logs == nil {
		logs = []domain.DailyLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

// GetLog handles GET /logs/{id}.
func (s *Server) GetLog(w http.ResponseWriter, r *http.Request) {
	l, ok := s.lookupLog(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// GetLogGrid handles GET /logs/{id}/grid: the 24-hour grid of a finalized
// log, rebuilt from its stored segments.
func (s *Server) GetLogGrid(w http.ResponseWriter, r *http.Request) {
	l, ok := s.lookupLog(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, logGrid(l))
}

// lookupLog resolves the {id} path parameter. On failure it has already
// written the error response.
func (s *Server) lookupLog(w http.ResponseWriter, r *http.Request) (domain.DailyLog, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "id must be a UUID")
		return domain.DailyLog{}, false
	}
	l, err := s.engine.Log(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, r, err)
		return domain.DailyLog{}, false
	}
	return l, true
}

func filterByDate(all []domain.DailyLog, date string, p domain.PaginationParams) ([]domain.DailyLog, int) {
	var matched []domain.DailyLog
	for _, l := range all {
		if l.Date == date {
			matched = append(matched, l)
		}
	}
	start, end := p.Window(len(matched))
	return matched[start:end], len(matched)
}
