package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// GetExport handles GET /export?format=pdf|json (default pdf).
// When the export service fails the JSON fallback is returned with
// X-Export-Fallback: true.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	want := domain.ExportPDF
	if format != nil {
		want = domain.ExportFormat(*format)
	}

	doc, err := s.exports.Export(r.Context(), want)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	if doc.Fallback {
		w.Header().Set("X-Export-Fallback", "true")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Body)
}
