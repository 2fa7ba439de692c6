package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// maxExportBytes caps the size of a downloaded export document.
const maxExportBytes = 32 << 20

// Exporter calls the external export service that renders daily logs as PDF.
type Exporter struct {
	client
}

// NewExporter returns an export client for the service at baseURL.
func NewExporter(baseURL string, session *http.Client) *Exporter {
	return &Exporter{client: newClient(baseURL, session)}
}

// ExportPDF sends logs to the export service and returns the rendered
// document bytes and their content type.
func (x *Exporter) ExportPDF(ctx context.Context, logs []domain.DailyLog) ([]byte, string, error) {
	if logs == nil {
		logs = []domain.DailyLog{}
	}
	req, err := x.newRequest(ctx, http.MethodPost, "/api/download-logs-pdf/", map[string]any{"logs": logs})
	if err != nil {
		return nil, "", fmt.Errorf("remote.Exporter.ExportPDF: %w", err)
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := x.do(req)
	if err != nil {
		return nil, "", fmt.Errorf("remote.Exporter.ExportPDF: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxExportBytes))
	if err != nil {
		return nil, "", fmt.Errorf("remote.Exporter.ExportPDF: %w: read body: %w", domain.ErrUpstream, err)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	return body, contentType, nil
}
