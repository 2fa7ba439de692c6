package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"

	"github.com/pkordes/eld-logbook/internal/domain"
	"github.com/pkordes/eld-logbook/internal/hos"
)

// PDFExporter renders daily logs through the export service.
type PDFExporter interface {
	ExportPDF(ctx context.Context, logs []domain.DailyLog) ([]byte, string, error)
}

// LogSource supplies the finalized logs to export.
type LogSource interface {
	Logs() []domain.DailyLog
}

// ExportService builds downloadable log bundles.
type ExportService struct {
	exporter PDFExporter
	logs     LogSource
	clock    hos.Clock
	loc      *time.Location
	logger   *slog.Logger
}

// NewExportService constructs an ExportService. A nil exporter means every
// PDF request falls back to JSON.
func NewExportService(exporter PDFExporter, logs LogSource, clock hos.Clock, loc *time.Location, logger *slog.Logger) *ExportService {
	if clock == nil {
		clock = hos.SystemClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{exporter: exporter, logs: logs, clock: clock, loc: loc, logger: logger}
}

// Export returns every finalized log in the requested format. A failed PDF
// export is not an error: the logs are serialized locally as indented JSON
// and the document is marked as a fallback.
func (s *ExportService) Export(ctx context.Context, format domain.ExportFormat) (domain.ExportDocument, error) {
	logs := s.logs.Logs()

	switch format {
	case domain.ExportJSON:
		return s.jsonDocument(logs, false)
	case domain.ExportPDF, "":
	default:
		return domain.ExportDocument{}, fmt.Errorf("service.ExportService.Export: %w: unknown format %q", domain.ErrValidation, format)
	}

	if s.exporter == nil {
		s.logger.WarnContext(ctx, "no export service configured, exporting json", "logs", len(logs))
		return s.jsonDocument(logs, true)
	}

	body, contentType, err := s.exporter.ExportPDF(ctx, logs)
	if err != nil {
		s.logger.WarnContext(ctx, "pdf export failed, exporting json", "logs", len(logs), "err", err)
		return s.jsonDocument(logs, true)
	}

	return domain.ExportDocument{
		Filename:    s.filename(domain.ExportPDF),
		ContentType: contentType,
		Format:      domain.ExportPDF,
		Body:        body,
	}, nil
}

func (s *ExportService) jsonDocument(logs []domain.DailyLog, fallback bool) (domain.ExportDocument, error) {
	if logs == nil {
		logs = []domain.DailyLog{}
	}
	body, err := json.MarshalIndent(logs, "", "  ")
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("service.ExportService.Export: encode json: %w", err)
	}
	return domain.ExportDocument{
		Filename:    s.filename(domain.ExportJSON),
		ContentType: "application/json",
		Format:      domain.ExportJSON,
		Body:        body,
		Fallback:    fallback,
	}, nil
}

// filename is eld-logs-YYYY-MM-DD.<ext> for today's local date.
func (s *ExportService) filename(format domain.ExportFormat) string {
	return fmt.Sprintf("eld-logs-%s.%s", s.clock.Now().In(s.loc).Format(domain.DateLayout), format)
}
