package domain

// ExportFormat identifies the encoding of an exported log bundle.
type ExportFormat string

const (
	ExportPDF  ExportFormat = "pdf"
	ExportJSON ExportFormat = "json"
)

// ExportDocument is a downloadable bundle of daily logs.
// Fallback is true when the export service failed and the logs were
// serialized locally as JSON instead.
type ExportDocument struct {
	Filename    string
	ContentType string
	Format      ExportFormat
	Body        []byte
	Fallback    bool
}
