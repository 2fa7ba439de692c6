package handler

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/eld-logbook/internal/domain"
	"github.com/pkordes/eld-logbook/internal/hos"
)

// StatusResponse describes the active duty status.
type StatusResponse struct {
	Status         domain.DutyStatus `json:"status"`
	StatusName     string            `json:"status_name"`
	Location       string            `json:"location"`
	OpenSince      time.Time         `json:"open_since"`
	OpenFor        string            `json:"open_for"`
	OpenForSeconds int64             `json:"open_for_seconds"`
}

// RecordStatusRequest is the body of POST /status.
type RecordStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
}

// SetLocationRequest is the body of PUT /location.
type SetLocationRequest struct {
	Location string `json:"location"`
}

// ArrivalRequest is the body of POST /arrivals.
type ArrivalRequest struct {
	StopIndex *int   `json:"stop_index"`
	Status    string `json:"status"`
}

// SegmentResponse is one closed segment of the open day.
type SegmentResponse struct {
	Status        domain.DutyStatus `json:"status"`
	StartTime     time.Time         `json:"start_time"`
	EndTime       time.Time         `json:"end_time"`
	DurationHours float64           `json:"duration_hours"`
	StartHour     float64           `json:"start_hour"`
	EndHour       float64           `json:"end_hour"`
	Location      string            `json:"location"`
}

// DayResponse is the body of GET /day.
type DayResponse struct {
	Date            openapi_types.Date   `json:"date"`
	Status          StatusResponse       `json:"current"`
	Events          []domain.StatusEvent `json:"events"`
	Segments        []SegmentResponse    `json:"segments"`
	Summary         domain.Summary       `json:"summary"`
	Compliant       bool                 `json:"compliant"`
	MaxDrivingHours float64              `json:"max_driving_hours"`
	Trip            domain.TripInfo      `json:"trip"`
}

// GridRow is one status row of the 24-hour grid.
// TotalHours is the day's summary total for the row's status.
type GridRow struct {
	Status     domain.DutyStatus          `json:"status"`
	Label      string                     `json:"label"`
	TotalHours float64                    `json:"total_hours"`
	Hours      [hos.HoursPerDay][]hos.Bar `json:"hours"`
}

// GridResponse is the body of GET /day/grid and GET /logs/{id}/grid.
type GridResponse struct {
	Date openapi_types.Date `json:"date"`
	Rows []GridRow          `json:"rows"`
}

// FinalizeResponse is the body of POST /finalize.
type FinalizeResponse struct {
	Outcome    hos.Outcome     `json:"outcome"`
	Log        domain.DailyLog `json:"log"`
	StoreError string          `json:"store_error,omitempty"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// LogListResponse is the body of GET /logs.
type LogListResponse struct {
	Data       []domain.DailyLog `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// NextStopResponse is the body of GET /next-stop.
type NextStopResponse struct {
	Stop domain.PlannedStop `json:"stop"`
}

func statusToResponse(d hos.Day) StatusResponse {
	return StatusResponse{
		Status:         d.Status,
		StatusName:     d.Status.String(),
		Location:       d.Location,
		OpenSince:      d.OpenSince,
		OpenFor:        hos.FormatDuration(d.OpenFor),
		OpenForSeconds: int64(d.OpenFor / time.Second),
	}
}

func segmentToResponse(s domain.Segment) SegmentResponse {
	return SegmentResponse{
		Status:        s.Status,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		DurationHours: s.DurationHours,
		StartHour:     s.StartHour,
		EndHour:       s.EndHour,
		Location:      s.Location,
	}
}

func dayToResponse(d hos.Day) DayResponse {
	segments := make([]SegmentResponse, len(d.Segments))
	for i, s := range d.Segments {
		segments[i] = segmentToResponse(s)
	}
	return DayResponse{
		Date:            parseDate(d.Date),
		Status:          statusToResponse(d),
		Events:          d.Events,
		Segments:        segments,
		Summary:         d.Summary,
		Compliant:       d.Compliant,
		MaxDrivingHours: d.MaxDrivingHours,
		Trip:            d.Trip,
	}
}

func gridToResponse(date string, grid hos.Grid, summary domain.Summary) GridResponse {
	rows := make([]GridRow, 0, len(domain.DutyStatuses))
	for _, st := range domain.DutyStatuses {
		row := GridRow{Status: st, Label: st.String(), TotalHours: summary.Hours(st)}
		for h := range hos.HoursPerDay {
			row.Hours[h] = grid.Cell(st, h)
			if row.Hours[h] == nil {
				row.Hours[h] = []hos.Bar{}
			}
		}
		rows = append(rows, row)
	}
	return GridResponse{Date: parseDate(date), Rows: rows}
}

// logGrid rebuilds the grid of a finalized log from its stored segments.
func logGrid(l domain.DailyLog) GridResponse {
	segments := make([]domain.Segment, len(l.Segments))
	for i, r := range l.Segments {
		segments[i] = r.Segment()
	}
	return gridToResponse(l.Date, hos.Project(segments), l.Summary)
}

// parseDate converts a domain.DateLayout string into an openapi_types.Date.
// Malformed input yields the zero date.
func parseDate(s string) openapi_types.Date {
	t, _ := time.Parse(domain.DateLayout, s)
	return openapi_types.Date{Time: t}
}
