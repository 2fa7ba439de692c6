package domain

import "time"

// EventSource tells whether an event was produced by the engine itself or by
// a driver action.
type EventSource string

const (
	// SourceAuto marks the sentinel event that opens every day.
	SourceAuto EventSource = "auto"
	// SourceManual marks every driver-initiated status change.
	SourceManual EventSource = "manual"
)

// StatusEvent is one recorded duty-status transition.
// PreviousStatus is nil only for the first event of a day.
// StopIndex is set when the driver logged arrival at a planned stop explicitly.
type StatusEvent struct {
	Time           time.Time   `json:"time"`
	Status         DutyStatus  `json:"status"`
	Location       string      `json:"location"`
	Source         EventSource `json:"type"`
	PreviousStatus *DutyStatus `json:"previousStatus,omitempty"`
	DurationHours  float64     `json:"duration"`
	StopIndex      *int        `json:"stopIndex,omitempty"`
}
