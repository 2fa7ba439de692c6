package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the format of DailyLog.Date.
const DateLayout = "2006-01-02"

// Summary holds per-category hour totals for one day, each rounded to two
// decimals on its own.
type Summary struct {
	OffDuty      float64 `json:"offDuty"`
	SleeperBerth float64 `json:"sleeper"`
	Driving      float64 `json:"driving"`
	OnDuty       float64 `json:"onDuty"`
}

// Hours returns the total for status s.
func (s Summary) Hours(status DutyStatus) float64 {
	switch status {
	case OffDuty:
		return s.OffDuty
	case SleeperBerth:
		return s.SleeperBerth
	case Driving:
		return s.Driving
	case OnDuty:
		return s.OnDuty
	}
	return 0
}

// SegmentRecord is the persisted form of a Segment.
// Status is the ordinal, matching the grid row index.
type SegmentRecord struct {
	Status        int       `json:"status"`
	StartHour     float64   `json:"start"`
	EndHour       float64   `json:"end"`
	DurationHours float64   `json:"duration"`
	Location      string    `json:"location"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
}

// Segment converts the record back into a Segment.
func (r SegmentRecord) Segment() Segment {
	return Segment{
		Status:        DutyStatus(r.Status),
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		DurationHours: r.DurationHours,
		StartHour:     r.StartHour,
		EndHour:       r.EndHour,
		Location:      r.Location,
	}
}

// NewSegmentRecord converts a Segment into its persisted form.
func NewSegmentRecord(s Segment) SegmentRecord {
	return SegmentRecord{
		Status:        int(s.Status),
		StartHour:     s.StartHour,
		EndHour:       s.EndHour,
		DurationHours: s.DurationHours,
		Location:      s.Location,
		StartTime:     s.StartTime.UTC(),
		EndTime:       s.EndTime.UTC(),
	}
}

// DailyLog is the finalized record for one driving day.
// It is immutable once assembled.
type DailyLog struct {
	ID            uuid.UUID       `json:"id"`
	Date          string          `json:"date"` // DateLayout
	Segments      []SegmentRecord `json:"segments"`
	Summary       Summary         `json:"summary"`
	Trip          TripInfo        `json:"tripData"`
	StatusHistory []StatusEvent   `json:"statusHistory"`
	FinalizedAt   time.Time       `json:"finalizedAt"`
	TotalMiles    int             `json:"totalMiles"`
	Remarks       string          `json:"remarks"`
}
