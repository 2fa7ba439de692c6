// Package hos is the duty-status log engine: it turns a stream of status
// changes into segments, totals, a compliance verdict and an hourly grid, and
// closes out a day into a DailyLog.
package hos

import (
	"time"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// MinSegmentHours is the shortest interval kept as a segment (about 36s).
// Anything at or below it is a no-op transition and is dropped.
const MinSegmentHours = 0.01

// CloseSegment builds the segment for status over [start, end).
// It returns false when the interval is too short to keep.
//
// DurationHours comes from the exact elapsed time; StartHour and EndHour come
// from the wall clock in loc. The two are never reconciled.
func CloseSegment(status domain.DutyStatus, start, end time.Time, loc *time.Location, location string) (domain.Segment, bool) {
	hours := end.Sub(start).Hours()
	if hours <= MinSegmentHours {
		return domain.Segment{}, false
	}
	return domain.Segment{
		Status:        status,
		StartTime:     start,
		EndTime:       end,
		DurationHours: hours,
		StartHour:     HourOfDay(start, loc),
		EndHour:       HourOfDay(end, loc),
		Location:      location,
	}, true
}

// HourOfDay returns t as a fractional hour in [0,24): hour + minute/60.
// Seconds are ignored.
func HourOfDay(t time.Time, loc *time.Location) float64 {
	if loc != nil {
		t = t.In(loc)
	}
	return float64(t.Hour()) + float64(t.Minute())/60
}
