package domain

import "time"

// Segment is a closed interval during which the duty status did not change.
//
// DurationHours is the exact elapsed time. StartHour and EndHour are the same
// interval as local wall-clock positions in [0,24), built from hour and minute
// only. The two are computed independently and may disagree slightly; a
// segment that crosses midnight has EndHour < StartHour.
type Segment struct {
	Status        DutyStatus
	StartTime     time.Time
	EndTime       time.Time
	DurationHours float64
	StartHour     float64
	EndHour       float64
	Location      string
}
