package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// DailyLogSaver is the write half of a daily log store.
// hos.LogStore and repo.DailyLogRepo both satisfy it.
type DailyLogSaver interface {
	Save(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error)
}

// NewDailyLog returns a finalized log for a shift starting at start:
// 3.5h driving from Austin, then 0.5h on duty in Dallas. The ID is fresh
// on every call. Hour positions assume start is in UTC.
func NewDailyLog(start time.Time) domain.DailyLog {
	start = start.UTC()
	mid := start.Add(3*time.Hour + 30*time.Minute)
	end := mid.Add(30 * time.Minute)
	startHour := float64(start.Hour()) + float64(start.Minute())/60
	off := domain.OffDuty
	driving := domain.Driving

	return domain.DailyLog{
		ID:   uuid.New(),
		Date: start.Format(domain.DateLayout),
		Segments: []domain.SegmentRecord{
			{Status: int(domain.Driving), StartHour: startHour, EndHour: startHour + 3.5, DurationHours: 3.5, Location: "Austin, TX", StartTime: start, EndTime: mid},
			{Status: int(domain.OnDuty), StartHour: startHour + 3.5, EndHour: startHour + 4, DurationHours: 0.5, Location: "Dallas, TX", StartTime: mid, EndTime: end},
		},
		Summary: domain.Summary{Driving: 3.5, OnDuty: 0.5},
		Trip: domain.TripInfo{
			DriverName:      "Jo Rivera",
			CurrentLocation: "Austin, TX",
			PickupLocation:  "Dallas, TX",
		},
		StatusHistory: []domain.StatusEvent{
			{Time: start, Status: domain.OffDuty, Location: "Starting shift", Source: domain.SourceAuto},
			{Time: start, Status: domain.Driving, Location: "Austin, TX", Source: domain.SourceManual, PreviousStatus: &off},
			{Time: mid, Status: domain.OnDuty, Location: "Dallas, TX", Source: domain.SourceManual, PreviousStatus: &driving, DurationHours: 3.5},
		},
		FinalizedAt: end,
		TotalMiles:  193,
		Remarks:     "Drove 3.5h. Locations: Austin, TX, Dallas, TX. Pickup at Dallas, TX.",
	}
}

// SeedDailyLogs saves logs through store in order and returns the stored
// records. Any save error fails the test immediately.
func SeedDailyLogs(t *testing.T, store DailyLogSaver, logs ...domain.DailyLog) []domain.DailyLog {
	t.Helper()

	saved := make([]domain.DailyLog, 0, len(logs))
	for _, l := range logs {
		s, err := store.Save(context.Background(), l)
		if err != nil {
			t.Fatalf("testutil.SeedDailyLogs: save %s: %v", l.Date, err)
		}
		saved = append(saved, s)
	}
	return saved
}
