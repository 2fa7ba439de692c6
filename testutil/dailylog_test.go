package testutil_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eld-logbook/internal/domain"
	"github.com/pkordes/eld-logbook/internal/hos"
	"github.com/pkordes/eld-logbook/testutil"
)

func TestNewDailyLog_Consistent(t *testing.T) {
	l := testutil.NewDailyLog(time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC))

	segments := make([]domain.Segment, len(l.Segments))
	for i, r := range l.Segments {
		segments[i] = r.Segment()
		assert.Equal(t, r, domain.NewSegmentRecord(segments[i]))
	}

	assert.Equal(t, "2025-06-02", l.Date)
	assert.Equal(t, l.Summary, hos.Aggregate(segments))
	assert.Equal(t, l.TotalMiles, hos.EstimateMiles(segments))
	assert.InDelta(t, 8.0, segments[0].StartHour, 1e-9)
	assert.True(t, segments[1].EndTime.Equal(l.FinalizedAt))
	assert.NotEqual(t, l.ID, testutil.NewDailyLog(time.Now()).ID)
}

type recordingSaver struct {
	saved []domain.DailyLog
}

func (s *recordingSaver) Save(_ context.Context, log domain.DailyLog) (domain.DailyLog, error) {
	log.Remarks = "stored"
	s.saved = append(s.saved, log)
	return log, nil
}

func TestSeedDailyLogs_ReturnsStoredRecords(t *testing.T) {
	store := &recordingSaver{}
	a := testutil.NewDailyLog(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	b := testutil.NewDailyLog(time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC))

	got := testutil.SeedDailyLogs(t, store, a, b)

	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
	assert.Equal(t, "stored", got[1].Remarks)
	assert.Len(t, store.saved, 2)
}

// compile-time check: the test store satisfies the saver contract.
var _ testutil.DailyLogSaver = (*recordingSaver)(nil)
