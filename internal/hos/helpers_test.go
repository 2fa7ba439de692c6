package hos_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/eld-logbook/internal/domain"
	"github.com/pkordes/eld-logbook/internal/hos"
)

// fakeClock is a manually advanced hos.Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// steppingClock advances by step after every reading.
type steppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// mockStore is a hand-written test double for hos.LogStore.
// Set only the method fields your test needs.
type mockStore struct {
	list func(ctx context.Context) ([]domain.DailyLog, error)
	save func(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error)
}

func (m *mockStore) List(ctx context.Context) ([]domain.DailyLog, error) {
	return m.list(ctx)
}
func (m *mockStore) Save(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error) {
	return m.save(ctx, log)
}

// compile-time check: mockStore must satisfy hos.LogStore.
var _ hos.LogStore = (*mockStore)(nil)

// mockFinderStore adds single-log lookup to mockStore.
type mockFinderStore struct {
	mockStore
	getByID func(ctx context.Context, id uuid.UUID) (domain.DailyLog, error)
}

func (m *mockFinderStore) GetByID(ctx context.Context, id uuid.UUID) (domain.DailyLog, error) {
	return m.getByID(ctx, id)
}

var _ hos.LogFinder = (*mockFinderStore)(nil)

// at returns 2025-06-02 hh:mm UTC.
func at(hh, mm int) time.Time {
	return time.Date(2025, 6, 2, hh, mm, 0, 0, time.UTC)
}

func seg(status domain.DutyStatus, start, end float64) domain.Segment {
	return domain.Segment{
		Status:        status,
		StartHour:     start,
		EndHour:       end,
		DurationHours: end - start,
	}
}

func newEngine(clock hos.Clock, store hos.LogStore) *hos.Engine {
	return hos.New(hos.Options{Clock: clock, Store: store, Location: time.UTC})
}
