package hos

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/eld-logbook/internal/domain"
)

const (
	shiftStartLocation = "Starting shift"
	newDayLocation     = "Starting new day"
	unknownLocation    = "Unknown location"
	tripTimeLayout     = "15:04"
)

// ChangeKind names what changed in an engine notification.
type ChangeKind string

const (
	ChangeStatus   ChangeKind = "status"
	ChangeLocation ChangeKind = "location"
	ChangeTrip     ChangeKind = "trip"
	ChangeRoute    ChangeKind = "route"
	ChangeFinalize ChangeKind = "finalize"
	ChangeSeed     ChangeKind = "seed"
)

// Change is delivered to subscribers after every mutation.
type Change struct {
	Kind ChangeKind
	At   time.Time
}

// Options configures an Engine. Zero values select defaults: SystemClock,
// time.Local, MaxDrivingHours, a discarding logger, and no metrics.
// A nil Store makes every finalize a local-only save.
type Options struct {
	Clock           Clock
	Store           LogStore
	Location        *time.Location
	MaxDrivingHours float64
	Logger          *slog.Logger
	Metrics         Recorder
}

// Engine owns one driver session: the current day's event log and segments
// and the collection of finalized daily logs.
//
// All methods are safe for concurrent use. Queries return copies.
type Engine struct {
	clock      Clock
	store      LogStore
	loc        *time.Location
	maxDriving float64
	logger     *slog.Logger
	metrics    Recorder

	mu        sync.Mutex
	events    []domain.StatusEvent
	segments  []domain.Segment
	status    domain.DutyStatus
	location  string
	trip      domain.TripInfo
	route     *domain.RoutePlan
	logs      []domain.DailyLog
	unsynced  map[int]struct{} // indexes into logs saved locally only
	observers map[int]func(Change)
	nextObsID int
}

// New constructs an Engine and opens the first day with an automatic
// off-duty event at the current instant.
func New(opts Options) *Engine {
	e := &Engine{
		clock:      opts.Clock,
		store:      opts.Store,
		loc:        opts.Location,
		maxDriving: opts.MaxDrivingHours,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		unsynced:   make(map[int]struct{}),
		observers:  make(map[int]func(Change)),
	}
	if e.clock == nil {
		e.clock = SystemClock{}
	}
	if e.loc == nil {
		e.loc = time.Local
	}
	if e.maxDriving <= 0 {
		e.maxDriving = MaxDrivingHours
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.metrics == nil {
		e.metrics = noopRecorder{}
	}
	e.openDay(e.clock.Now(), shiftStartLocation)
	return e
}

// openDay resets all per-day state to a single automatic off-duty event.
// Callers must hold mu (or own e exclusively).
func (e *Engine) openDay(now time.Time, location string) {
	e.events = []domain.StatusEvent{{
		Time:     now,
		Status:   domain.OffDuty,
		Location: location,
		Source:   domain.SourceAuto,
	}}
	e.segments = nil
	e.status = domain.OffDuty
	e.location = ""
	e.trip = domain.TripInfo{StartTime: now.In(e.loc).Format(tripTimeLayout)}
	e.route = nil
}

// Record appends a status change at the current instant and closes the
// segment that just ended. An empty location falls back to the current
// location, then to the status description.
func (e *Engine) Record(status domain.DutyStatus, location string) domain.StatusEvent {
	e.mu.Lock()
	now := e.clock.Now()
	from := e.status
	ev := e.record(now, status, location, nil)
	e.mu.Unlock()

	e.metrics.StatusRecorded(from, status)
	e.notify(Change{Kind: ChangeStatus, At: now})
	return ev
}

// RecordArrival records a status change at planned stop stopIndex of the
// current route. The event carries the stop's location and an explicit
// reference to the stop.
func (e *Engine) RecordArrival(status domain.DutyStatus, stopIndex int) (domain.StatusEvent, error) {
	e.mu.Lock()
	if e.route == nil || stopIndex < 0 || stopIndex >= len(e.route.Stops) {
		e.mu.Unlock()
		return domain.StatusEvent{}, fmt.Errorf("hos.Engine.RecordArrival: %w: no planned stop at index %d", domain.ErrValidation, stopIndex)
	}
	now := e.clock.Now()
	from := e.status
	idx := stopIndex
	ev := e.record(now, status, e.route.Stops[stopIndex].Location, &idx)
	e.mu.Unlock()

	e.metrics.StatusRecorded(from, status)
	e.notify(Change{Kind: ChangeStatus, At: now})
	return ev, nil
}

// record builds the event and segment first, then commits both.
// Callers must hold mu.
func (e *Engine) record(now time.Time, status domain.DutyStatus, location string, stopIndex *int) domain.StatusEvent {
	prev := e.events[len(e.events)-1]
	from := e.status

	ev := domain.StatusEvent{
		Time:           now,
		Status:         status,
		Location:       firstNonEmpty(location, e.location, status.Description()),
		Source:         domain.SourceManual,
		PreviousStatus: &from,
		DurationHours:  now.Sub(prev.Time).Hours(),
		StopIndex:      stopIndex,
	}
	seg, ok := CloseSegment(from, prev.Time, now, e.loc, prev.Location)

	e.events = append(e.events, ev)
	if ok {
		e.segments = append(e.segments, seg)
	}
	e.status = status
	if location != "" {
		e.location = location
	}
	return ev
}

// CurrentOpenDuration returns how long the current status has been active
// as of now. It has no side effects.
func (e *Engine) CurrentOpenDuration(now time.Time) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.Sub(e.events[len(e.events)-1].Time)
}

// SetLocation sets the location used for events recorded without one.
func (e *Engine) SetLocation(location string) {
	e.mu.Lock()
	e.location = location
	now := e.clock.Now()
	e.mu.Unlock()
	e.notify(Change{Kind: ChangeLocation, At: now})
}

// SetTrip replaces the trip-entry fields.
func (e *Engine) SetTrip(trip domain.TripInfo) {
	e.mu.Lock()
	e.trip = trip
	now := e.clock.Now()
	e.mu.Unlock()
	e.notify(Change{Kind: ChangeTrip, At: now})
}

// Trip returns the current trip-entry fields.
func (e *Engine) Trip() domain.TripInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trip
}

// SetRoute stores the planner's route for next-stop lookups.
func (e *Engine) SetRoute(plan domain.RoutePlan) {
	plan.Stops = slices.Clone(plan.Stops)
	e.mu.Lock()
	e.route = &plan
	now := e.clock.Now()
	e.mu.Unlock()
	e.notify(Change{Kind: ChangeRoute, At: now})
}

// Route returns the current route, if one has been planned today.
func (e *Engine) Route() (domain.RoutePlan, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.route == nil {
		return domain.RoutePlan{}, false
	}
	plan := *e.route
	plan.Stops = slices.Clone(plan.Stops)
	return plan, true
}

// NextStop returns the first unvisited stop of the current route.
func (e *Engine) NextStop() (domain.PlannedStop, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.route == nil {
		return domain.PlannedStop{}, false
	}
	return NextUnvisitedStop(e.route.Stops, e.events)
}

// Day is a point-in-time copy of the open day.
type Day struct {
	Date            string
	Status          domain.DutyStatus
	Location        string
	OpenSince       time.Time
	OpenFor         time.Duration
	Events          []domain.StatusEvent
	Segments        []domain.Segment
	Summary         domain.Summary
	Compliant       bool
	MaxDrivingHours float64
	Trip            domain.TripInfo
	Grid            Grid
}

// Snapshot returns the open day with totals, compliance and grid derived
// from the closed segments.
func (e *Engine) Snapshot() Day {
	e.mu.Lock()
	now := e.clock.Now()
	events := slices.Clone(e.events)
	segments := slices.Clone(e.segments)
	d := Day{
		Date:            now.In(e.loc).Format(domain.DateLayout),
		Status:          e.status,
		Location:        e.location,
		OpenSince:       events[len(events)-1].Time,
		MaxDrivingHours: e.maxDriving,
		Trip:            e.trip,
	}
	e.mu.Unlock()

	d.OpenFor = now.Sub(d.OpenSince)
	d.Events = events
	d.Segments = segments
	d.Summary = Aggregate(segments)
	d.Compliant = IsCompliant(d.Summary, d.MaxDrivingHours)
	d.Grid = Project(segments)
	return d
}

// Logs returns every finalized log in finalize order.
func (e *Engine) Logs() []domain.DailyLog {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.logs)
}

// LogsPage returns one page of finalized logs and the total count.
func (e *Engine) LogsPage(p domain.PaginationParams) ([]domain.DailyLog, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	start, end := p.Window(len(e.logs))
	return slices.Clone(e.logs[start:end]), len(e.logs)
}

// Unsynced returns the logs that were kept locally because the store
// rejected them. A reload from the store will not contain these.
func (e *Engine) Unsynced() []domain.DailyLog {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []domain.DailyLog
	for i, l := range e.logs {
		if _, ok := e.unsynced[i]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Log returns the finalized log with the given id. The in-memory collection
// is searched first; stores implementing LogFinder are asked next. Returns
// domain.ErrNotFound if neither has it.
func (e *Engine) Log(ctx context.Context, id uuid.UUID) (domain.DailyLog, error) {
	e.mu.Lock()
	i := slices.IndexFunc(e.logs, func(l domain.DailyLog) bool { return l.ID == id })
	var found domain.DailyLog
	if i >= 0 {
		found = e.logs[i]
	}
	e.mu.Unlock()
	if i >= 0 {
		return found, nil
	}

	finder, ok := e.store.(LogFinder)
	if !ok {
		return domain.DailyLog{}, fmt.Errorf("hos.Engine.Log: %w", domain.ErrNotFound)
	}
	l, err := finder.GetByID(ctx, id)
	if err != nil {
		return domain.DailyLog{}, fmt.Errorf("hos.Engine.Log: %w", err)
	}
	return l, nil
}

// Subscribe registers fn to be called after every mutation. Notifications
// are delivered outside the engine lock, so fn may call back into the
// engine. The returned func removes the subscription.
func (e *Engine) Subscribe(fn func(Change)) (unsubscribe func()) {
	e.mu.Lock()
	id := e.nextObsID
	e.nextObsID++
	e.observers[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.observers, id)
		e.mu.Unlock()
	}
}

func (e *Engine) notify(c Change) {
	e.mu.Lock()
	fns := make([]func(Change), 0, len(e.observers))
	for _, fn := range e.observers {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
