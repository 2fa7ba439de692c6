package hos

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// Outcome tells where a finalized log ended up.
type Outcome string

const (
	// OutcomePersisted means the store accepted the log and the canonical
	// stored record was added to the collection.
	OutcomePersisted Outcome = "persisted"
	// OutcomeLocalOnly means the store failed and the locally assembled
	// record was kept in memory only.
	OutcomeLocalOnly Outcome = "local_only"
)

// FinalizeResult is the outcome of closing out a day.
// StoreErr is set only for OutcomeLocalOnly.
type FinalizeResult struct {
	Outcome  Outcome
	Log      domain.DailyLog
	StoreErr error
}

// Finalize closes the open day: it closes the tail segment at the current
// instant, assembles the DailyLog, tries to persist it, appends it to the
// collection, and opens a new day at that same instant. Persistence failure is not an error: the
// local record is kept and the result says so.
//
// The engine lock is held for the whole transition, so no status change can
// land between assembly and reset.
func (e *Engine) Finalize(ctx context.Context) FinalizeResult {
	e.mu.Lock()
	now := e.clock.Now()
	log := e.assemble(now)

	result := FinalizeResult{Outcome: OutcomePersisted, Log: log}
	saved, err := e.persist(ctx, log)
	if err != nil {
		result.Outcome = OutcomeLocalOnly
		result.StoreErr = err
		e.unsynced[len(e.logs)] = struct{}{}
	} else {
		result.Log = saved
	}
	e.logs = append(e.logs, result.Log)
	e.openDay(now, newDayLocation)
	e.mu.Unlock()

	if result.StoreErr != nil {
		e.logger.WarnContext(ctx, "daily log kept locally",
			"log_id", result.Log.ID,
			"date", result.Log.Date,
			"error", result.StoreErr,
		)
	} else {
		e.logger.InfoContext(ctx, "daily log persisted",
			"log_id", result.Log.ID,
			"date", result.Log.Date,
		)
	}
	e.metrics.DayFinalized(string(result.Outcome))
	e.notify(Change{Kind: ChangeFinalize, At: now})
	return result
}

// assemble builds the DailyLog for the open day ending at now.
// It does not mutate the engine. Callers must hold mu.
func (e *Engine) assemble(now time.Time) domain.DailyLog {
	last := e.events[len(e.events)-1]
	segments := slices.Clone(e.segments)
	tail, ok := CloseSegment(e.status, last.Time, now, e.loc, firstNonEmpty(e.location, unknownLocation))
	if ok {
		segments = append(segments, tail)
	}

	summary := Aggregate(segments)
	records := make([]domain.SegmentRecord, len(segments))
	for i, s := range segments {
		records[i] = domain.NewSegmentRecord(s)
	}

	return domain.DailyLog{
		ID:            uuid.New(),
		Date:          now.In(e.loc).Format(domain.DateLayout),
		Segments:      records,
		Summary:       summary,
		Trip:          e.trip,
		StatusHistory: slices.Clone(e.events),
		FinalizedAt:   now.UTC(),
		TotalMiles:    EstimateMiles(segments),
		Remarks:       Remarks(summary, e.events, e.trip),
	}
}

func (e *Engine) persist(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error) {
	if e.store == nil {
		return domain.DailyLog{}, ErrNoStore
	}
	saved, err := e.store.Save(ctx, log)
	if err != nil {
		return domain.DailyLog{}, fmt.Errorf("hos.Engine.Finalize: %w", err)
	}
	return saved, nil
}

// Seed loads previously finalized logs from the store ahead of any logs
// already in memory. On failure the collection is left untouched.
func (e *Engine) Seed(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	logs, err := e.store.List(ctx)
	if err != nil {
		return fmt.Errorf("hos.Engine.Seed: %w", err)
	}

	e.mu.Lock()
	shifted := make(map[int]struct{}, len(e.unsynced))
	for i := range e.unsynced {
		shifted[i+len(logs)] = struct{}{}
	}
	e.unsynced = shifted
	e.logs = append(slices.Clone(logs), e.logs...)
	now := e.clock.Now()
	e.mu.Unlock()

	e.notify(Change{Kind: ChangeSeed, At: now})
	return nil
}
