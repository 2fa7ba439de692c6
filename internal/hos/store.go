package hos

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// ErrNoStore is the persistence error reported when an engine finalizes a
// day without any LogStore configured.
var ErrNoStore = errors.New("no log store configured")

// LogStore is the persistence service for finalized daily logs.
// Both the remote log service client and the Postgres repo satisfy it.
type LogStore interface {
	// List returns every previously finalized log in storage order.
	List(ctx context.Context) ([]domain.DailyLog, error)

	// Save stores one log and returns its canonical stored form.
	Save(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error)
}

// LogFinder is implemented by stores that can fetch a single log directly.
type LogFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.DailyLog, error)
}

// Recorder receives engine activity for metrics.
type Recorder interface {
	StatusRecorded(from, to domain.DutyStatus)
	DayFinalized(outcome string)
}

type noopRecorder struct{}

func (noopRecorder) StatusRecorded(_, _ domain.DutyStatus) {}
func (noopRecorder) DayFinalized(_ string)                 {}
