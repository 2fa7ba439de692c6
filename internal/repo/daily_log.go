// Package repo contains the Postgres persistence for finalized daily logs.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DailyLogRepo stores finalized daily logs. It satisfies hos.LogStore.
type DailyLogRepo interface {
	// List returns every stored log in insertion order.
	List(ctx context.Context) ([]domain.DailyLog, error)

	// Save inserts a log and returns the stored record. A zero ID is
	// replaced by a database-generated one.
	Save(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error)

	// GetByID returns domain.ErrNotFound if no log has that ID.
	GetByID(ctx context.Context, id uuid.UUID) (domain.DailyLog, error)
}

type pgDailyLogRepo struct {
	db db
}

// NewDailyLogRepo constructs a DailyLogRepo backed by the provided connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewDailyLogRepo(db db) DailyLogRepo {
	return &pgDailyLogRepo{db: db}
}

const dailyLogColumns = `id, log_date, segments, summary, trip, status_history, total_miles, remarks, finalized_at`

// List returns all logs ordered by insertion.
func (r *pgDailyLogRepo) List(ctx context.Context) ([]domain.DailyLog, error) {
	q := `SELECT ` + dailyLogColumns + ` FROM daily_logs ORDER BY seq`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DailyLogRepo.List: %w", err)
	}
	defer rows.Close()

	logs := []domain.DailyLog{}
	for rows.Next() {
		l, err := scanDailyLog(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DailyLogRepo.List: scan: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DailyLogRepo.List: rows: %w", err)
	}
	return logs, nil
}

// Save inserts one log row and returns the persisted record.
func (r *pgDailyLogRepo) Save(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error) {
	date, err := time.Parse(domain.DateLayout, log.Date)
	if err != nil {
		return domain.DailyLog{}, fmt.Errorf("repo.DailyLogRepo.Save: %w: date %q", domain.ErrValidation, log.Date)
	}

	q := `
		INSERT INTO daily_logs (id, log_date, segments, summary, trip, status_history, total_miles, remarks, finalized_at)
		VALUES (COALESCE(@id, gen_random_uuid()), @log_date, @segments, @summary, @trip, @status_history,
		        @total_miles, @remarks, @finalized_at)
		RETURNING ` + dailyLogColumns

	var id *uuid.UUID
	if log.ID != uuid.Nil {
		id = &log.ID
	}
	segments := log.Segments
	if segments == nil {
		segments = []domain.SegmentRecord{}
	}
	history := log.StatusHistory
	if history == nil {
		history = []domain.StatusEvent{}
	}

	args := pgx.NamedArgs{
		"id":             id, // nil becomes NULL
		"log_date":       pgtype.Date{Time: date, Valid: true},
		"segments":       segments,
		"summary":        log.Summary,
		"trip":           log.Trip,
		"status_history": history,
		"total_miles":    log.TotalMiles,
		"remarks":        log.Remarks,
		"finalized_at":   log.FinalizedAt,
	}

	saved, err := scanDailyLog(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.DailyLog{}, fmt.Errorf("repo.DailyLogRepo.Save: %w", err)
	}
	return saved, nil
}

// GetByID retrieves a log by primary key.
func (r *pgDailyLogRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.DailyLog, error) {
	q := `SELECT ` + dailyLogColumns + ` FROM daily_logs WHERE id = @id`

	l, err := scanDailyLog(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.DailyLog{}, fmt.Errorf("repo.DailyLogRepo.GetByID: %w", err)
	}
	return l, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanDailyLog maps one row into a domain.DailyLog. JSONB columns decode
// straight into their domain types.
func scanDailyLog(s scanner) (domain.DailyLog, error) {
	var (
		l    domain.DailyLog
		id   pgtype.UUID
		date pgtype.Date
	)

	err := s.Scan(&id, &date, &l.Segments, &l.Summary, &l.Trip, &l.StatusHistory,
		&l.TotalMiles, &l.Remarks, &l.FinalizedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DailyLog{}, domain.ErrNotFound
		}
		return domain.DailyLog{}, err
	}

	l.ID = uuid.UUID(id.Bytes)
	l.Date = date.Time.Format(domain.DateLayout)
	l.FinalizedAt = l.FinalizedAt.UTC()
	return l, nil
}
