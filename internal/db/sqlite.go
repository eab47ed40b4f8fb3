// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/weekpick/internal/schedule"
)

// ErrCorruptBlock is returned by Load when a stored row cannot be restored.
var ErrCorruptBlock = errors.New("corrupt stored block")

// SQLite implements schedule.Repository using SQLite.
type SQLite struct {
	db  *sql.DB
	loc *time.Location
}

var _ schedule.Repository = (*SQLite)(nil)

// Option configures a SQLite repository.
type Option func(*SQLite)

// WithLocation sets the zone loaded instants are converted to. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *SQLite) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// New creates a new SQLite repository and runs migrations.
func New(path string, opts ...Option) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection serialises writers inside the process; busy_timeout
	// covers another weekpick process holding the file.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	s := &SQLite{db: db, loc: time.Local}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Load returns every stored block grouped by day.
// Rows go through the same commit checks as live selections, so overlapping
// or zero-length rows are reported as ErrCorruptBlock.
func (s *SQLite) Load(ctx context.Context) (schedule.SelectedTimes, error) {
	query := `
		SELECT id, day_key, start_at, end_at
		FROM blocks
		ORDER BY day_key, start_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying blocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	selected := schedule.SelectedTimes{}
	for rows.Next() {
		var id, dayKey, startAt, endAt string
		if err := rows.Scan(&id, &dayKey, &startAt, &endAt); err != nil {
			return nil, fmt.Errorf("scanning block: %w", err)
		}

		iv, err := s.parseInterval(startAt, endAt)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrCorruptBlock, id, err)
		}

		selected, err = selected.Commit(schedule.DayKey(dayKey), iv)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrCorruptBlock, id, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocks: %w", err)
	}

	return selected, nil
}

// SaveDay replaces the stored blocks of day with blocks in one transaction.
func (s *SQLite) SaveDay(ctx context.Context, day schedule.DayKey, blocks schedule.DayBlocks) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM blocks WHERE day_key = ?`, string(day)); err != nil {
		return fmt.Errorf("deleting day %s: %w", day, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO blocks (id, day_key, start_at, end_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, b := range blocks.Blocks() {
		if _, err := stmt.ExecContext(ctx,
			uuid.NewString(),
			string(day),
			b.Start.Format(time.RFC3339),
			b.End.Format(time.RFC3339),
			now,
		); err != nil {
			return fmt.Errorf("inserting block %s: %w", b.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// DeleteDay removes all stored blocks of day.
func (s *SQLite) DeleteDay(ctx context.Context, day schedule.DayKey) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM blocks WHERE day_key = ?`, string(day)); err != nil {
		return fmt.Errorf("deleting day %s: %w", day, err)
	}
	return nil
}

// Clear removes every stored block.
func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM blocks`); err != nil {
		return fmt.Errorf("clearing blocks: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) parseInterval(startAt, endAt string) (schedule.Interval, error) {
	start, err := time.Parse(time.RFC3339, startAt)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("parsing start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, endAt)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("parsing end: %w", err)
	}
	return schedule.Interval{Start: start.In(s.loc), End: end.In(s.loc)}, nil
}
