package commands

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekpick/internal/schedule"
)

// Writer persists selection changes in the order they were made.
//
// Every write is numbered when its command is created, which happens on the
// Update goroutine. Commands may then run in any order: the writer holds a
// lock around each statement and skips a day snapshot that is older than
// the one already stored for that day, or older than a later Clear.
// A nil *Writer returns nil commands.
type Writer struct {
	repo schedule.Repository

	mu        sync.Mutex
	seq       uint64
	applied   map[schedule.DayKey]uint64
	latest    map[schedule.DayKey]schedule.DayBlocks
	clearedAt uint64
}

// NewWriter returns a writer for repo, or nil when repo is nil.
func NewWriter(repo schedule.Repository) *Writer {
	if repo == nil {
		return nil
	}
	return &Writer{
		repo:    repo,
		applied: make(map[schedule.DayKey]uint64),
		latest:  make(map[schedule.DayKey]schedule.DayBlocks),
	}
}

func (w *Writer) next() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seq++
	return w.seq
}

// stale reports whether a write numbered seq for day was superseded.
// Callers hold w.mu.
func (w *Writer) stale(day schedule.DayKey, seq uint64) bool {
	return seq < w.applied[day] || seq < w.clearedAt
}

// SaveDay replaces the stored blocks of day.
// blocks must not be modified after the command is created.
func (w *Writer) SaveDay(day schedule.DayKey, blocks schedule.DayBlocks) tea.Cmd {
	if w == nil {
		return nil
	}
	seq := w.next()
	return func() tea.Msg {
		w.mu.Lock()
		defer w.mu.Unlock()

		if w.stale(day, seq) {
			return DaySavedMsg{Day: day, Blocks: len(blocks), Superseded: true}
		}
		if err := w.repo.SaveDay(context.Background(), day, blocks); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving %s: %w", day, err)}
		}
		w.applied[day] = seq
		w.latest[day] = blocks
		return DaySavedMsg{Day: day, Blocks: len(blocks)}
	}
}

// DeleteDay removes the stored blocks of day.
func (w *Writer) DeleteDay(day schedule.DayKey) tea.Cmd {
	if w == nil {
		return nil
	}
	seq := w.next()
	return func() tea.Msg {
		w.mu.Lock()
		defer w.mu.Unlock()

		if w.stale(day, seq) {
			return DaySavedMsg{Day: day, Superseded: true}
		}
		if err := w.repo.DeleteDay(context.Background(), day); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting %s: %w", day, err)}
		}
		w.applied[day] = seq
		w.latest[day] = nil
		return DaySavedMsg{Day: day}
	}
}

// Clear removes every stored block. Days written after the clear was
// requested but before it ran are written back.
func (w *Writer) Clear() tea.Cmd {
	if w == nil {
		return nil
	}
	seq := w.next()
	return func() tea.Msg {
		w.mu.Lock()
		defer w.mu.Unlock()

		if seq < w.clearedAt {
			return StoreClearedMsg{Superseded: true}
		}
		ctx := context.Background()
		if err := w.repo.Clear(ctx); err != nil {
			return ErrMsg{Err: fmt.Errorf("clearing selections: %w", err)}
		}
		w.clearedAt = seq
		for day, at := range w.applied {
			if at < seq || len(w.latest[day]) == 0 {
				continue
			}
			if err := w.repo.SaveDay(ctx, day, w.latest[day]); err != nil {
				return ErrMsg{Err: fmt.Errorf("restoring %s: %w", day, err)}
			}
		}
		return StoreClearedMsg{}
	}
}
