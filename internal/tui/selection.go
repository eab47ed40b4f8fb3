package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/weekpick/internal/dateutil"
	"github.com/javiermolinar/weekpick/internal/schedule"
	"github.com/javiermolinar/weekpick/internal/summary"
	"github.com/javiermolinar/weekpick/internal/tui/commands"
)

// Status message lifetimes.
const (
	statusInfoTTL    = 2 * time.Second
	statusWarningTTL = 3 * time.Second
	statusErrorTTL   = 5 * time.Second
)

const (
	overlapWarning = "Selection overlaps an existing block"
	loadingNotice  = "Loading saved selections…"
)

// pointerDown feeds a press on a grid cell to the gesture. The first press
// anchors, the second commits to the anchored day.
func (m Model) pointerDown(pos Position) (tea.Model, tea.Cmd) {
	if m.loading {
		return m.stillLoading("select")
	}
	m.gesture.Sync(m.resetCounter)
	m.cursor = pos
	m.ensureCursorVisible()

	day := m.dayKey(pos.Day)
	at := m.instantAt(pos)
	target := m.gesture.Day()

	updated, outcome, err := m.gesture.Down(day, at, m.selected)
	switch outcome {
	case schedule.OutcomeAnchored:
		m.logger.Debug("gesture anchored",
			zap.String("day", string(day)),
			zap.String("at", schedule.FormatClock(at)),
		)
		return m, nil

	case schedule.OutcomeCommitted:
		m.selected = updated
		m.logger.Info("block committed",
			zap.String("day", string(target)),
			zap.Int("blocks", len(m.selected[target])),
		)
		return m, m.store.SaveDay(target, m.selected[target])

	case schedule.OutcomeDiscarded:
		m.logger.Debug("empty selection discarded", zap.String("day", string(target)))
		return m, nil

	case schedule.OutcomeRejected:
		m.logger.Warn("selection rejected", zap.String("day", string(target)), zap.Error(err))
		if errors.Is(err, schedule.ErrOverlap) {
			return m.setStatus(statusWarning, overlapWarning, statusWarningTTL)
		}
		return m.setStatus(statusError, "Error: "+err.Error(), statusErrorTTL)
	}
	return m, nil
}

// pointerEnter moves the cursor and, while anchored in the same column,
// the live endpoint.
func (m Model) pointerEnter(pos Position) Model {
	m.gesture.Sync(m.resetCounter)
	m.cursor = pos
	m.gesture.Enter(m.dayKey(pos.Day), m.instantAt(pos))
	return m
}

// resetAll drops every selection, cancels any gesture and returns to the
// current week.
func (m Model) resetAll() (tea.Model, tea.Cmd) {
	if m.loading {
		return m.stillLoading("reset")
	}
	cleared := m.selected.Len()
	m.selected = m.selected.Reset()
	m.resetCounter++
	m.gesture.Sync(m.resetCounter)
	m.merges.Invalidate()
	m.menu.Close()
	m = m.jumpToWeek(m.now())

	m.logger.Info("selections reset",
		zap.Int("blocks", cleared),
		zap.Uint64("reset_counter", m.resetCounter),
	)
	m, status := m.setStatus(statusInfo, "Selections cleared", statusInfoTTL)
	return m, tea.Batch(m.store.Clear(), status)
}

// resetDay drops the selections of one displayed column.
func (m Model) resetDay(col int) (tea.Model, tea.Cmd) {
	if m.loading {
		return m.stillLoading("reset day")
	}
	day := m.dayKey(col)
	if m.gesture.Active() && m.gesture.Day() == day {
		m.gesture.Cancel()
	}
	cleared := len(m.selected[day])
	m.selected = m.selected.ResetDay(day)

	m.logger.Info("day reset", zap.String("day", string(day)), zap.Int("blocks", cleared))
	m, status := m.setStatus(statusInfo, "Cleared "+string(day), statusInfoTTL)
	return m, tea.Batch(m.store.DeleteDay(day), status)
}

// copyAll copies the summary of every selected day.
func (m Model) copyAll() (tea.Model, tea.Cmd) {
	if m.loading {
		return m.stillLoading("copy")
	}
	text := summary.ClipboardText(summary.Format(m.selected, m.summaryOptions()))
	m.logger.Debug("copy requested", zap.String("label", "week"), zap.Int("bytes", len(text)))
	return m, commands.CopyToClipboard(m.clipboard, "week", text)
}

// copyDay copies the summary of one displayed column.
func (m Model) copyDay(col int) (tea.Model, tea.Cmd) {
	if m.loading {
		return m.stillLoading("copy day")
	}
	day := m.dayKey(col)
	only := schedule.SelectedTimes{}
	if blocks, ok := m.selected[day]; ok {
		only[day] = blocks
	}
	text := summary.ClipboardText(summary.Format(only, m.summaryOptions()))
	m.logger.Debug("copy requested", zap.String("label", string(day)), zap.Int("bytes", len(text)))
	return m, commands.CopyToClipboard(m.clipboard, string(day), text)
}

// shiftWeek moves the displayed week by n weeks.
func (m Model) shiftWeek(n int) Model {
	return m.jumpToWeek(dateutil.ShiftWeek(m.weekRef, n))
}

// jumpToWeek displays the week containing ref. Changing weeks cancels an
// in-progress gesture since its anchor column scrolls away.
func (m Model) jumpToWeek(ref time.Time) Model {
	if !dateutil.SameWeek(ref, m.weekRef) && m.gesture.Active() {
		m.logger.Debug("gesture cancelled by week change", zap.String("day", string(m.gesture.Day())))
		m.gesture.Cancel()
	}
	m.weekRef = ref
	m.days = dateutil.WeekDays(ref)
	if dateutil.SameWeek(ref, m.now()) {
		m.cursor.Day = m.todayColumn()
	}
	m.logger.Debug("week shown", zap.String("week", dateutil.WeekLabel(m.days)))
	return m
}

func (m Model) summaryOptions() summary.Options {
	return summary.Options{ZoneLabel: m.config.Grid.ZoneLabel, Cache: m.merges}
}

// stillLoading refuses edits until stored selections have arrived.
func (m Model) stillLoading(action string) (Model, tea.Cmd) {
	m.logger.Debug("input ignored while loading", zap.String("action", action))
	return m.setStatus(statusInfo, loadingNotice, statusInfoTTL)
}

// setStatus shows a footer message until d elapses or a newer message
// replaces it.
func (m Model) setStatus(kind statusKind, msg string, d time.Duration) (Model, tea.Cmd) {
	m.statusSeq++
	m.statusMsg = msg
	m.statusKind = kind
	return m, commands.ClearStatusAfter(d, m.statusSeq)
}
