package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekpick/internal/dateutil"
	"github.com/javiermolinar/weekpick/internal/schedule"
)

// buildGridTableRows builds the visible slot rows. Every day cell resolves
// to exactly one fill: cursor, then gesture preview, then committed range
// color, then empty.
func (m Model) buildGridTableRows() ([][]string, [][]lipgloss.Style) {
	visible := m.renderedRows()
	if visible <= 0 {
		return nil, nil
	}

	var (
		merged   [dateutil.DaysShown][]schedule.Interval
		instants [dateutil.DaysShown][]time.Time
	)
	for col := range m.days {
		merged[col] = m.merges.Merged(m.selected, m.dayKey(col))
		instants[col] = schedule.DayInstants(m.days[col])
	}
	preview, previewing := m.gesture.Preview()
	previewDay := m.gesture.Day()

	rows := make([][]string, 0, visible)
	cellStyles := make([][]lipgloss.Style, 0, visible)

	for i := range visible {
		slot := m.scrollOffset + i
		row := make([]string, 0, dateutil.DaysShown+1)
		rowStyles := make([]lipgloss.Style, 0, dateutil.DaysShown+1)

		row = append(row, timeLabel(m.days[0], slot))
		if schedule.IsFullHour(slot) {
			rowStyles = append(rowStyles, m.styleCache.TimeHour)
		} else {
			rowStyles = append(rowStyles, m.styleCache.TimeQuarter)
		}

		for col := range m.days {
			at := instants[col][slot]
			style := m.styleCache.EmptyCell
			content := ""

			if c, ok := schedule.ColorAtInstant(at, merged[col]); ok {
				style = m.styleCache.Range(c)
			}
			if previewing && previewDay == m.dayKey(col) && preview.ContainsInclusive(at) {
				style = m.styleCache.PreviewCell
				if anchor, _ := m.gesture.Anchor(); at.Equal(anchor) {
					content = "▶"
				}
			}
			if m.cursor.Day == col && m.cursor.Slot == slot {
				style = m.styleCache.Cursor
				content = "•"
			}

			row = append(row, content)
			rowStyles = append(rowStyles, style)
		}

		rows = append(rows, row)
		cellStyles = append(cellStyles, rowStyles)
	}

	return rows, cellStyles
}

// timeLabel renders the time column: the clock on full hours, minutes only
// on quarter hours.
func timeLabel(date time.Time, slot int) string {
	at := schedule.SlotToInstant(date, slot)
	if schedule.IsFullHour(slot) {
		return schedule.FormatClock(at)
	}
	return fmt.Sprintf(":%02d", at.Minute())
}
