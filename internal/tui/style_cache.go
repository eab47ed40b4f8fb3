package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekpick/internal/schedule"
)

// StyleCache stores width-specific styles to avoid per-cell mutations.
type StyleCache struct {
	TimeHour       lipgloss.Style
	TimeQuarter    lipgloss.Style
	TimeHeader     lipgloss.Style
	DayHeader      lipgloss.Style
	DayHeaderToday lipgloss.Style
	EmptyCell      lipgloss.Style
	PreviewCell    lipgloss.Style
	Cursor         lipgloss.Style
	Ranges         map[schedule.Color]lipgloss.Style
}

// NewStyleCache precomputes all width-dependent styles for the grid.
func NewStyleCache(styles *Styles, colWidth int) StyleCache {
	ranges := make(map[schedule.Color]lipgloss.Style, len(schedule.Palette))
	for _, c := range schedule.Palette {
		ranges[c] = styles.RangeCellStyle(c).Width(colWidth)
	}

	return StyleCache{
		TimeHour:       styles.TimeHourStyle.Width(timeColWidth),
		TimeQuarter:    styles.TimeQuarterStyle.Width(timeColWidth),
		TimeHeader:     styles.HeaderStyle.Width(timeColWidth).Align(lipgloss.Center),
		DayHeader:      styles.DayHeaderStyle.Width(colWidth),
		DayHeaderToday: styles.DayHeaderTodayStyle.Width(colWidth),
		EmptyCell:      styles.EmptyCellStyle.Width(colWidth),
		PreviewCell:    styles.PreviewCellStyle.Width(colWidth),
		Cursor:         styles.CursorStyle.Width(colWidth),
		Ranges:         ranges,
	}
}

// Range returns the cached cell style of a merged range color.
func (c StyleCache) Range(color schedule.Color) lipgloss.Style {
	return c.Ranges[color]
}
