package tui

import (
	"github.com/javiermolinar/weekpick/internal/dateutil"
	"github.com/javiermolinar/weekpick/internal/schedule"
	"github.com/javiermolinar/weekpick/internal/tui/view"
)

const (
	titleHeight    = 1
	timeColWidth   = 10 // "10:45 AM" plus one space of padding each side
	minColWidth    = 10 // fits "*Wed 1/15*"
	maxColWidth    = 18
	panelWidth     = 30
	gridChromeRows = 3                       // top border, header, header rule
	gridBorderCols = dateutil.DaysShown + 2 // outer borders plus one rule per column
)

// LayoutCache stores layout dimensions derived from the window size.
type LayoutCache struct {
	Width  int
	Height int

	ColWidth    int
	GridWidth   int
	VisibleRows int
	ShowPanel   bool
	PanelWidth  int
	PanelHeight int
}

func gridWidth(colWidth int) int {
	return timeColWidth + dateutil.DaysShown*colWidth + gridBorderCols
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	lc := LayoutCache{Width: width, Height: height}

	avail := width
	if width >= gridWidth(minColWidth)+panelWidth {
		lc.ShowPanel = true
		avail -= panelWidth
	}
	lc.ColWidth = (avail - timeColWidth - gridBorderCols) / dateutil.DaysShown
	lc.ColWidth = max(minColWidth, min(maxColWidth, lc.ColWidth))
	lc.GridWidth = gridWidth(lc.ColWidth)
	if lc.ShowPanel {
		lc.PanelWidth = max(panelWidth, width-lc.GridWidth)
	}

	if height <= 0 {
		lc.VisibleRows = schedule.SlotCount
	} else {
		// one extra row for the bottom border
		lc.VisibleRows = height - titleHeight - view.FooterHeight - gridChromeRows - 1
		lc.VisibleRows = max(1, min(schedule.SlotCount, lc.VisibleRows))
	}
	lc.PanelHeight = lc.VisibleRows + gridChromeRows + 1

	return lc
}

// cellHit is the grid location under a screen coordinate.
type cellHit struct {
	Pos    Position
	Header bool // the day header row rather than a slot
}

// hitTest maps a screen coordinate to a day column and slot. The time
// column, borders and anything outside the grid do not hit.
func (m Model) hitTest(x, y int) (cellHit, bool) {
	lc := m.layoutCache
	if x < 0 || x >= lc.GridWidth {
		return cellHit{}, false
	}

	firstDayX := 1 + timeColWidth + 1
	if x < firstDayX {
		return cellHit{}, false
	}
	rel := x - firstDayX
	day := rel / (lc.ColWidth + 1)
	if rel%(lc.ColWidth+1) == lc.ColWidth || day >= dateutil.DaysShown {
		return cellHit{}, false
	}

	row := y - titleHeight
	switch {
	case row == 1:
		return cellHit{Pos: Position{Day: day, Slot: m.cursor.Slot}, Header: true}, true
	case row >= gridChromeRows && row-gridChromeRows < m.renderedRows():
		return cellHit{Pos: Position{Day: day, Slot: m.scrollOffset + row - gridChromeRows}}, true
	}
	return cellHit{}, false
}

// cellOrigin returns the screen coordinate of the top-left corner of a cell.
func (m Model) cellOrigin(pos Position) (x, y int) {
	x = 1 + timeColWidth + 1 + pos.Day*(m.layoutCache.ColWidth+1)
	y = titleHeight + gridChromeRows + (pos.Slot - m.scrollOffset)
	return x, y
}

// renderedRows returns how many slot rows are drawn at the current scroll.
func (m Model) renderedRows() int {
	return max(0, min(m.layoutCache.VisibleRows, schedule.SlotCount-m.scrollOffset))
}

func (m *Model) clampScroll() {
	maxOffset := max(0, schedule.SlotCount-m.layoutCache.VisibleRows)
	m.scrollOffset = max(0, min(maxOffset, m.scrollOffset))
}

func (m *Model) ensureCursorVisible() {
	visible := m.layoutCache.VisibleRows
	if m.cursor.Slot < m.scrollOffset {
		m.scrollOffset = m.cursor.Slot
	}
	if m.cursor.Slot >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor.Slot - visible + 1
	}
	m.clampScroll()
}
