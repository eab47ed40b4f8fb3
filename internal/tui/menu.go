package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/javiermolinar/weekpick/internal/schedule"
	"github.com/javiermolinar/weekpick/internal/tui/view"
)

type menuAction int

const (
	menuResetDay menuAction = iota
	menuCopyDay
	menuClose
)

var menuItems = []struct {
	label  string
	action menuAction
}{
	{"Reset day", menuResetDay},
	{"Copy day", menuCopyDay},
	{"Close", menuClose},
}

// ContextMenu is the per-day popup opened with a right click or the menu key.
// It is drawn as an overlay anchored at the point it was opened from and
// clamped to the screen.
type ContextMenu struct {
	active bool
	col    int
	title  string
	x, y   int
	index  int
}

// Open shows the menu for a day column at screen position (x, y).
func (c *ContextMenu) Open(col int, day schedule.DayKey, x, y int) {
	c.active = true
	c.col = col
	c.title = string(day)
	c.x, c.y = x, y
	c.index = 0
}

// Close hides the menu.
func (c *ContextMenu) Close() {
	c.active = false
}

// Active reports whether the menu is visible.
func (c ContextMenu) Active() bool {
	return c.active
}

// Col returns the day column the menu acts on.
func (c ContextMenu) Col() int {
	return c.col
}

// Index returns the highlighted item.
func (c ContextMenu) Index() int {
	return c.index
}

// Move moves the highlight by delta, wrapping around.
func (c *ContextMenu) Move(delta int) {
	n := len(menuItems)
	c.index = ((c.index+delta)%n + n) % n
}

// Highlight selects item i if it exists.
func (c *ContextMenu) Highlight(i int) {
	if i >= 0 && i < len(menuItems) {
		c.index = i
	}
}

// size returns the rendered box size including its border.
func (c ContextMenu) size() (w, h int) {
	w = lipgloss.Width(c.title)
	for _, item := range menuItems {
		w = max(w, lipgloss.Width(item.label)+2)
	}
	return w + 2, len(menuItems) + 1 + 2
}

// origin returns the top-left corner of the box on a width x height screen.
func (c ContextMenu) origin(width, height int) (left, top int) {
	w, h := c.size()
	left = max(0, min(c.x, width-w))
	top = max(0, min(c.y, height-h))
	return left, top
}

// ItemAt returns the item under a screen coordinate.
func (c ContextMenu) ItemAt(x, y, width, height int) (int, bool) {
	if !c.active {
		return 0, false
	}
	left, top := c.origin(width, height)
	w, _ := c.size()
	if x < left || x >= left+w {
		return 0, false
	}
	i := y - top - view.MenuBodyOffset
	if i < 0 || i >= len(menuItems) {
		return 0, false
	}
	return i, true
}

// Contains reports whether a screen coordinate falls inside the box.
func (c ContextMenu) Contains(x, y, width, height int) bool {
	left, top := c.origin(width, height)
	w, h := c.size()
	return x >= left && x < left+w && y >= top && y < top+h
}

// Render implements view.OverlayRenderer.
func (c ContextMenu) Render(base string, width, height int, content string) string {
	if !c.active || width <= 0 || height <= 0 {
		return base
	}
	left, top := c.origin(width, height)
	return view.Splice(base, content, left, top, width, height)
}

func (m Model) renderMenu() string {
	labels := make([]string, len(menuItems))
	for i, item := range menuItems {
		labels[i] = item.label
	}
	return view.RenderMenu(view.MenuViewState{
		Title:       m.menu.title,
		Items:       labels,
		Active:      m.menu.index,
		BoxStyle:    m.styles.MenuBoxStyle,
		TitleStyle:  m.styles.MenuTitleStyle,
		ItemStyle:   m.styles.MenuItemStyle,
		ActiveStyle: m.styles.MenuActiveStyle,
	})
}

// openMenu opens the context menu for a day column. An in-progress gesture
// is cancelled.
func (m Model) openMenu(col, x, y int) Model {
	if m.loading {
		return m
	}
	if m.gesture.Active() {
		m.gesture.Cancel()
	}
	day := m.dayKey(col)
	m.menu.Open(col, day, x, y)
	m.logger.Debug("menu opened", zap.String("day", string(day)))
	return m
}

// activateMenuItem runs item i and closes the menu.
func (m Model) activateMenuItem(i int) (tea.Model, tea.Cmd) {
	col := m.menu.Col()
	m.menu.Close()
	if i < 0 || i >= len(menuItems) {
		return m, nil
	}
	switch menuItems[i].action {
	case menuResetDay:
		return m.resetDay(col)
	case menuCopyDay:
		return m.copyDay(col)
	}
	return m, nil
}
