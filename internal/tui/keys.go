package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/weekpick/internal/dateutil"
	"github.com/javiermolinar/weekpick/internal/schedule"
)

// keyMap defines the key bindings of the grid and the context menu.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Cancel   key.Binding
	Menu     key.Binding
	Copy     key.Binding
	Reset    key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next day"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "anchor/commit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "day menu"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset all"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("[", "H", "shift+left"),
			key.WithHelp("[", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("]", "L", "shift+right"),
			key.WithHelp("]", "next week"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "this week"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Cancel, k.Menu, k.Copy, k.Reset, k.PrevWeek, k.NextWeek, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown},
		{k.Select, k.Cancel, k.Menu},
		{k.Copy, k.Reset},
		{k.PrevWeek, k.NextWeek, k.Today},
		{k.Help, k.Quit},
	}
}

func (k keyMap) allBindings() []key.Binding {
	var all []key.Binding
	for _, group := range k.FullHelp() {
		all = append(all, group...)
	}
	return all
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key", zap.String("key", msg.String()))

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.menu.Active() {
		return m.handleMenuKeys(msg)
	}
	return m.handleGridKeys(msg)
}

// handleGridKeys handles keys while the grid has focus. Cursor moves feed
// the gesture as pointer-enter events and Select as pointer-down.
func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(0, -1), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(0, 1), nil
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(-1, 0), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(1, 0), nil
	case key.Matches(msg, m.keys.PageUp):
		return m.moveCursor(0, -m.layoutCache.VisibleRows), nil
	case key.Matches(msg, m.keys.PageDown):
		return m.moveCursor(0, m.layoutCache.VisibleRows), nil

	case key.Matches(msg, m.keys.Select):
		return m.pointerDown(m.cursor)
	case key.Matches(msg, m.keys.Cancel):
		if m.gesture.Active() {
			m.logger.Debug("gesture cancelled", zap.String("day", string(m.gesture.Day())))
			m.gesture.Cancel()
		}
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		x, y := m.cellOrigin(m.cursor)
		m = m.openMenu(m.cursor.Day, x, y)
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyAll()
	case key.Matches(msg, m.keys.Reset):
		return m.resetAll()

	case key.Matches(msg, m.keys.PrevWeek):
		return m.shiftWeek(-1), nil
	case key.Matches(msg, m.keys.NextWeek):
		return m.shiftWeek(1), nil
	case key.Matches(msg, m.keys.Today):
		return m.jumpToWeek(m.now()), nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// handleMenuKeys handles keys while the context menu is open.
func (m Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.menu.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.menu.Move(1)
	case key.Matches(msg, m.keys.Select):
		return m.activateMenuItem(m.menu.Index())
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Quit):
		m.menu.Close()
	}
	return m, nil
}

// moveCursor moves the cursor by (dx, dy), clamped to the grid, and reports
// the new cell to the gesture as a pointer-enter.
func (m Model) moveCursor(dx, dy int) Model {
	m.cursor.Day = max(0, min(dateutil.DaysShown-1, m.cursor.Day+dx))
	m.cursor.Slot = max(0, min(schedule.SlotCount-1, m.cursor.Slot+dy))
	m.ensureCursorVisible()
	return m.pointerEnter(m.cursor)
}
