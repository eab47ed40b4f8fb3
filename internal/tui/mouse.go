package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

// handleMouseMsg handles mouse input. Presses on grid cells drive the
// selection gesture and motion over the anchored column moves its live
// endpoint.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollOffset -= wheelStep
		m.clampScroll()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollOffset += wheelStep
		m.clampScroll()
		return m, nil
	}

	if m.menu.Active() {
		return m.handleMenuMouse(msg)
	}

	hit, ok := m.hitTest(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if !ok {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			if hit.Header {
				return m, nil
			}
			return m.pointerDown(hit.Pos)
		case tea.MouseButtonRight:
			if !hit.Header {
				m.cursor = hit.Pos
			}
			return m.openMenu(hit.Pos.Day, msg.X, msg.Y), nil
		}

	case tea.MouseActionMotion:
		if ok && !hit.Header {
			return m.pointerEnter(hit.Pos), nil
		}
	}
	return m, nil
}

// handleMenuMouse highlights menu items on hover and activates them on a
// left press. A press outside the menu closes it.
func (m Model) handleMenuMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	item, onItem := m.menu.ItemAt(msg.X, msg.Y, m.width, m.height)

	switch msg.Action {
	case tea.MouseActionMotion:
		if onItem {
			m.menu.Highlight(item)
		}
	case tea.MouseActionPress:
		switch {
		case onItem && msg.Button == tea.MouseButtonLeft:
			return m.activateMenuItem(item)
		case !m.menu.Contains(msg.X, msg.Y, m.width, m.height):
			m.menu.Close()
		}
	}
	return m, nil
}
