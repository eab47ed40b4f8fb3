package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekpick/internal/tui/commands"
	"github.com/javiermolinar/weekpick/internal/tui/view"
)

func commitKeys() []tea.Msg {
	return []tea.Msg{keyMsg(tea.KeyEnter), keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter)}
}

func TestContextMenu_MoveWraps(t *testing.T) {
	var c ContextMenu
	c.Open(0, "Mon 1/6", 0, 0)
	c.Move(-1)
	if c.Index() != len(menuItems)-1 {
		t.Errorf("index = %d, want last item", c.Index())
	}
	c.Move(1)
	if c.Index() != 0 {
		t.Errorf("index = %d, want 0", c.Index())
	}
}

func TestContextMenu_ClampsToScreen(t *testing.T) {
	var c ContextMenu
	c.Open(4, "Fri 1/10", 95, 38)
	w, h := c.size()

	left, top := c.origin(100, 40)
	if left != 100-w || top != 40-h {
		t.Errorf("origin = (%d,%d), want (%d,%d)", left, top, 100-w, 40-h)
	}

	i, ok := c.ItemAt(left+1, top+view.MenuBodyOffset+1, 100, 40)
	if !ok || i != 1 {
		t.Errorf("ItemAt = %d,%v; want 1,true", i, ok)
	}
	if _, ok := c.ItemAt(left+1, top, 100, 40); ok {
		t.Error("the border row is not an item")
	}
}

func TestMenu_ResetDayByKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, commitKeys()...)
	m = send(t, m, keyMsg(tea.KeyLeft))
	m = send(t, m, commitKeys()...)
	if m.Selected().Len() != 2 {
		t.Fatalf("setup: got %d blocks, want 2", m.Selected().Len())
	}

	m = send(t, m, runeMsg('m'))
	if !m.menu.Active() || m.menu.Col() != 1 {
		t.Fatalf("menu active=%v col=%d, want open on Tuesday", m.menu.Active(), m.menu.Col())
	}
	m = send(t, m, keyMsg(tea.KeyEnter))

	if m.menu.Active() {
		t.Error("menu should close after an action")
	}
	if got := m.Selected().Blocks("Tue 1/7"); len(got) != 0 {
		t.Errorf("Tuesday blocks = %v, want none", got)
	}
	if got := m.Selected().Blocks("Wed 1/8"); len(got) != 1 {
		t.Errorf("Wednesday blocks = %v, want untouched", got)
	}
	if m.statusMsg != "Cleared Tue 1/7" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestMenu_EscCloses(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runeMsg('m'), keyMsg(tea.KeyDown), keyMsg(tea.KeyEsc))
	if m.menu.Active() {
		t.Error("esc should close the menu")
	}
	if m.gesture.Active() {
		t.Error("esc in the menu should not reach the grid")
	}
}

func TestMenu_CopyDayByMouse(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, WithClipboard(clip.write))
	m = send(t, m, commitKeys()...)
	m = send(t, m, keyMsg(tea.KeyRight))
	m = send(t, m, commitKeys()...)

	m = send(t, m, press(m, Position{Day: 2, Slot: 0}, tea.MouseButtonRight))
	left, top := m.menu.origin(m.width, m.height)
	item := tea.MouseMsg{X: left + 2, Y: top + view.MenuBodyOffset + 1, Action: tea.MouseActionMotion}
	m = send(t, m, item)
	if m.menu.Index() != 1 {
		t.Fatalf("hover highlighted %d, want 1", m.menu.Index())
	}

	item.Action = tea.MouseActionPress
	item.Button = tea.MouseButtonLeft
	updated, cmd := m.Update(item)
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("copy should return a command")
	}
	msg := cmd()
	if _, ok := msg.(commands.CopiedMsg); !ok {
		t.Fatalf("cmd returned %T, want CopiedMsg", msg)
	}

	want := "Wed 1/8\n10:00 AM - 10:30 AM EST"
	if clip.text != want {
		t.Errorf("clipboard = %q, want %q", clip.text, want)
	}
}
