package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MenuViewState holds data needed to render a context menu box.
type MenuViewState struct {
	Title       string
	Items       []string
	Active      int
	BoxStyle    lipgloss.Style
	TitleStyle  lipgloss.Style
	ItemStyle   lipgloss.Style
	ActiveStyle lipgloss.Style
}

// MenuBodyOffset is the number of lines between the top of the menu box and
// its first item: the border and the title.
const MenuBodyOffset = 2

// RenderMenu renders the title and items inside a bordered box. All item
// lines share the widest item's width so the highlight spans the box.
func RenderMenu(state MenuViewState) string {
	width := lipgloss.Width(state.Title)
	for _, item := range state.Items {
		width = max(width, lipgloss.Width(item)+2)
	}

	lines := make([]string, 0, len(state.Items)+1)
	lines = append(lines, state.TitleStyle.Width(width).Render(state.Title))
	for i, item := range state.Items {
		style := state.ItemStyle
		if i == state.Active {
			style = state.ActiveStyle
		}
		lines = append(lines, style.Width(width).Render(" "+item+" "))
	}

	return state.BoxStyle.Render(strings.Join(lines, "\n"))
}
