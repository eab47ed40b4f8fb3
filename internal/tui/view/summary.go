package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekpick/internal/schedule"
	"github.com/javiermolinar/weekpick/internal/summary"
)

// SummaryPanelState holds data needed to render the selection summary panel.
type SummaryPanelState struct {
	Width      int
	Height     int
	Title      string
	Days       []summary.DaySummary
	EmptyText  string
	TitleStyle lipgloss.Style
	DayStyle   lipgloss.Style
	RangeStyle lipgloss.Style
	MutedStyle lipgloss.Style
	Swatch     func(schedule.Color) lipgloss.Style
	Bg         lipgloss.Color
}

// SummaryLines renders the panel body lines, one per day label and range
// plus a blank line between days and a closing total.
func SummaryLines(state SummaryPanelState) []string {
	width := max(1, state.Width-2)
	fit := func(s string) string {
		return ansi.Truncate(s, width, "…")
	}

	lines := []string{state.TitleStyle.Render(fit(state.Title)), ""}
	if len(state.Days) == 0 {
		return append(lines, state.MutedStyle.Render(fit(state.EmptyText)))
	}

	for i, day := range state.Days {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, state.DayStyle.Render(fit(string(day.Day))))
		for j, r := range day.Ranges {
			swatch := "■"
			if state.Swatch != nil && j < len(day.Colors) {
				swatch = state.Swatch(day.Colors[j]).Render(swatch)
			}
			lines = append(lines, swatch+" "+state.RangeStyle.Render(ansi.Truncate(r, width-2, "…")))
		}
	}

	total := summary.Total(state.Days)
	lines = append(lines, "", state.MutedStyle.Render(fit(
		summary.FormatMinutes(total.Minutes)+" across "+plural(total.Days, "day"),
	)))
	return lines
}

// RenderSummaryPanel renders the summary panel, clipped to the panel height.
func RenderSummaryPanel(state SummaryPanelState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}
	lines := SummaryLines(state)
	if len(lines) > state.Height {
		lines = lines[:state.Height]
		lines[len(lines)-1] = state.MutedStyle.Render("…")
	}
	body := lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
	return PlaceBox(state.Width, state.Height, lipgloss.Top, body, state.Bg)
}

func plural(n int, word string) string {
	s := strconv.Itoa(n) + " " + word
	if n != 1 {
		s += "s"
	}
	return s
}
