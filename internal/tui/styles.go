// Package tui provides the terminal user interface for weekpick.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekpick/internal/schedule"
	"github.com/javiermolinar/weekpick/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color

	// Title bar
	TitleStyle     lipgloss.Style
	WeekLabelStyle lipgloss.Style
	HintStyle      lipgloss.Style

	// Header styles
	HeaderStyle         lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column
	TimeHourStyle    lipgloss.Style
	TimeQuarterStyle lipgloss.Style

	// Grid cells
	EmptyCellStyle   lipgloss.Style
	PreviewCellStyle lipgloss.Style
	CursorStyle      lipgloss.Style
	BorderStyle      lipgloss.Style

	// Summary panel
	PanelTitleStyle lipgloss.Style
	PanelDayStyle   lipgloss.Style
	PanelRangeStyle lipgloss.Style
	PanelMutedStyle lipgloss.Style

	// Status message
	StatusStyle        lipgloss.Style
	StatusWarningStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
	StatusSuccessStyle lipgloss.Style

	// Help text
	HelpStyle     lipgloss.Style
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style

	// Context menu
	MenuBoxStyle    lipgloss.Style
	MenuTitleStyle  lipgloss.Style
	MenuItemStyle   lipgloss.Style
	MenuActiveStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	palette := theme.NewPalette(t)
	s := &Styles{
		palette:          palette,
		colorBg:          palette.Bg,
		colorBgHighlight: palette.BgHighlight,
		colorFg:          palette.Fg,
		colorFgMuted:     palette.FgMuted,
		colorAccent:      palette.Accent,
	}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent).
		Background(palette.Bg)
	s.WeekLabelStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.Bg)
	s.HintStyle = lipgloss.NewStyle().
		Foreground(palette.Preview).
		Background(palette.Bg)

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent).
		Background(palette.Bg)
	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(palette.Fg).
		Background(palette.Bg)
	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(palette.Accent)

	s.TimeHourStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Right).
		Padding(0, 1).
		Foreground(palette.Fg).
		Background(palette.Bg)
	s.TimeQuarterStyle = s.TimeHourStyle.
		Bold(false).
		Foreground(palette.FgMuted)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Background(palette.Bg)
	s.PreviewCellStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnPreview).
		Background(palette.PreviewBg)
	s.CursorStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(palette.TextOnCursor).
		Background(palette.Cursor)
	s.BorderStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent)
	s.PanelDayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Fg)
	s.PanelRangeStyle = lipgloss.NewStyle().
		Foreground(palette.Fg)
	s.PanelMutedStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.Bg)
	s.StatusWarningStyle = s.StatusStyle.
		Bold(true).
		Foreground(palette.Warning)
	s.StatusErrorStyle = s.StatusStyle.
		Bold(true).
		Foreground(palette.Warning).
		Underline(true)
	s.StatusSuccessStyle = s.StatusStyle.
		Bold(true).
		Foreground(palette.Success)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)
	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(palette.Accent)
	s.HelpDescStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted)

	s.MenuBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Menu.Border).
		BorderBackground(palette.Menu.Bg).
		Background(palette.Menu.Bg)
	s.MenuTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(palette.Accent).
		Background(palette.Menu.Bg)
	s.MenuItemStyle = lipgloss.NewStyle().
		Foreground(palette.Menu.Text).
		Background(palette.Menu.Bg)
	s.MenuActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Menu.ActiveText).
		Background(palette.Menu.Active)

	return s
}

// RangeCellStyle returns the fill style of a merged range color.
func (s *Styles) RangeCellStyle(c schedule.Color) lipgloss.Style {
	rc := s.palette.Range(c)
	return lipgloss.NewStyle().
		Foreground(rc.Fg).
		Background(rc.Bg)
}

// RangeSwatchStyle returns a foreground-only style of a merged range color.
func (s *Styles) RangeSwatchStyle(c schedule.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.palette.Range(c).Bg)
}
