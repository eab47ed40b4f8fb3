package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekpick/internal/dateutil"
	"github.com/javiermolinar/weekpick/internal/summary"
	"github.com/javiermolinar/weekpick/internal/tui/view"
)

// View renders the TUI.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	overlay := ""
	if m.menu.Active() {
		overlay = m.renderMenu()
	}
	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		OverlayContent:   overlay,
		ShowOverlay:      m.menu.Active(),
		Overlay:          m.menu,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache

	body := view.RenderGrid(m.gridViewState())
	if layout.ShowPanel {
		panel := view.RenderSummaryPanel(m.summaryPanelState(layout))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(layout.Width),
		body,
		view.RenderFooter(m.footerViewState(layout)),
	)
	return view.PadLinesWithBackground(content, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderTitle(width int) string {
	parts := []string{
		m.styles.TitleStyle.Render("weekpick"),
		m.styles.WeekLabelStyle.Render(dateutil.WeekLabel(m.days)),
	}
	if m.loading {
		parts = append(parts, m.styles.HintStyle.Render("loading…"))
	}
	if preview, ok := m.gesture.Preview(); ok {
		parts = append(parts, m.styles.HintStyle.Render(
			"selecting "+string(m.gesture.Day())+" "+summary.FormatRange(preview, m.config.Grid.ZoneLabel),
		))
	}
	return view.PlaceBox(width, titleHeight, lipgloss.Top, " "+strings.Join(parts, "  "), m.styles.colorBg)
}

func (m Model) gridViewState() view.GridViewState {
	headers, todayCols := view.HeaderLabels(m.days[:], m.now())
	headerStyles := make([]lipgloss.Style, len(headers))
	headerStyles[0] = m.styleCache.TimeHeader
	for i := 1; i < len(headers); i++ {
		headerStyles[i] = m.styleCache.DayHeader
		if todayCols[i] {
			headerStyles[i] = m.styleCache.DayHeaderToday
		}
	}

	rows, cellStyles := m.buildGridTableRows()
	return view.GridViewState{
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content: view.TableContent{
			Rows:       rows,
			CellStyles: cellStyles,
		},
		BorderStyle: m.styles.BorderStyle,
	}
}

func (m Model) summaryPanelState(layout LayoutCache) view.SummaryPanelState {
	return view.SummaryPanelState{
		Width:      layout.PanelWidth,
		Height:     layout.PanelHeight,
		Title:      "Availability",
		Days:       summary.Format(m.selected, m.summaryOptions()),
		EmptyText:  "Click two slots to add a block",
		TitleStyle: m.styles.PanelTitleStyle,
		DayStyle:   m.styles.PanelDayStyle,
		RangeStyle: m.styles.PanelRangeStyle,
		MutedStyle: m.styles.PanelMutedStyle,
		Swatch:     m.styles.RangeSwatchStyle,
		Bg:         m.styles.colorBg,
	}
}

func (m Model) footerViewState(layout LayoutCache) view.FooterViewState {
	return view.FooterViewState{
		InnerW:      layout.Width,
		StatusText:  m.statusText(),
		HelpText:    m.helpText(),
		StatusStyle: m.statusStyle(),
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	}
}

func (m Model) statusText() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	if m.gesture.Active() {
		return "Click or press space to set the end of the block, esc to cancel"
	}
	if m.selected.Len() == 0 {
		return "Click a slot to start a block"
	}
	return summary.FormatMinutes(summary.Total(summary.Format(m.selected, m.summaryOptions())).Minutes) + " selected"
}

func (m Model) statusStyle() lipgloss.Style {
	if m.statusMsg == "" {
		return m.styles.StatusStyle
	}
	switch m.statusKind {
	case statusSuccess:
		return m.styles.StatusSuccessStyle
	case statusWarning:
		return m.styles.StatusWarningStyle
	case statusError:
		return m.styles.StatusErrorStyle
	}
	return m.styles.StatusStyle
}

// helpText renders the key help on a single line; "?" widens it to every
// binding.
func (m Model) helpText() string {
	if m.help.ShowAll {
		return m.help.ShortHelpView(m.keys.allBindings())
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}
