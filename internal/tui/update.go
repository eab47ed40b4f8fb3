package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/weekpick/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		m.styleCache = NewStyleCache(m.styles, m.layoutCache.ColWidth)
		m.help.Width = m.width
		m.ensureCursorVisible()
		return m, nil

	case commands.SelectionsLoadedMsg:
		m.loading = false
		if msg.Selected != nil {
			m.selected = msg.Selected
		}
		m.merges.Invalidate()
		m.logger.Info("selections loaded",
			zap.Int("days", len(m.selected.Days())),
			zap.Int("blocks", m.selected.Len()),
		)
		return m, nil

	case commands.LoadFailedMsg:
		// Unread rows must not be replaced by day snapshots.
		m.loading = false
		m.store = nil
		m.err = msg.Err
		m.logger.Error("load failed, changes stay in memory", zap.Error(msg.Err))
		return m.setStatus(statusError, "Error: "+msg.Err.Error()+" (changes will not be saved)", statusErrorTTL)

	case commands.DaySavedMsg:
		m.logger.Debug("day stored",
			zap.String("day", string(msg.Day)),
			zap.Int("blocks", msg.Blocks),
			zap.Bool("superseded", msg.Superseded),
		)
		return m, nil

	case commands.StoreClearedMsg:
		m.logger.Debug("store cleared", zap.Bool("superseded", msg.Superseded))
		return m, nil

	case commands.CopiedMsg:
		m.logger.Info("copied to clipboard", zap.String("label", msg.Label), zap.Int("bytes", msg.Bytes))
		return m.setStatus(statusSuccess, "Copied!", statusInfoTTL)

	case commands.ErrMsg:
		m.err = msg.Err
		m.logger.Error("command failed", zap.Error(msg.Err))
		return m.setStatus(statusError, "Error: "+msg.Err.Error(), statusErrorTTL)

	case commands.StatusMsgCmd:
		return m.setStatus(statusInfo, msg.Msg, statusWarningTTL)

	case commands.ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}
