// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekpick/internal/schedule"
)

// SelectionsLoadedMsg is sent when stored selections are loaded.
type SelectionsLoadedMsg struct {
	Selected schedule.SelectedTimes
}

// DaySavedMsg is sent when a day's blocks are persisted.
type DaySavedMsg struct {
	Day        schedule.DayKey
	Blocks     int
	Superseded bool // a newer write for the day was already stored
}

// StoreClearedMsg is sent after every stored block was removed.
type StoreClearedMsg struct {
	Superseded bool
}

// LoadFailedMsg is sent when stored selections could not be loaded.
type LoadFailedMsg struct {
	Err error
}

// CopiedMsg is sent after text was written to the clipboard.
type CopiedMsg struct {
	Label string // what was copied, e.g. "week" or "Mon 1/6"
	Bytes int
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message with the same sequence.
type ClearStatusMsg struct {
	Seq int
}

// ClipboardWriter writes text to the system clipboard.
type ClipboardWriter func(text string) error

// LoadSelections loads every stored block.
func LoadSelections(repo schedule.Repository) tea.Cmd {
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		selected, err := repo.Load(context.Background())
		if err != nil {
			return LoadFailedMsg{Err: fmt.Errorf("loading selections: %w", err)}
		}
		return SelectionsLoadedMsg{Selected: selected}
	}
}

// CopyToClipboard writes text with write.
func CopyToClipboard(write ClipboardWriter, label, text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return StatusMsgCmd{Msg: "Nothing to copy"}
		}
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Label: label, Bytes: len(text)}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg for seq.
func ClearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
