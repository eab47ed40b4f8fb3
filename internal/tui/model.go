package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/weekpick/internal/config"
	"github.com/javiermolinar/weekpick/internal/dateutil"
	"github.com/javiermolinar/weekpick/internal/schedule"
	"github.com/javiermolinar/weekpick/internal/tui/commands"
	"github.com/javiermolinar/weekpick/internal/tui/theme"
)

// Position represents a cursor position in the grid.
type Position struct {
	Day  int // 0=Monday, 4=Friday
	Slot int // 0=08:00, SlotCount-1=20:00
}

// statusKind selects the footer style of the status message.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo      schedule.Repository
	store     *commands.Writer
	config    *config.Config
	logger    *zap.Logger
	clipboard commands.ClipboardWriter
	now       func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	keys   keyMap
	help   help.Model

	// Selection state
	selected     schedule.SelectedTimes
	gesture      schedule.Gesture
	resetCounter uint64
	merges       *schedule.MergeCache

	// Displayed week
	weekRef time.Time
	days    [dateutil.DaysShown]time.Time
	cursor  Position
	menu    ContextMenu
	loading bool

	// Terminal dimensions and layout
	width        int
	height       int
	scrollOffset int

	// Cached render data
	styleCache  StyleCache
	layoutCache LayoutCache

	// Messages
	statusMsg  string
	statusKind statusKind
	statusSeq  int

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the debug logger.
func WithLogger(logger *zap.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write commands.ClipboardWriter) ModelOption {
	return func(m *Model) {
		if write != nil {
			m.clipboard = write
		}
	}
}

// WithNow sets the clock used for "today".
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithWeek sets the initially displayed week by any day inside it.
func WithWeek(ref time.Time) ModelOption {
	return func(m *Model) {
		if !ref.IsZero() {
			m.weekRef = ref
		}
	}
}

// New creates a new TUI model. repo may be nil, in which case selections
// live only in memory.
func New(repo schedule.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle
	h.Styles.FullSeparator = styles.HelpStyle

	m := &Model{
		repo:      repo,
		store:     commands.NewWriter(repo),
		config:    cfg,
		logger:    zap.NewNop(),
		clipboard: clipboard.WriteAll,
		now:       time.Now,
		theme:     t,
		styles:    styles,
		keys:      defaultKeyMap(),
		help:      h,
		selected:  schedule.SelectedTimes{},
		merges:    schedule.NewMergeCache(),
		loading:   repo != nil,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.weekRef.IsZero() {
		m.weekRef = m.now()
	}
	m.days = dateutil.WeekDays(m.weekRef)
	m.cursor = Position{Day: m.todayColumn(), Slot: m.nowSlot()}
	m.layoutCache = m.buildLayoutCache(0, 0)
	m.styleCache = NewStyleCache(styles, m.layoutCache.ColWidth)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadSelections(m.repo)
}

// Run starts the TUI. The repository, when non-nil, is closed by the caller.
func Run(repo schedule.Repository, cfg *config.Config, opts ...ModelOption) error {
	model := New(repo, cfg, opts...)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if model.config.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	model.logger.Info("starting",
		zap.String("week", dateutil.WeekLabel(model.days)),
		zap.Bool("persistence", repo != nil),
		zap.Bool("mouse", model.config.UI.Mouse),
	)
	p := tea.NewProgram(model, programOpts...)
	_, err := p.Run()
	if err != nil {
		model.logger.Error("program exited", zap.Error(err))
	}
	return err
}

// Selected returns the committed selections.
func (m Model) Selected() schedule.SelectedTimes {
	return m.selected
}

// todayColumn returns today's column in the displayed week, or Monday when
// today is not displayed.
func (m Model) todayColumn() int {
	today := dateutil.TruncateToDay(m.now())
	for i, d := range m.days {
		if d.Equal(today) {
			return i
		}
	}
	return 0
}

// nowSlot returns the slot of the current time, clamped to the grid.
func (m Model) nowSlot() int {
	now := m.now()
	mins := (now.Hour()-schedule.GridStartHour)*60 + now.Minute()
	return max(0, min(schedule.SlotCount-1, mins/schedule.SlotMinutes))
}

// dayKey returns the selection key of a displayed column.
func (m Model) dayKey(col int) schedule.DayKey {
	return schedule.NewDayKey(m.days[col])
}

// instantAt returns the instant of a grid position.
func (m Model) instantAt(pos Position) time.Time {
	return schedule.SlotToInstant(m.days[pos.Day], pos.Slot)
}
