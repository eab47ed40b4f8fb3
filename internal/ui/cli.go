// Package ui implements the weekpick command line.
package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/weekpick/internal/config"
	"github.com/javiermolinar/weekpick/internal/dateutil"
	"github.com/javiermolinar/weekpick/internal/logging"
	"github.com/javiermolinar/weekpick/internal/schedule"
	"github.com/javiermolinar/weekpick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// ErrNoStore is returned by commands that need persistence when db_path is empty.
var ErrNoStore = errors.New("persistence is disabled (storage.db_path is empty)")

// App holds the CLI application state.
type App struct {
	repo       schedule.Repository
	ownsRepo   bool
	config     *config.Config
	configPath string
	logger     *zap.Logger
	clipboard  func(string) error
	now        func() time.Time
	root       *cobra.Command

	debug bool   // enable the debug log file
	date  string // initial week of the TUI
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened from the config on first use.
func NewApp(repo schedule.Repository, cfg *config.Config) *App {
	a := &App{
		repo:       repo,
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		logger:     zap.NewNop(),
		clipboard:  clipboard.WriteAll,
		now:        time.Now,
	}

	a.root = &cobra.Command{
		Use:   "weekpick",
		Short: "Pick your weekly availability on a 15-minute grid",
		Long: `Weekpick shows Monday to Friday from 8:00 AM to 8:00 PM in
15-minute slots. Click a slot to anchor a block, click again to commit it,
and copy the merged ranges as plain text to share your availability.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logging.New(a.config.Log, a.debug)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ref, err := dateutil.ParseWeekRef(a.date, a.now())
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil && !errors.Is(err, ErrNoStore) {
				return err
			}
			return tui.Run(a.repo, a.config,
				tui.WithLogger(a.logger),
				tui.WithWeek(ref),
			)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging to the configured log file")
	a.root.Flags().StringVar(&a.date, "date", "", "Initial week: YYYY-MM-DD, today, next-week, last-week or a weekday name")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.summaryCmd())
	a.root.AddCommand(a.resetCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weekpick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured store if no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	if !a.config.PersistenceEnabled() {
		return ErrNoStore
	}
	repo, err := tui.OpenRepo(a.config)
	if err != nil {
		return err
	}
	a.repo = repo
	a.ownsRepo = true
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if a.ownsRepo && a.repo != nil {
		return a.repo.Close()
	}
	return nil
}
