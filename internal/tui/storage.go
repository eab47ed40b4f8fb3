package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/javiermolinar/weekpick/internal/config"
	"github.com/javiermolinar/weekpick/internal/db"
	"github.com/javiermolinar/weekpick/internal/schedule"
)

// OpenRepo opens the configured selection store, creating its directory
// when needed. It returns a nil repository when persistence is disabled.
func OpenRepo(cfg *config.Config) (schedule.Repository, error) {
	if !cfg.PersistenceEnabled() {
		return nil, nil
	}
	dbPath := cfg.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}
