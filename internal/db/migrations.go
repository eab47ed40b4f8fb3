package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS blocks (
			id         TEXT PRIMARY KEY,
			day_key    TEXT NOT NULL,
			start_at   TEXT NOT NULL,
			end_at     TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(day_key, start_at)
		);

		CREATE INDEX IF NOT EXISTS idx_blocks_day ON blocks(day_key);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating blocks table: %w", err)
	}

	return nil
}
