package ui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/weekpick/internal/db"
	"github.com/javiermolinar/weekpick/internal/schedule"
)

func block(day, startH, startM, endH, endM int) schedule.Interval {
	return schedule.Interval{
		Start: time.Date(2025, 1, day, startH, startM, 0, 0, time.Local),
		End:   time.Date(2025, 1, day, endH, endM, 0, 0, time.Local),
	}
}

func seed(t *testing.T, repo schedule.Repository, day schedule.DayKey, blocks ...schedule.Interval) {
	t.Helper()
	selected := schedule.SelectedTimes{}
	for _, iv := range blocks {
		var err error
		if selected, err = selected.Commit(day, iv); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}
	}
	if err := repo.SaveDay(context.Background(), day, selected[day]); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}
}

func TestImportBlocks(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "source.db")
	destPath := filepath.Join(dir, "dest.db")

	sourceRepo, err := db.New(sourcePath)
	if err != nil {
		t.Fatalf("creating source repo: %v", err)
	}
	seed(t, sourceRepo, "Mon 1/6", block(6, 9, 0, 10, 0), block(6, 13, 0, 14, 0))
	seed(t, sourceRepo, "Tue 1/7", block(7, 11, 0, 12, 0))
	if err := sourceRepo.Close(); err != nil {
		t.Fatalf("closing source repo: %v", err)
	}

	destRepo, err := db.New(destPath)
	if err != nil {
		t.Fatalf("creating destination repo: %v", err)
	}
	defer func() { _ = destRepo.Close() }()
	seed(t, destRepo, "Mon 1/6", block(6, 9, 30, 10, 30))

	result, err := importBlocks(ctx, destRepo, sourcePath)
	if err != nil {
		t.Fatalf("importBlocks failed: %v", err)
	}
	if result.Imported != 2 || result.Skipped != 1 {
		t.Fatalf("result = %+v, want 2 imported, 1 skipped", result)
	}

	imported, err := destRepo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := len(imported.Blocks("Mon 1/6")); got != 2 {
		t.Errorf("Monday blocks = %d, want 2 (existing plus 13:00)", got)
	}
	if got := imported.Blocks("Tue 1/7"); len(got) != 1 || !got[0].Equal(block(7, 11, 0, 12, 0)) {
		t.Errorf("Tuesday blocks = %v", got)
	}
}

func TestImportBlocks_MissingSource(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.run(t, "import", filepath.Join(env.dir, "missing.db")); err == nil {
		t.Error("expected an error for a missing source")
	}
	if _, err := env.run(t, "import", env.cfg.Storage.DBPath); err == nil {
		t.Error("expected an error when importing the current database")
	}
}

func TestResolvePath(t *testing.T) {
	got, err := resolvePath("relative.db")
	if err != nil {
		t.Fatalf("resolvePath failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("resolvePath = %q, want absolute", got)
	}
	if _, err := resolvePath("  "); err == nil {
		t.Error("expected error for empty path")
	}
}
