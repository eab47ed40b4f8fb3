package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/weekpick/internal/db"
	"github.com/javiermolinar/weekpick/internal/schedule"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <database_path>",
		Short: "Import selections from another database",
		Long: `Import every block from another weekpick database into the current
one. Blocks that overlap a block already stored for the same day are skipped.

Example:
  weekpick import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			destPath, err := resolvePath(a.config.Storage.DBPath)
			if err != nil {
				return err
			}
			if sourcePath == destPath {
				return fmt.Errorf("source database matches current database")
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source database does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source database: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source database path is a directory: %s", sourcePath)
			}

			result, err := importBlocks(context.Background(), a.repo, sourcePath)
			if err != nil {
				return err
			}

			a.logger.Info("blocks imported",
				zap.String("source", sourcePath),
				zap.Int("imported", result.Imported),
				zap.Int("skipped", result.Skipped),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d blocks from %s\n", result.Imported, sourcePath)
			if result.Skipped > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatWarn(fmt.Sprintf("Skipped %d overlapping blocks", result.Skipped)))
			}
			return nil
		},
	}

	return cmd
}

type importResult struct {
	Imported int
	Skipped  int
}

// importBlocks merges every block of the source database into dest. Each
// block goes through the same overlap check as an interactive commit.
func importBlocks(ctx context.Context, dest schedule.Repository, sourcePath string) (importResult, error) {
	var result importResult

	sourceRepo, err := db.New(sourcePath)
	if err != nil {
		return result, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = sourceRepo.Close() }()

	incoming, err := sourceRepo.Load(ctx)
	if err != nil {
		return result, fmt.Errorf("loading source blocks: %w", err)
	}
	selected, err := dest.Load(ctx)
	if err != nil {
		return result, fmt.Errorf("loading current blocks: %w", err)
	}

	for _, day := range incoming.Days() {
		changed := false
		for _, iv := range incoming.Blocks(day) {
			updated, err := selected.Commit(day, iv)
			if errors.Is(err, schedule.ErrOverlap) {
				result.Skipped++
				continue
			}
			if err != nil {
				return result, fmt.Errorf("importing %s %s: %w", day, iv, err)
			}
			selected = updated
			changed = true
			result.Imported++
		}
		if !changed {
			continue
		}
		if err := dest.SaveDay(ctx, day, selected[day]); err != nil {
			return result, fmt.Errorf("saving %s: %w", day, err)
		}
	}

	return result, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
