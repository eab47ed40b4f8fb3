package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/weekpick/internal/dateutil"
	"github.com/javiermolinar/weekpick/internal/schedule"
)

func (a *App) resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset [day]",
		Short: "Clear stored availability",
		Long: `Clear the stored blocks of one day, or of every day when no day is
given. The day is a date (YYYY-MM-DD) or a day label as shown in the grid.

Example:
  weekpick reset "Mon 1/6"
  weekpick reset 2025-01-06
  weekpick reset`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				if err := a.repo.Clear(ctx); err != nil {
					return fmt.Errorf("clearing selections: %w", err)
				}
				a.logger.Info("store cleared")
				fmt.Fprintln(out, "Cleared all selections")
				return nil
			}

			day, err := parseDayArg(args[0])
			if err != nil {
				return err
			}
			if err := a.repo.DeleteDay(ctx, day); err != nil {
				return fmt.Errorf("clearing %s: %w", day, err)
			}
			a.logger.Info("day cleared", zap.String("day", string(day)))
			fmt.Fprintf(out, "Cleared %s\n", day)
			return nil
		},
	}
	return cmd
}

// parseDayArg accepts "YYYY-MM-DD" or a day key such as "Mon 1/6".
func parseDayArg(s string) (schedule.DayKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty day")
	}
	if d, err := dateutil.ParseDate(s, nil); err == nil {
		return schedule.NewDayKey(d), nil
	}
	key := schedule.DayKey(s)
	if _, _, err := schedule.ParseDayKey(key); err != nil {
		return "", fmt.Errorf("day must be YYYY-MM-DD or a label like \"Mon 1/6\": %w", err)
	}
	return key, nil
}
