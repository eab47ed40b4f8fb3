package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/weekpick/internal/dateutil"
	"github.com/javiermolinar/weekpick/internal/schedule"
	"github.com/javiermolinar/weekpick/internal/summary"
)

func (a *App) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <date> <start> <end>",
		Short: "Add an availability block",
		Long: `Add a block to the stored selections without opening the grid.

Times must fall on the 15-minute grid between 08:00 and 20:00. Blocks may
touch but not overlap existing blocks of the same day.

Example:
  weekpick add 2025-01-06 09:00 10:30`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, iv, err := parseBlock(args[0], args[1], args[2], time.Local)
			if err != nil {
				return err
			}

			ctx := context.Background()
			selected, err := a.repo.Load(ctx)
			if err != nil {
				return fmt.Errorf("loading selections: %w", err)
			}
			updated, err := selected.Commit(day, iv)
			if err != nil {
				return fmt.Errorf("adding %s %s: %w", day, iv, err)
			}
			if err := a.repo.SaveDay(ctx, day, updated[day]); err != nil {
				return fmt.Errorf("saving %s: %w", day, err)
			}

			a.logger.Info("block added", zap.String("day", string(day)), zap.Stringer("interval", iv))
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n",
				formatHeader(string(day)),
				formatRange(summary.FormatRange(iv, a.config.Grid.ZoneLabel)),
			)
			return nil
		},
	}
	return cmd
}

// parseBlock parses a date and two grid-aligned clock times into a day key
// and interval. The times may be given in either order.
func parseBlock(date, start, end string, loc *time.Location) (schedule.DayKey, schedule.Interval, error) {
	d, err := dateutil.ParseDate(date, loc)
	if err != nil {
		return "", schedule.Interval{}, err
	}

	var instants [2]time.Time
	for i, clock := range []string{start, end} {
		h, m, err := dateutil.ParseClock(clock)
		if err != nil {
			return "", schedule.Interval{}, err
		}
		at := dateutil.At(d, h, m)
		if _, ok := schedule.InstantToSlot(at); !ok {
			return "", schedule.Interval{}, fmt.Errorf("%s is not on the 15-minute grid between 08:00 and 20:00", clock)
		}
		instants[i] = at
	}

	return schedule.NewDayKey(d), schedule.NewInterval(instants[0], instants[1]), nil
}
