package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/weekpick/internal/summary"
)

func (a *App) summaryCmd() *cobra.Command {
	var (
		copyText bool
		table    bool
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the stored availability",
		Long: `Print every stored day with its merged ranges, ordered by month
and day, in the same text the grid copies to the clipboard.

Example:
  weekpick summary --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			configureColor(out, noColor)

			if err := a.ensureRepo(); err != nil {
				return err
			}
			selected, err := a.repo.Load(context.Background())
			if err != nil {
				return fmt.Errorf("loading selections: %w", err)
			}

			days := summary.Format(selected, summary.Options{ZoneLabel: a.config.Grid.ZoneLabel})
			if len(days) == 0 {
				fmt.Fprintln(out, formatMuted("No availability selected."))
				return nil
			}

			if table {
				printSummaryTable(out, days, isTerminal(out))
			} else {
				printSummaryText(out, days)
			}

			if copyText {
				text := summary.ClipboardText(days)
				if err := a.clipboard(text); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				a.logger.Info("summary copied", zap.Int("bytes", len(text)))
				fmt.Fprintln(out, formatStats("Copied!"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyText, "copy", false, "Also copy the summary to the clipboard")
	cmd.Flags().BoolVar(&table, "table", false, "Print a table with durations")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}

// printSummaryText prints the clipboard text with colored day headers.
func printSummaryText(w io.Writer, days []summary.DaySummary) {
	for i, day := range days {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, formatHeader(string(day.Day)))
		for _, r := range day.Ranges {
			fmt.Fprintln(w, formatRange(r))
		}
	}
}

// printSummaryTable prints one row per merged range and a closing total.
func printSummaryTable(w io.Writer, days []summary.DaySummary, tty bool) {
	tbl := uitable.New()
	tbl.Separator = "  "
	if tty {
		tbl.MaxColWidth = uint(max(20, termWidth()/2))
		tbl.Wrap = true
	}

	tbl.AddRow(formatHeader("Day"), formatHeader("Range"), formatHeader("Duration"))
	for _, day := range days {
		for i, r := range day.Ranges {
			label := ""
			if i == 0 {
				label = string(day.Day)
			}
			mins := int(day.Merged[i].Duration().Minutes())
			tbl.AddRow(label, formatRange(r), summary.FormatMinutes(mins))
		}
	}

	total := summary.Total(days)
	tbl.AddRow("", "", "")
	tbl.AddRow(formatStats("Total"), formatMuted(fmt.Sprintf("%d ranges on %d days", total.Ranges, total.Days)), formatStats(summary.FormatMinutes(total.Minutes)))
	fmt.Fprintln(w, strings.TrimRight(tbl.String(), " "))
}
