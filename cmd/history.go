package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/formatter"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
)

var (
	historyHabit string
	historyDays  int
	historyLimit int
)

func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent habit entries",
		Long: `List recent entries, newest first.

Examples:
  wellness history
  wellness history --habit water -d 30 -l 10`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().StringVar(&historyHabit, "habit", "", "Filter by habit")
	cmd.Flags().IntVarP(&historyDays, "days", "d", 7, "Number of days to show")
	cmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum entries to show")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return withTracker(cmd.Context(), func(t *habit.Tracker) error {
		entries, err := t.Recent(cmd.Context(), historyHabit, historyDays)
		if err != nil {
			return err
		}
		if len(entries) == 0 && outputFormat == formatter.FormatHuman {
			fmt.Fprintf(out, "📜 No entries found for the last %d days\n", historyDays)
			return nil
		}
		total := len(entries)
		if historyLimit >= 0 && len(entries) > historyLimit {
			entries = entries[:historyLimit]
		}
		if outputFormat == formatter.FormatHuman {
			printHeader(out, fmt.Sprintf("📜 Recent Habit Entries (%d of %d)", len(entries), total))
		}
		return formatter.DisplayHistory(out, entries, outputFormat)
	})
}
