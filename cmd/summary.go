package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/formatter"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
)

var (
	summaryDays  int
	summaryHabit string
)

func NewSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show habit summary and trends",
		Long: `Summarize every habit over a window, or show the daily trend of one habit.

Examples:
  # Last 7 days of everything
  wellness summary

  # Sleep trend over the last month
  wellness summary --habit sleep --days 30 -o json`,
		Args: cobra.NoArgs,
		RunE: runSummary,
	}

	cmd.Flags().IntVarP(&summaryDays, "days", "d", 7, "Number of days to include")
	cmd.Flags().StringVar(&summaryHabit, "habit", "", "Show the trend of one habit")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")

	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return withTracker(cmd.Context(), func(t *habit.Tracker) error {
		if summaryHabit != "" {
			tr, err := t.Trend(cmd.Context(), summaryHabit, summaryDays)
			if err != nil {
				return err
			}
			return formatter.DisplayTrend(out, tr, outputFormat)
		}

		stats, err := t.Summary(cmd.Context(), summaryDays)
		if err != nil {
			return err
		}
		return formatter.DisplaySummary(out, stats, summaryDays, outputFormat)
	})
}
