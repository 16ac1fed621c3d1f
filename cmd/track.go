package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

var (
	trackNotes string
	trackDate  string
)

func NewTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track HABIT VALUE [UNIT]",
		Short: "Track a daily habit",
		Long: `Record one measurement of a habit. The unit defaults to the habit's
primary unit.

Habits: ` + strings.Join(habit.Names(), ", ") + `

Examples:
  # Log last night's sleep
  wellness track sleep 7.5

  # Log water in cups with a note
  wellness track water 6 cups -n "after workout"

  # Backfill a past day
  wellness track exercise 45 minutes -d 2024-05-01`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runTrack,
	}

	cmd.Flags().StringVarP(&trackNotes, "notes", "n", "", "Optional notes")
	cmd.Flags().StringVarP(&trackDate, "date", "d", "", "Date (YYYY-MM-DD, DD/MM/YYYY or MM/DD/YYYY; defaults to now)")

	return cmd
}

func runTrack(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return model.NewValidationError("value", "%q is not a number", args[1])
	}
	var unit string
	if len(args) == 3 {
		unit = args[2]
	}

	var at time.Time
	if trackDate != "" {
		if at, err = habit.ParseDate(trackDate, time.Local); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	return withTracker(cmd.Context(), func(t *habit.Tracker) error {
		e, err := t.Track(cmd.Context(), args[0], value, unit, trackNotes, at)
		if err != nil {
			return err
		}
		printSuccess(out, fmt.Sprintf("Successfully tracked %s: %g %s", e.Habit, e.Value, e.Unit))
		if e.Notes != "" {
			fmt.Fprintf(out, "📝 Note: %s\n", e.Notes)
		}
		return nil
	})
}
