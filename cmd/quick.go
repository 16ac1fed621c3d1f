package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
)

type quickQuestion struct {
	habit    string
	question string
}

var quickQuestions = []quickQuestion{
	{"sleep", "How many hours did you sleep? "},
	{"water", "How much water did you drink? (liters) "},
	{"exercise", "How many minutes of exercise? "},
	{"mood", "Rate your mood (1-10): "},
}

func NewQuickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quick",
		Short: "Quick interactive habit tracking session",
		Long: `Prompt for today's sleep, water, exercise and mood. Press Enter to skip
a habit.`,
		Args: cobra.NoArgs,
		RunE: runQuick,
	}
}

func runQuick(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	printHeader(out, "🎯 Quick Habit Tracking")
	fmt.Fprintln(out, "Enter your habits for today (press Enter to skip):")

	return withTracker(cmd.Context(), func(t *habit.Tracker) error {
		tracked := 0
		for _, q := range quickQuestions {
			answer, ok := prompt(out, in, q.question)
			if !ok {
				break
			}
			if answer == "" {
				continue
			}
			value, err := strconv.ParseFloat(answer, 64)
			if err != nil {
				printError(out, fmt.Sprintf("Invalid input for %s", q.habit))
				continue
			}
			e, err := t.Track(cmd.Context(), q.habit, value, "", "", time.Time{})
			if err != nil {
				printError(out, err.Error())
				continue
			}
			printSuccess(out, fmt.Sprintf("Tracked %s: %g %s", e.Habit, e.Value, e.Unit))
			tracked++
		}
		fmt.Fprintf(out, "\n✅ Quick tracking complete! (%d tracked)\n", tracked)
		return nil
	})
}
