package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/advice"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
)

var tipsDaily bool

func NewTipsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tips [HABIT]",
		Short: "Get wellness tips and suggestions",
		Long: `Show suggestions for one habit, or today's wellness tip with --daily.

Examples:
  wellness tips sleep
  wellness tips --daily`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTips,
	}

	cmd.Flags().BoolVar(&tipsDaily, "daily", false, "Show the daily wellness tip")

	return cmd
}

func runTips(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch {
	case tipsDaily:
		fmt.Fprintln(out, advice.DailyTip(time.Now()))
	case len(args) == 1:
		name := strings.ToLower(strings.TrimSpace(args[0]))
		printHeader(out, fmt.Sprintf("💡 Tips for %s", name))
		fmt.Fprintln(out, advice.HabitSuggestions(name))
	default:
		printHeader(out, "💡 Available tip options:")
		fmt.Fprintln(out, "• Use --daily for daily wellness tip")
		fmt.Fprintf(out, "• Specify a habit (%s) for specific tips\n", strings.Join(habit.Names(), ", "))
	}
	return nil
}
