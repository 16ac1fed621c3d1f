package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/cmd"
)

var (
	version = "v1.0.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wellness",
		Short: "AI Wellness Assistant",
		Long: `Track daily habits, get wellness advice and check symptoms for red flags.

The symptom checker is not a diagnosis. In an emergency call your local
emergency number.`,
		SilenceUsage:      true,
		PersistentPreRunE: cmd.Setup,
		PersistentPostRun: cmd.Teardown,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddPersistentFlags(rootCmd)

	rootCmd.AddCommand(
		cmd.NewTrackCmd(),
		cmd.NewQuickCmd(),
		cmd.NewSummaryCmd(),
		cmd.NewAskCmd(),
		cmd.NewChatCmd(),
		cmd.NewSymptomCmd(),
		cmd.NewTipsCmd(),
		cmd.NewHistoryCmd(),
		cmd.NewExportCmd(),
		cmd.NewConfigCmd(),
		cmd.NewServeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintf(c.OutOrStdout(), "wellness version %s\n", version)
		},
	}
}
