package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/config"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
)

var (
	configInit  bool
	configForce bool
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration information",
		Long: `Show the effective configuration, or write a starter config file with
--init. API keys are never written to the file; keep them in the
environment or a .env file.

Examples:
  wellness config
  wellness config --init --config ./wellness.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}

	cmd.Flags().BoolVar(&configInit, "init", false, "Write the current configuration to the --config path")
	cmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file with --init")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	c := currentConfig()

	if configInit {
		if _, err := os.Stat(configPath); err == nil && !configForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", configPath)
		}
		if err := c.Save(configPath); err != nil {
			return err
		}
		printSuccess(out, fmt.Sprintf("Wrote configuration to %s", configPath))
		return nil
	}

	printHeader(out, "🔧 Configuration Information")
	fmt.Fprintf(out, "Config file:   %s\n", configPath)
	fmt.Fprintf(out, "Storage:       %s\n", c.Storage.Backend)
	fmt.Fprintf(out, "Storage path:  %s\n", storageLocation(c.Storage))
	fmt.Fprintf(out, "AI service:    %s\n", aiService(c.LLM))
	fmt.Fprintf(out, "Log level:     %s (%s)\n", c.Logging.Level, c.Logging.Format)
	fmt.Fprintf(out, "Debug mode:    %t\n", c.Logging.Debug)
	fmt.Fprintf(out, "Server port:   %d\n", c.Server.Port)
	fmt.Fprintf(out, "Export dir:    %s\n", c.Export.Dir)
	fmt.Fprintf(out, "\n📊 Available Habits: %s\n\n", strings.Join(habit.Names(), ", "))
	if c.LLM.Provider == "" {
		printHint(out, "Set GEMINI_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY in .env for AI features")
	}
	return nil
}

func storageLocation(s config.StorageConfig) string {
	switch s.Backend {
	case "json":
		return s.JSONPath
	case "postgres":
		return "(DATABASE_URL)"
	default:
		return s.Path
	}
}

func aiService(l config.LLMConfig) string {
	if l.Provider == "" {
		return "Fallback mode (no API key)"
	}
	if l.Model != "" {
		return fmt.Sprintf("%s (%s)", l.Provider, l.Model)
	}
	return l.Provider
}
