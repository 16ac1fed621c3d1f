package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/config"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/formatter"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/llm"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/logging"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/storage"
)

var (
	configPath   string
	verbose      bool
	outputFormat string

	cfg    *config.Config
	logger *zap.Logger
)

// AddPersistentFlags registers the flags every subcommand shares.
func AddPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// Setup loads configuration and builds the logger. It runs before every
// subcommand.
func Setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	l, err := logging.New(c.Logging)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	logger.Debug("Configuration loaded",
		zap.String("path", configPath),
		zap.String("storage", c.Storage.Backend),
		zap.String("llm_provider", c.LLM.Provider))
	return nil
}

func Teardown(cmd *cobra.Command, args []string) {
	if logger != nil {
		_ = logger.Sync()
	}
}

func currentConfig() *config.Config {
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg
}

func currentLogger() *zap.Logger {
	return logging.OrNop(logger)
}

func openStore(ctx context.Context) (storage.Store, error) {
	return storage.Open(ctx, currentConfig().Storage, currentLogger())
}

// withTracker opens the store, hands a tracker to fn and closes the store.
func withTracker(ctx context.Context, fn func(*habit.Tracker) error) error {
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(habit.NewTracker(store, currentLogger()))
}

// newLLM returns nil when no provider is configured so callers fall back
// to canned advice.
func newLLM(ctx context.Context, provider, model string) (llm.LLM, error) {
	c := currentConfig().LLM
	if provider != "" {
		c.Provider = provider
		c.APIKey = ""
	}
	if model != "" {
		c.Model = model
	}
	if c.Provider == "" {
		return nil, nil
	}

	var (
		l   llm.LLM
		err error
	)
	if c.APIKey == "" {
		l, err = llm.CreateFromEnv(ctx, c.Provider, c.Model)
	} else {
		l, err = llm.NewFactory().Create(ctx, c)
	}
	if errors.Is(err, llm.ErrNoAPIKey) {
		currentLogger().Warn("No API key for LLM provider, using built-in advice", zap.String("provider", c.Provider))
		return nil, nil
	}
	return l, err
}

func checkFormat() error {
	if !formatter.ValidFormat(outputFormat) {
		return fmt.Errorf("invalid output format %q (use human, json or yaml)", outputFormat)
	}
	return nil
}

func newSpinner(w io.Writer, suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + suffix
	return s
}

// prompt prints question and reads one trimmed line. ok is false at EOF.
func prompt(out io.Writer, in *bufio.Scanner, question string) (string, bool) {
	fmt.Fprint(out, question)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func printHeader(w io.Writer, title string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(w)
	cyan.Fprintln(w, title)
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	red := color.New(color.FgRed)
	red.Fprintf(w, "✗ %s\n", msg)
}

func printHint(w io.Writer, msg string) {
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString(msg))
}
