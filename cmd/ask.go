package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/advice"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/formatter"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
)

var (
	askNoContext bool
	llmProvider  string
	llmModel     string
)

func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask QUESTION",
		Short: "Get personalized AI wellness advice",
		Long: `Ask a wellness question. Your last 7 days of habits are sent as context
unless --no-context is set. Without an API key the assistant answers from
built-in guidance.

Examples:
  # Uses whichever provider has an API key in the environment
  wellness ask "How can I improve my sleep?"

  # Pick a provider and model explicitly
  wellness ask "Is 2 liters of water enough?" --provider openai --model gpt-4o-mini`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	addLLMFlags(cmd)
	cmd.Flags().BoolVar(&askNoContext, "no-context", false, "Don't include habit data as context")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")

	return cmd
}

func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&llmProvider, "provider", "", "LLM provider (gemini, openai, claude)")
	cmd.Flags().StringVar(&llmModel, "model", "", "Model name (provider default if empty)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	l, err := newLLM(ctx, llmProvider, llmModel)
	if err != nil {
		return err
	}

	return withTracker(ctx, func(t *habit.Tracker) error {
		advisor := advice.New(l, t, currentLogger())

		s := newSpinner(cmd.ErrOrStderr(), "Getting AI wellness advice...")
		if advisor.Enabled() && outputFormat == formatter.FormatHuman {
			s.Start()
		}
		a := advisor.Ask(ctx, args[0], !askNoContext)
		s.Stop()

		if a.Fallback && advisor.Enabled() {
			currentLogger().Debug("Answered from built-in guidance", zap.String("query", a.Query))
		}
		return formatter.DisplayAdvice(out, a, outputFormat)
	})
}
