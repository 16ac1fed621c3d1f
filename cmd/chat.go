package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/advice"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/formatter"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive AI wellness chat session",
		Long:  `Ask questions one after another. Type quit, exit or bye to leave.`,
		Args:  cobra.NoArgs,
		RunE:  runChat,
	}
	addLLMFlags(cmd)
	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	l, err := newLLM(ctx, llmProvider, llmModel)
	if err != nil {
		return err
	}

	return withTracker(ctx, func(t *habit.Tracker) error {
		advisor := advice.New(l, t, currentLogger())

		printHeader(out, "🤖 AI Wellness Advisor")
		fmt.Fprintln(out, "Ask me anything about wellness, healthy habits, or general health!")
		fmt.Fprintln(out, "Type 'quit' to exit.")
		fmt.Fprintln(out, model.MedicalDisclaimer)

		for {
			if ctx.Err() != nil {
				return nil
			}
			fmt.Fprintln(out, "\n💬 What would you like to know about wellness?")
			question, ok := prompt(out, in, "> ")
			if !ok {
				fmt.Fprintln(out, "\n👋 AI Wellness Advisor session ended")
				return nil
			}
			if question == "" {
				continue
			}
			switch strings.ToLower(question) {
			case "quit", "exit", "bye":
				fmt.Fprintln(out, "👋 Thanks for using the AI Wellness Advisor!")
				return nil
			}

			if advisor.Enabled() {
				fmt.Fprintln(out, "\n🤔 Thinking...")
			}
			a := advisor.Ask(ctx, question, true)
			if err := formatter.DisplayAdvice(out, a, formatter.FormatHuman); err != nil {
				return err
			}
		}
	})
}
