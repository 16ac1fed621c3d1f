package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/formatter"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/symptom"
)

var symptomTips string

func NewSymptomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symptom [DESCRIPTION]",
		Short: "Check symptoms for red flags and warnings",
		Long: `Scan a symptom description for red-flag phrases and classify how urgently
to seek care. Without a description an interactive prompt is shown.

This is not a diagnosis. When in doubt, contact a healthcare professional.

Examples:
  wellness symptom "chest pain and shortness of breath"
  wellness symptom "mild headache since this morning" -o json
  wellness symptom --tips headache`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSymptom,
	}

	cmd.Flags().StringVar(&symptomTips, "tips", "", "Show self-care tips for a category ("+strings.Join(symptom.TipCategories(), ", ")+")")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")

	return cmd
}

func runSymptom(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if symptomTips != "" {
		printHeader(out, fmt.Sprintf("💡 Tips for %s", symptomTips))
		for _, tip := range symptom.Tips(symptomTips) {
			fmt.Fprintf(out, "• %s\n", tip)
		}
		fmt.Fprintf(out, "\n%s\n", model.MedicalDisclaimer)
		return nil
	}

	var description string
	if len(args) == 1 {
		description = args[0]
	} else {
		printHeader(out, "🩺 Symptom Checker")
		fmt.Fprintln(out, "Describe your symptoms below. This tool will help identify if you need immediate medical attention.")
		fmt.Fprintln(out, model.MedicalDisclaimer)
		fmt.Fprintln(out, "\nWhat symptoms are you experiencing?")
		answer, ok := prompt(out, bufio.NewScanner(cmd.InOrStdin()), "> ")
		if !ok || answer == "" {
			fmt.Fprintln(out, "No symptoms entered.")
			return nil
		}
		description = answer
	}

	return checkSymptoms(cmd, description)
}

func checkSymptoms(cmd *cobra.Command, description string) error {
	out := cmd.OutOrStdout()
	r, err := symptom.NewAnalyzer().Analyze(description)
	if err != nil {
		if dErr := formatter.DisplayFailure(out, symptom.FailClosed(description, err), outputFormat); dErr != nil {
			return dErr
		}
		return err
	}

	if r.RequiresAttention {
		currentLogger().Warn("Symptom check requires attention",
			zap.Stringer("urgency", r.Urgency),
			zap.Int("matches", len(r.Matches)))
	}
	return formatter.DisplayAnalysis(out, r, outputFormat, verbose)
}
