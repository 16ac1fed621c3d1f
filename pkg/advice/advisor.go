// Package advice answers wellness questions with a hosted model and falls
// back to keyword-matched guidance when no model is available.
package advice

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/llm"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/prompts"
)

const contextDays = 7

// HabitSummarizer supplies the recent-habit context sent with a question.
type HabitSummarizer interface {
	Summary(ctx context.Context, days int) ([]habit.Stat, error)
}

type Advice struct {
	Query    string `json:"query" yaml:"query"`
	Text     string `json:"text" yaml:"text"`
	Fallback bool   `json:"fallback" yaml:"fallback"`
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Model    string `json:"model,omitempty" yaml:"model,omitempty"`
}

type Advisor struct {
	llm    llm.LLM
	habits HabitSummarizer
	logger *zap.Logger
}

// New returns an advisor. Both l and habits may be nil.
func New(l llm.LLM, habits HabitSummarizer, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{llm: l, habits: habits, logger: logger}
}

// Enabled reports whether a model is configured.
func (a *Advisor) Enabled() bool {
	return a.llm != nil
}

// Ask never fails: model errors are logged and answered with the fallback.
func (a *Advisor) Ask(ctx context.Context, query string, includeContext bool) Advice {
	if a.llm == nil {
		return Advice{Query: query, Text: Fallback(query), Fallback: true}
	}

	var habitContext string
	if includeContext {
		habitContext = a.habitContext(ctx)
	}
	prompt := prompts.BuildAdvicePrompt(query, habitContext)

	raw, err := a.llm.Chat(ctx, prompt)
	if err != nil {
		a.logger.Warn("LLM advice failed, using fallback",
			zap.String("provider", string(a.llm.Provider())),
			zap.Error(err))
		return Advice{Query: query, Text: Fallback(query), Fallback: true}
	}

	return Advice{
		Query:    query,
		Text:     formatResponse(raw),
		Provider: string(a.llm.Provider()),
		Model:    a.llm.Model(),
	}
}

func (a *Advisor) habitContext(ctx context.Context) string {
	if a.habits == nil {
		return ""
	}
	stats, err := a.habits.Summary(ctx, contextDays)
	if err != nil {
		a.logger.Debug("Habit context unavailable", zap.Error(err))
		return fmt.Sprintf("Unable to retrieve context: %v", err)
	}
	return HabitContext(stats)
}

// HabitContext renders summary stats as prompt context.
func HabitContext(stats []habit.Stat) string {
	if len(stats) == 0 {
		return "No recent habit data available."
	}
	lines := []string{fmt.Sprintf("Recent habits (last %d days):", contextDays)}
	for _, s := range stats {
		lines = append(lines, fmt.Sprintf("- %s: %.1f %s/day (average)", s.Habit, s.Average, s.Unit))
	}
	return strings.Join(lines, "\n")
}

var additionalResources = []string{
	"Stay hydrated and maintain regular sleep schedule",
	"Regular physical activity (150+ minutes/week)",
	"Balanced nutrition with fruits and vegetables",
	"Stress management and mindfulness practices",
}

func formatResponse(raw string) string {
	lines := []string{
		"🤖 AI Wellness Advice",
		strings.Repeat("=", 30),
		stripFences(raw),
		"",
		model.MedicalDisclaimer,
		"",
		"💡 Additional Resources:",
	}
	for _, r := range additionalResources {
		lines = append(lines, "• "+r)
	}
	return strings.Join(lines, "\n")
}

var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n|```")

// stripFences removes markdown code fences such as ```text ... ```
func stripFences(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}
