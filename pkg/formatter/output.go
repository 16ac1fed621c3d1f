package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/advice"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/symptom"
)

// Formats accepted by the Display functions.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

func ValidFormat(format string) bool {
	switch format {
	case FormatHuman, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// encode writes v as JSON or YAML. It reports false for the human format.
func encode(w io.Writer, v interface{}, format string) (bool, error) {
	switch format {
	case FormatJSON:
		output, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, err
		}
		_, err = fmt.Fprintln(w, string(output))
		return true, err
	case FormatYAML:
		output, err := yaml.Marshal(v)
		if err != nil {
			return true, err
		}
		_, err = fmt.Fprint(w, string(output))
		return true, err
	}
	return false, nil
}

// DisplayAnalysis prints a symptom report. Verbose lists every match.
func DisplayAnalysis(w io.Writer, r symptom.Report, format string, verbose bool) error {
	if ok, err := encode(w, r, format); ok {
		return err
	}

	fmt.Fprintln(w)
	urgencyColor(r.Urgency).Fprintf(w, "📊 URGENCY: %s\n\n", strings.ToUpper(r.Urgency.String()))
	fmt.Fprintln(w, r.Response)

	if verbose && len(r.Matches) > 0 {
		fmt.Fprintln(w)
		color.New(color.FgYellow, color.Bold).Fprintln(w, "⚠️  ALL MATCHED PHRASES:")
		for i, m := range r.Matches {
			fmt.Fprintf(w, "   %d. %s %s (%s)\n", i+1, severityIcon(m.Severity), m.Pattern, m.Category)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
	return nil
}

// DisplayFailure prints the fail-closed report in red.
func DisplayFailure(w io.Writer, r symptom.Report, format string) error {
	if ok, err := encode(w, r, format); ok {
		return err
	}
	red := color.New(color.FgRed, color.Bold)
	fmt.Fprintln(w)
	if r.Error != "" {
		red.Fprintf(w, "❌ %s\n\n", r.Error)
	}
	fmt.Fprintln(w, r.Response)
	return nil
}

func DisplaySummary(w io.Writer, stats []habit.Stat, days int, format string) error {
	if ok, err := encode(w, stats, format); ok {
		return err
	}

	if len(stats) == 0 {
		fmt.Fprintf(w, "📊 No habit data found for the last %d days.\n", days)
		return nil
	}

	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(w)
	cyan.Fprintf(w, "📊 Habit Summary (Last %d days)\n", days)
	fmt.Fprintln(w, strings.Repeat("=", 50))

	for _, s := range stats {
		fmt.Fprintf(w, "\n🔹 %s\n", title(s.Habit))
		fmt.Fprintf(w, "   Total: %.1f %s\n", s.Total, s.Unit)
		fmt.Fprintf(w, "   Average: %.1f %s/day\n", s.Average, s.Unit)
		fmt.Fprintf(w, "   Entries: %d\n", s.Count)
		if insight := habit.Insight(s.Habit, s.Average); insight != "" {
			fmt.Fprintf(w, "   %s\n", insight)
		}
	}
	return nil
}

func DisplayTrend(w io.Writer, tr habit.Trend, format string) error {
	if ok, err := encode(w, tr, format); ok {
		return err
	}

	if len(tr.Points) == 0 {
		fmt.Fprintf(w, "📈 No data found for %s in the last %d days\n", tr.Habit, tr.Days)
		return nil
	}

	fmt.Fprintln(w)
	color.New(color.FgCyan, color.Bold).Fprintf(w, "📈 %s Trends (Last %d days)\n", title(tr.Habit), tr.Days)
	fmt.Fprintln(w, strings.Repeat("=", 40))
	for _, p := range tr.Points {
		fmt.Fprintf(w, "%s: %.1f %s\n", p.Date.Format("2006-01-02"), p.Average, tr.Unit)
	}

	switch tr.Direction {
	case habit.DirectionUp:
		color.New(color.FgGreen).Fprintf(w, "\n📈 Trending up! (+%.1f)\n", tr.Change)
	case habit.DirectionDown:
		color.New(color.FgYellow).Fprintf(w, "\n📉 Trending down! (%.1f)\n", tr.Change)
	case habit.DirectionStable:
		fmt.Fprintln(w, "\n➡️  Stable trend")
	}
	return nil
}

func DisplayHistory(w io.Writer, entries []model.Entry, format string) error {
	if entries == nil {
		entries = []model.Entry{}
	}
	if ok, err := encode(w, entries, format); ok {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "📋 No entries found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTIME\tHABIT\tVALUE\tUNIT\tNOTES")
	for _, e := range entries {
		ts := e.Timestamp.Local()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%s\t%s\n",
			ts.Format("2006-01-02"), ts.Format("15:04"), e.Habit, e.Value, e.Unit, e.Notes)
	}
	return tw.Flush()
}

func DisplayAdvice(w io.Writer, a advice.Advice, format string) error {
	if ok, err := encode(w, a, format); ok {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, wrapText(a.Text, 80, ""))
	if a.Fallback {
		fmt.Fprintf(w, "\n%s\n", color.HiBlackString("Set GEMINI_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY for AI-generated advice"))
	}
	return nil
}

func urgencyColor(u symptom.Urgency) *color.Color {
	switch u {
	case symptom.UrgencyEmergency:
		return color.New(color.FgRed, color.Bold)
	case symptom.UrgencyUrgent:
		return color.New(color.FgYellow, color.Bold)
	case symptom.UrgencyModerate:
		return color.New(color.FgBlue)
	case symptom.UrgencyLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func severityIcon(s symptom.Severity) string {
	switch s {
	case symptom.SeverityHigh:
		return "🟠"
	case symptom.SeverityMedium:
		return "🟡"
	default:
		return "⚪"
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// wrapText wraps long lines at width runes, leaving short lines and blank
// lines as they are.
func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len([]rune(currentLine))+len([]rune(word))+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
