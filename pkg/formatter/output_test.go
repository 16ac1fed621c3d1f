package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/advice"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/symptom"
)

func init() {
	color.NoColor = true
}

func TestDisplayAnalysisHuman(t *testing.T) {
	r, err := symptom.Analyze("Chest pain and shortness of breath")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, DisplayAnalysis(&buf, r, FormatHuman, true))

	out := buf.String()
	assert.Contains(t, out, "📊 URGENCY: EMERGENCY")
	assert.Contains(t, out, r.Response)
	assert.Contains(t, out, "ALL MATCHED PHRASES")
	assert.Contains(t, out, "🟠 chest pain (chest)")
}

func TestDisplayAnalysisJSON(t *testing.T) {
	r, err := symptom.Analyze("I have a mild headache")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, DisplayAnalysis(&buf, r, FormatJSON, false))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "low", decoded["urgency"])
	assert.Equal(t, false, decoded["requires_attention"])
}

func TestDisplayAnalysisYAML(t *testing.T) {
	r, err := symptom.Analyze("severe pain, sudden onset, getting worse")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, DisplayAnalysis(&buf, r, FormatYAML, false))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "urgent", decoded["urgency"])
}

func TestDisplayFailure(t *testing.T) {
	r := symptom.FailClosed("x", symptom.ErrAnalysisFailed)

	var buf bytes.Buffer
	require.NoError(t, DisplayFailure(&buf, r, FormatHuman))
	assert.Contains(t, buf.String(), "Unable to analyze symptoms")
}

func TestDisplaySummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplaySummary(&buf, nil, 7, FormatHuman))
	assert.Equal(t, "📊 No habit data found for the last 7 days.\n", buf.String())

	buf.Reset()
	stats := []habit.Stat{{Habit: "sleep", Total: 56, Count: 7, Average: 8, Unit: "hours"}}
	require.NoError(t, DisplaySummary(&buf, stats, 7, FormatHuman))
	out := buf.String()
	assert.Contains(t, out, "📊 Habit Summary (Last 7 days)")
	assert.Contains(t, out, "🔹 Sleep")
	assert.Contains(t, out, "Average: 8.0 hours/day")
	assert.Contains(t, out, "Great sleep duration")
}

func TestDisplayTrend(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tr := habit.Trend{
		Habit: "exercise",
		Unit:  "minutes",
		Days:  30,
		Points: []habit.DailyPoint{
			{Date: day, Average: 20, Count: 1},
			{Date: day.AddDate(0, 0, 1), Average: 45, Count: 1},
		},
		Direction: habit.DirectionUp,
		Change:    25,
	}

	var buf bytes.Buffer
	require.NoError(t, DisplayTrend(&buf, tr, FormatHuman))
	out := buf.String()
	assert.Contains(t, out, "📈 Exercise Trends (Last 30 days)")
	assert.Contains(t, out, "2024-03-01: 20.0 minutes")
	assert.Contains(t, out, "Trending up! (+25.0)")

	buf.Reset()
	require.NoError(t, DisplayTrend(&buf, habit.Trend{Habit: "mood", Days: 7}, FormatHuman))
	assert.Contains(t, buf.String(), "No data found for mood")
}

func TestDisplayHistory(t *testing.T) {
	entries := []model.Entry{
		{Habit: "water", Value: 2.5, Unit: "liters", Timestamp: time.Now(), Notes: "gym day"},
		{Habit: "steps", Value: 8000, Unit: "count", Timestamp: time.Now()},
	}

	var buf bytes.Buffer
	require.NoError(t, DisplayHistory(&buf, entries, FormatHuman))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "DATE"))
	assert.Contains(t, lines[1], "2.5")
	assert.Contains(t, lines[1], "gym day")
	assert.Contains(t, lines[2], "8000")

	buf.Reset()
	require.NoError(t, DisplayHistory(&buf, nil, FormatHuman))
	assert.Contains(t, buf.String(), "No entries found")
}

func TestDisplayAdviceFallbackHint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayAdvice(&buf, advice.Advice{Query: "q", Text: "Drink water.", Fallback: true}, FormatHuman))
	assert.Contains(t, buf.String(), "Drink water.")
	assert.Contains(t, buf.String(), "GEMINI_API_KEY")
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat("human"))
	assert.True(t, ValidFormat("json"))
	assert.True(t, ValidFormat("yaml"))
	assert.False(t, ValidFormat("xml"))
}

func TestWrapText(t *testing.T) {
	out := wrapText("one two three four", 9, "")
	assert.Equal(t, "one two\nthree\nfour", out)

	assert.Equal(t, "a\n\nb", wrapText("a\n\nb", 80, ""))
}
