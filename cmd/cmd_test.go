package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

func init() {
	color.NoColor = true
}

type harness struct {
	t       *testing.T
	dir     string
	cfgPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "LLM_PROVIDER", "LLM_MODEL",
		"DATABASE_PATH", "DATABASE_URL", "STORAGE_BACKEND", "LOG_LEVEL", "DEBUG", "PORT", "EXPORT_DIR",
	} {
		t.Setenv(k, "")
	}

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "wellness.yaml")
	yml := fmt.Sprintf(`storage:
  backend: json
  json_path: %s
export:
  dir: %s
logging:
  level: error
`, filepath.Join(dir, "habits.json"), filepath.Join(dir, "exports"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(yml), 0o644))
	return &harness{t: t, dir: dir, cfgPath: cfgPath}
}

func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	root := &cobra.Command{
		Use:               "wellness",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: Setup,
		PersistentPostRun: Teardown,
	}
	AddPersistentFlags(root)
	root.AddCommand(
		NewTrackCmd(),
		NewQuickCmd(),
		NewSummaryCmd(),
		NewAskCmd(),
		NewChatCmd(),
		NewSymptomCmd(),
		NewTipsCmd(),
		NewHistoryCmd(),
		NewExportCmd(),
		NewConfigCmd(),
	)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", h.cfgPath}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTrackThenHistoryJSON(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "track", "sleep", "7.5", "-n", "slept well")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully tracked sleep: 7.5 hours")
	assert.Contains(t, out, "📝 Note: slept well")

	_, err = h.run("", "track", "water", "6", "cups")
	require.NoError(t, err)

	out, err = h.run("", "history", "-o", "json")
	require.NoError(t, err)
	var entries []model.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "water", entries[0].Habit)
	assert.Equal(t, "cups", entries[0].Unit)

	out, err = h.run("", "history", "--habit", "sleep")
	require.NoError(t, err)
	assert.Contains(t, out, "Recent Habit Entries (1 of 1)")
	assert.Contains(t, out, "slept well")
}

func TestTrackValidationErrors(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{"unknown habit", []string{"track", "juggling", "3"}, "habit"},
		{"not a number", []string{"track", "sleep", "lots"}, "value"},
		{"out of range", []string{"track", "mood", "0"}, "value"},
		{"bad unit", []string{"track", "weight", "70", "stone"}, "unit"},
		{"bad date", []string{"track", "sleep", "8", "-d", "tomorrow"}, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.run("", tt.args...)
			var verr *model.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestQuickSession(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("8\n\nabc\n7\n", "quick")
	require.NoError(t, err)
	assert.Contains(t, out, "Tracked sleep: 8 hours")
	assert.Contains(t, out, "Invalid input for exercise")
	assert.Contains(t, out, "Tracked mood: 7 scale")
	assert.Contains(t, out, "(2 tracked)")
}

func TestSummaryAndTrend(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("", "track", "exercise", "30")
	require.NoError(t, err)
	_, err = h.run("", "track", "exercise", "60")
	require.NoError(t, err)

	out, err := h.run("", "summary", "-o", "json")
	require.NoError(t, err)
	var stats []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	require.Len(t, stats, 1)
	assert.Equal(t, "exercise", stats[0]["habit"])
	assert.EqualValues(t, 45, stats[0]["average"])

	out, err = h.run("", "summary", "--habit", "exercise")
	require.NoError(t, err)
	assert.Contains(t, out, "Exercise Trends (Last 7 days)")

	_, err = h.run("", "summary", "-o", "xml")
	assert.Error(t, err)
}

func TestSymptomCommand(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "symptom", "I have chest pain and can't breathe", "-o", "json")
	require.NoError(t, err)
	var r map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "emergency", r["urgency"])
	assert.Equal(t, true, r["requires_attention"])

	out, err = h.run("", "symptom", "ok")
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, out, "Unable to analyze symptoms")

	out, err = h.run("mild headache after lunch\n", "symptom")
	require.NoError(t, err)
	assert.Contains(t, out, "What symptoms are you experiencing?")
	assert.Contains(t, out, "URGENCY: LOW")

	out, err = h.run("", "symptom", "--tips", "headache")
	require.NoError(t, err)
	assert.Contains(t, out, "Tips for headache")
	assert.Contains(t, out, model.MedicalDisclaimer)
}

func TestAskUsesFallbackWithoutKey(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "ask", "How can I sleep better?", "-o", "json")
	require.NoError(t, err)
	var a map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, true, a["fallback"])
	assert.Equal(t, "How can I sleep better?", a["query"])
}

func TestChatUntilQuit(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("\nhow much water should I drink?\nquit\n", "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "AI Wellness Advisor")
	assert.Contains(t, out, "Thanks for using the AI Wellness Advisor!")

	out, err = h.run("", "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "session ended")
}

func TestTipsCommand(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "tips", "--daily")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily Wellness Tip")

	out, err = h.run("", "tips", "Sleep")
	require.NoError(t, err)
	assert.Contains(t, out, "Tips for sleep")

	out, err = h.run("", "tips")
	require.NoError(t, err)
	assert.Contains(t, out, "Available tip options")
}

func TestExportCommand(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("", "track", "steps", "9000")
	require.NoError(t, err)

	out, err := h.run("", "export", "--habit", "steps")
	require.NoError(t, err)
	assert.Contains(t, out, "CSV exported to:")

	out, err = h.run("", "export", "--format", "json", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Wellness report exported to:")

	files, err := filepath.Glob(filepath.Join(h.dir, "exports", "*"))
	require.NoError(t, err)
	assert.Len(t, files, 2)

	_, err = h.run("", "export", "--format", "pdf")
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Storage:       json")
	assert.Contains(t, out, "Fallback mode")

	initPath := filepath.Join(h.dir, "nested", "wellness.yaml")
	h.cfgPath = initPath
	_, err = h.run("", "config", "--init")
	require.NoError(t, err)
	assert.FileExists(t, initPath)

	_, err = h.run("", "config", "--init")
	assert.Error(t, err)

	_, err = h.run("", "config", "--init", "--force")
	assert.NoError(t, err)
}
