package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/storage"
)

var base = time.Date(2026, 6, 1, 8, 30, 0, 0, time.UTC)

func at(day int) time.Time { return base.AddDate(0, 0, day) }

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []model.Entry{
		{Habit: "sleep", Value: 7.5, Unit: "hours", Timestamp: base, Notes: "restless, woke at 3"},
		{Habit: "water", Value: 2, Unit: "liters", Timestamp: base.Add(90 * time.Minute)},
	}, time.UTC)
	require.NoError(t, err)

	assert.Equal(t,
		"date,time,habit,value,unit,notes\n"+
			"2026-06-01,08:30:00,sleep,7.5,hours,\"restless, woke at 3\"\n"+
			"2026-06-01,10:00:00,water,2,liters,\n",
		buf.String())
}

func TestWriteCSVUsesLocation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []model.Entry{{Habit: "mood", Value: 6, Unit: "scale", Timestamp: base}},
		time.FixedZone("minus10", -10*3600)))
	assert.Contains(t, buf.String(), "2026-05-31,22:30:00,mood")
}

func TestTrend(t *testing.T) {
	entry := func(v float64, day int) model.Entry { return model.Entry{Value: v, Timestamp: at(day)} }

	tests := []struct {
		name    string
		entries []model.Entry
		want    string
	}{
		{"one entry", []model.Entry{entry(5, 0)}, TrendInsufficient},
		{"up", []model.Entry{entry(10, 2), entry(5, 0), entry(6, 1)}, TrendImproving},
		{"down", []model.Entry{entry(10, 0), entry(5, 1)}, TrendDeclining},
		{"within five percent", []model.Entry{entry(100, 0), entry(104, 1)}, TrendStable},
		{"from zero", []model.Entry{entry(0, 0), entry(3, 1)}, TrendImproving},
		{"zeros", []model.Entry{entry(0, 0), entry(0, 1)}, TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trend(tt.entries))
		})
	}
}

func TestWellnessScore(t *testing.T) {
	stats := map[string]HabitStats{
		"sleep":    {Average: 8, Frequency: 1},     // 100 capped
		"water":    {Average: 1, Frequency: 0.5},   // 50 + 10
		"exercise": {Average: 180, Frequency: 0},   // 100 - 25
		"steps":    {Average: 9000, Frequency: 1}, // no ideal range
	}
	s := WellnessScore(stats)

	assert.Equal(t, 3, s.TrackedHabits)
	assert.Equal(t, HabitScore{Score: 100, Category: "Excellent"}, s.HabitScores["sleep"])
	assert.Equal(t, HabitScore{Score: 60, Category: "Fair"}, s.HabitScores["water"])
	assert.Equal(t, HabitScore{Score: 75, Category: "Good"}, s.HabitScores["exercise"])
	assert.NotContains(t, s.HabitScores, "steps")
	assert.Equal(t, 78.3, s.OverallScore)
	assert.Equal(t, "Good", s.OverallCategory)

	empty := WellnessScore(nil)
	assert.Equal(t, 0.0, empty.OverallScore)
	assert.Equal(t, "Needs Improvement", empty.OverallCategory)
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "Excellent", Category(85))
	assert.Equal(t, "Good", Category(84.9))
	assert.Equal(t, "Fair", Category(55))
	assert.Equal(t, "Needs Improvement", Category(54.9))
}

func TestRecommendations(t *testing.T) {
	stats := map[string]HabitStats{
		"sleep": {Average: 6, Frequency: 1, Trend: TrendDeclining},
		"water": {Average: 3, Frequency: 0.2, Trend: TrendImproving},
	}
	got := Recommendations([]string{"sleep", "water"}, stats)
	assert.Equal(t, []string{
		"Your sleep trend is declining - consider ways to improve",
		"Consider improving sleep hygiene for better rest",
		"Consider tracking water more consistently",
		"Great job! Your water is improving",
		"Try tracking more aspects of your wellness for better insights",
	}, got)

	stats["mood"] = HabitStats{Average: 3, Frequency: 0.1}
	got = Recommendations([]string{"mood", "sleep", "water"}, stats)
	assert.Len(t, got, maxRecommendations)
	assert.Equal(t, "Consider tracking mood more consistently", got[0])
}

func TestBuild(t *testing.T) {
	entries := []model.Entry{
		{Habit: "sleep", Value: 8, Unit: "hours", Timestamp: at(3)},
		{Habit: "sleep", Value: 6, Unit: "hours", Timestamp: at(1)},
		{Habit: "mood", Value: 7, Unit: "scale", Timestamp: at(2)},
	}
	now := at(4)
	r := Build(entries, 10, now)

	assert.Equal(t, now, r.Metadata.GeneratedAt)
	assert.Equal(t, 3, r.Metadata.TotalEntries)
	assert.Equal(t, []string{"mood", "sleep"}, r.Metadata.HabitsTracked)

	sleep := r.HabitStatistics["sleep"]
	assert.Equal(t, 2, sleep.TotalEntries)
	assert.Equal(t, 7.0, sleep.Average)
	assert.Equal(t, 6.0, sleep.Min)
	assert.Equal(t, 8.0, sleep.Max)
	assert.Equal(t, 0.2, sleep.Frequency)
	assert.Equal(t, TrendImproving, sleep.Trend)
	assert.Equal(t, TrendInsufficient, r.HabitStatistics["mood"].Trend)
	assert.Len(t, r.RawEntries, 3)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"report_metadata"`)
	assert.Contains(t, string(data), `"wellness_score"`)

	empty := Build(nil, 0, now)
	assert.Equal(t, 1, empty.Metadata.PeriodDays)
	assert.NotNil(t, empty.RawEntries)
	assert.Equal(t, []string{"Try tracking more aspects of your wellness for better insights"}, empty.Recommendations)
}

func TestExporter(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewJSON(filepath.Join(t.TempDir(), "habits.json"))
	require.NoError(t, err)

	now := at(5)
	for _, e := range []model.Entry{
		{Habit: "sleep", Value: 7, Unit: "hours", Timestamp: at(4)},
		{Habit: "water", Value: 2, Unit: "liters", Timestamp: at(3)},
		{Habit: "sleep", Value: 9, Unit: "hours", Timestamp: at(-40)},
	} {
		require.NoError(t, store.Add(ctx, e))
	}

	dir := filepath.Join(t.TempDir(), "exports")
	ex := NewExporter(store, dir, zap.NewNop(), WithClock(func() time.Time { return now }))

	path, err := ex.ExportCSV(ctx, "sleep", 30)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "habits_sleep_20260606_083000.csv"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,time,habit,value,unit,notes\n2026-06-05,08:30:00,sleep,7,hours,\n", string(data))

	path, err = ex.ExportCSV(ctx, "", 30)
	require.NoError(t, err)
	assert.Equal(t, "habits_20260606_083000.csv", filepath.Base(path))

	path, err = ex.ExportReport(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "wellness_report_7days_20260606_083000.json", filepath.Base(path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)

	var r Report
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, 2, r.Metadata.TotalEntries)
	assert.Equal(t, 7, r.Metadata.PeriodDays)

	_, err = ex.ExportReport(ctx, 0)
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}
