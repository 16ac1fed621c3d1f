package habit

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/storage"
)

const (
	recentLimit    = 50
	trendMaxPoints = 10
)

// Tracker records habit entries and reads them back as summaries.
type Tracker struct {
	store  storage.Store
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Tracker)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func NewTracker(store storage.Store, logger *zap.Logger, opts ...Option) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Tracker{store: store, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Track validates and stores one measurement. An empty unit selects the
// habit's default unit and a zero time means now.
func (t *Tracker) Track(ctx context.Context, habit string, value float64, unit, notes string, at time.Time) (model.Entry, error) {
	habit, err := ValidateHabit(habit)
	if err != nil {
		return model.Entry{}, err
	}
	if value, err = ValidateValue(habit, value); err != nil {
		return model.Entry{}, err
	}
	if unit == "" {
		unit = DefaultUnit(habit)
	}
	if unit, err = ValidateUnit(habit, unit); err != nil {
		return model.Entry{}, err
	}
	if at.IsZero() {
		at = t.now()
	}

	e := model.Entry{
		ID:        uuid.NewString(),
		Habit:     habit,
		Value:     value,
		Unit:      unit,
		Timestamp: at,
		Notes:     notes,
	}
	if err := t.store.Add(ctx, e); err != nil {
		return model.Entry{}, fmt.Errorf("failed to track %s: %w", habit, err)
	}
	t.logger.Debug("Tracked habit",
		zap.String("id", e.ID),
		zap.String("habit", habit),
		zap.Float64("value", value),
		zap.String("unit", unit))
	return e, nil
}

// windowStart is local midnight days-1 days before today.
func (t *Tracker) windowStart(days int) (time.Time, error) {
	if days < 1 {
		return time.Time{}, model.NewValidationError("days", "days must be at least 1, got %d", days)
	}
	now := t.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -(days - 1)), nil
}

// Recent lists up to 50 entries from the last days days, newest first. An
// empty habit lists every habit.
func (t *Tracker) Recent(ctx context.Context, habit string, days int) ([]model.Entry, error) {
	return t.list(ctx, habit, days, recentLimit)
}

func (t *Tracker) list(ctx context.Context, habit string, days, limit int) ([]model.Entry, error) {
	if habit != "" {
		var err error
		if habit, err = ValidateHabit(habit); err != nil {
			return nil, err
		}
	}
	start, err := t.windowStart(days)
	if err != nil {
		return nil, err
	}
	entries, err := t.store.List(ctx, storage.Query{Habit: habit, Start: start, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}

// Stat aggregates one habit over a window.
type Stat struct {
	Habit   string  `json:"habit" yaml:"habit"`
	Total   float64 `json:"total" yaml:"total"`
	Count   int     `json:"count" yaml:"count"`
	Average float64 `json:"average" yaml:"average"`
	Unit    string  `json:"unit" yaml:"unit"`
}

// Summary aggregates every habit over the last days days, sorted by habit.
func (t *Tracker) Summary(ctx context.Context, days int) ([]Stat, error) {
	entries, err := t.list(ctx, "", days, 0)
	if err != nil {
		return nil, err
	}
	return Summarize(entries), nil
}

// Summarize groups entries by habit. Unit is taken from the first entry
// seen for each habit.
func Summarize(entries []model.Entry) []Stat {
	byHabit := make(map[string]*Stat)
	for _, e := range entries {
		s, ok := byHabit[e.Habit]
		if !ok {
			s = &Stat{Habit: e.Habit, Unit: e.Unit}
			byHabit[e.Habit] = s
		}
		s.Total += e.Value
		s.Count++
	}

	stats := make([]Stat, 0, len(byHabit))
	for _, s := range byHabit {
		s.Average = s.Total / float64(s.Count)
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Habit < stats[j].Habit })
	return stats
}

type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionStable  Direction = "stable"
	DirectionUnknown Direction = "unknown"
)

// DailyPoint is the mean of one local calendar day.
type DailyPoint struct {
	Date    time.Time `json:"date" yaml:"date"`
	Average float64   `json:"average" yaml:"average"`
	Count   int       `json:"count" yaml:"count"`
}

type Trend struct {
	Habit string `json:"habit" yaml:"habit"`
	Unit  string `json:"unit" yaml:"unit"`
	Days  int    `json:"days" yaml:"days"`
	// Points holds at most the last ten days with data, oldest first.
	Points    []DailyPoint `json:"points" yaml:"points"`
	Direction Direction    `json:"direction" yaml:"direction"`
	// Change is the newest day's mean minus the oldest day's mean.
	Change float64 `json:"change" yaml:"change"`
}

// Trend compares the newest and oldest days with data in the window. With
// fewer than two days the direction is unknown.
func (t *Tracker) Trend(ctx context.Context, habit string, days int) (Trend, error) {
	habit, err := ValidateHabit(habit)
	if err != nil {
		return Trend{}, err
	}
	entries, err := t.list(ctx, habit, days, 0)
	if err != nil {
		return Trend{}, err
	}
	return BuildTrend(habit, days, entries, t.now().Location()), nil
}

func BuildTrend(habit string, days int, entries []model.Entry, loc *time.Location) Trend {
	tr := Trend{Habit: habit, Days: days, Direction: DirectionUnknown, Points: []DailyPoint{}}
	if len(entries) == 0 {
		return tr
	}
	tr.Unit = entries[0].Unit

	type acc struct {
		sum   float64
		count int
	}
	byDay := make(map[time.Time]*acc)
	for _, e := range entries {
		ts := e.Timestamp.In(loc)
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc)
		a, ok := byDay[day]
		if !ok {
			a = &acc{}
			byDay[day] = a
		}
		a.sum += e.Value
		a.count++
	}

	points := make([]DailyPoint, 0, len(byDay))
	for day, a := range byDay {
		points = append(points, DailyPoint{Date: day, Average: a.sum / float64(a.count), Count: a.count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	if len(points) >= 2 {
		oldest, newest := points[0].Average, points[len(points)-1].Average
		tr.Change = newest - oldest
		switch {
		case newest > oldest:
			tr.Direction = DirectionUp
		case newest < oldest:
			tr.Direction = DirectionDown
		default:
			tr.Direction = DirectionStable
		}
	}

	if len(points) > trendMaxPoints {
		points = points[len(points)-trendMaxPoints:]
	}
	tr.Points = points
	return tr
}

// Insight is a one-line remark on a habit's average. Habits without
// guidance return an empty string.
func Insight(habit string, average float64) string {
	switch habit {
	case "sleep":
		switch {
		case average >= 7 && average <= 9:
			return "💚 Great sleep duration!"
		case average < 7:
			return "⚠️  Consider getting more sleep (7-9 hours recommended)"
		default:
			return "⚠️  You might be oversleeping"
		}
	case "water":
		if average >= 2.0 {
			return "💧 Good hydration!"
		}
		return "⚠️  Try to drink more water (2+ liters recommended)"
	case "exercise":
		switch {
		case average >= 30:
			return "💪 Excellent exercise routine!"
		case average >= 15:
			return "👍 Good activity level, try to reach 30+ minutes daily"
		default:
			return "⚠️  Consider increasing physical activity (30+ minutes recommended)"
		}
	case "mood":
		switch {
		case average >= 7:
			return "😊 Great mood overall!"
		case average >= 5:
			return "😐 Moderate mood, consider stress management techniques"
		default:
			return "😟 Low mood detected, consider speaking with a healthcare professional"
		}
	}
	return ""
}
