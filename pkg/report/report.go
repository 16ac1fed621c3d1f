package report

import (
	"math"
	"sort"
	"time"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

const (
	TrendImproving    = "improving"
	TrendDeclining    = "declining"
	TrendStable       = "stable"
	TrendInsufficient = "insufficient_data"

	maxRecommendations = 5
)

type Report struct {
	Metadata        Metadata              `json:"report_metadata" yaml:"report_metadata"`
	WellnessScore   Score                 `json:"wellness_score" yaml:"wellness_score"`
	HabitStatistics map[string]HabitStats `json:"habit_statistics" yaml:"habit_statistics"`
	Recommendations []string              `json:"recommendations" yaml:"recommendations"`
	RawEntries      []model.Entry         `json:"raw_entries" yaml:"raw_entries"`
}

type Metadata struct {
	GeneratedAt   time.Time `json:"generated_at" yaml:"generated_at"`
	PeriodDays    int       `json:"period_days" yaml:"period_days"`
	TotalEntries  int       `json:"total_entries" yaml:"total_entries"`
	HabitsTracked []string  `json:"habits_tracked" yaml:"habits_tracked"`
}

type HabitStats struct {
	TotalEntries int     `json:"total_entries" yaml:"total_entries"`
	Average      float64 `json:"average" yaml:"average"`
	Min          float64 `json:"min" yaml:"min"`
	Max          float64 `json:"max" yaml:"max"`
	Unit         string  `json:"unit" yaml:"unit"`
	// Frequency is entries per day of the period.
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Trend     string  `json:"trend" yaml:"trend"`
}

type Score struct {
	OverallScore       float64               `json:"overall_score" yaml:"overall_score"`
	OverallCategory    string                `json:"overall_category" yaml:"overall_category"`
	HabitScores        map[string]HabitScore `json:"habit_scores" yaml:"habit_scores"`
	TrackedHabits      int                   `json:"tracked_habits" yaml:"tracked_habits"`
	ScoringMethodology string                `json:"scoring_methodology" yaml:"scoring_methodology"`
}

type HabitScore struct {
	Score    float64 `json:"score" yaml:"score"`
	Category string  `json:"category" yaml:"category"`
}

type idealRange struct{ min, max float64 }

var idealRanges = map[string]idealRange{
	"sleep":    {7, 9},
	"water":    {2, 4},
	"exercise": {30, 120},
	"mood":     {6, 10},
}

// Build summarizes entries collected over a period of days.
func Build(entries []model.Entry, days int, now time.Time) Report {
	if days < 1 {
		days = 1
	}
	byHabit := make(map[string][]model.Entry)
	for _, e := range entries {
		byHabit[e.Habit] = append(byHabit[e.Habit], e)
	}

	names := make([]string, 0, len(byHabit))
	stats := make(map[string]HabitStats, len(byHabit))
	for name, es := range byHabit {
		names = append(names, name)
		stats[name] = habitStats(es, days)
	}
	sort.Strings(names)

	if entries == nil {
		entries = []model.Entry{}
	}
	return Report{
		Metadata: Metadata{
			GeneratedAt:   now,
			PeriodDays:    days,
			TotalEntries:  len(entries),
			HabitsTracked: names,
		},
		WellnessScore:   WellnessScore(stats),
		HabitStatistics: stats,
		Recommendations: Recommendations(names, stats),
		RawEntries:      entries,
	}
}

func habitStats(es []model.Entry, days int) HabitStats {
	s := HabitStats{
		TotalEntries: len(es),
		Min:          math.Inf(1),
		Max:          math.Inf(-1),
		Unit:         es[0].Unit,
		Frequency:    float64(len(es)) / float64(days),
		Trend:        trend(es),
	}
	var sum float64
	for _, e := range es {
		sum += e.Value
		s.Min = math.Min(s.Min, e.Value)
		s.Max = math.Max(s.Max, e.Value)
	}
	s.Average = sum / float64(len(es))
	return s
}

// trend compares the mean of the older half with the newer half; more than
// 5% either way counts as a change.
func trend(es []model.Entry) string {
	if len(es) < 2 {
		return TrendInsufficient
	}
	sorted := append([]model.Entry(nil), es...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Timestamp.Before(sorted[j].Timestamp) })

	mid := len(sorted) / 2
	first := mean(sorted[:mid])
	second := mean(sorted[mid:])

	if first == 0 {
		switch {
		case second > 0:
			return TrendImproving
		case second < 0:
			return TrendDeclining
		}
		return TrendStable
	}
	diff := (second - first) / first * 100
	switch {
	case diff > 5:
		return TrendImproving
	case diff < -5:
		return TrendDeclining
	}
	return TrendStable
}

func mean(es []model.Entry) float64 {
	var sum float64
	for _, e := range es {
		sum += e.Value
	}
	return sum / float64(len(es))
}

// WellnessScore rates the habits that have an ideal range. Each scores 100
// inside the range, proportionally less below it, and loses half the
// relative excess above it, plus up to 20 points for consistency.
func WellnessScore(stats map[string]HabitStats) Score {
	score := Score{
		HabitScores:        make(map[string]HabitScore),
		ScoringMethodology: "Based on ideal ranges and consistency",
	}

	var total, possible float64
	for name, s := range stats {
		ideal, ok := idealRanges[name]
		if !ok {
			continue
		}
		var base float64
		switch {
		case s.Average >= ideal.min && s.Average <= ideal.max:
			base = 100
		case s.Average < ideal.min:
			base = math.Max(0, s.Average/ideal.min*100)
		default:
			base = math.Max(0, 100-(s.Average-ideal.max)/ideal.max*50)
		}
		final := math.Min(100, base+math.Min(s.Frequency*20, 20))

		score.HabitScores[name] = HabitScore{Score: round1(final), Category: Category(final)}
		total += final
		possible += 100
	}

	if possible > 0 {
		score.OverallScore = round1(total / possible * 100)
	}
	score.OverallCategory = Category(score.OverallScore)
	score.TrackedHabits = len(score.HabitScores)
	return score
}

func Category(score float64) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 55:
		return "Fair"
	}
	return "Needs Improvement"
}

// Recommendations walks habits in the given order and keeps the first five.
func Recommendations(names []string, stats map[string]HabitStats) []string {
	recs := []string{}
	for _, name := range names {
		s := stats[name]
		if s.Frequency < 0.5 {
			recs = append(recs, "Consider tracking "+name+" more consistently")
		}
		switch s.Trend {
		case TrendDeclining:
			recs = append(recs, "Your "+name+" trend is declining - consider ways to improve")
		case TrendImproving:
			recs = append(recs, "Great job! Your "+name+" is improving")
		}
		switch {
		case name == "sleep" && s.Average < 7:
			recs = append(recs, "Consider improving sleep hygiene for better rest")
		case name == "water" && s.Average < 2:
			recs = append(recs, "Try to increase daily water intake")
		case name == "exercise" && s.Average < 30:
			recs = append(recs, "Aim for at least 30 minutes of daily physical activity")
		case name == "mood" && s.Average < 6:
			recs = append(recs, "Consider stress management or speaking with a counselor")
		}
	}
	if len(stats) < 3 {
		recs = append(recs, "Try tracking more aspects of your wellness for better insights")
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
