// Package habit validates and records habit measurements and derives
// summaries and trends from them.
package habit

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

// Spec describes what a habit accepts.
type Spec struct {
	Name  string
	Units []string
	Min   float64
	Max   float64
}

var specs = map[string]Spec{
	"sleep":    {Name: "sleep", Units: []string{"hours"}, Min: 0, Max: 24},
	"water":    {Name: "water", Units: []string{"liters", "cups", "ml"}, Min: 0, Max: 10},
	"exercise": {Name: "exercise", Units: []string{"minutes", "hours"}, Min: 0, Max: 480},
	"mood":     {Name: "mood", Units: []string{"scale"}, Min: 1, Max: 10},
	"meals":    {Name: "meals", Units: []string{"count"}, Min: 0, Max: 10},
	"weight":   {Name: "weight", Units: []string{"kg", "lbs"}, Min: 30, Max: 500},
	"steps":    {Name: "steps", Units: []string{"count"}, Min: 0, Max: 50000},
}

// Names returns the known habits in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the spec of a normalized habit name.
func Lookup(habit string) (Spec, bool) {
	s, ok := specs[habit]
	if !ok {
		return Spec{}, false
	}
	s.Units = append([]string(nil), s.Units...)
	return s, true
}

// DefaultUnit is the first unit a habit accepts.
func DefaultUnit(habit string) string {
	if s, ok := specs[habit]; ok {
		return s.Units[0]
	}
	return ""
}

func ValidateHabit(habit string) (string, error) {
	habit = strings.ToLower(strings.TrimSpace(habit))
	if _, ok := specs[habit]; !ok {
		return "", model.NewValidationError("habit", "invalid habit '%s'. Valid habits: %s",
			habit, strings.Join(Names(), ", "))
	}
	return habit, nil
}

// ValidateValue expects an already validated habit name.
func ValidateValue(habit string, value float64) (float64, error) {
	s, ok := specs[habit]
	if !ok {
		return 0, model.NewValidationError("habit", "invalid habit '%s'", habit)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, model.NewValidationError("value", "value must be a finite number")
	}
	if value < s.Min || value > s.Max {
		return 0, model.NewValidationError("value", "value %s is out of range for %s. Range: %s-%s",
			formatNumber(value), habit, formatNumber(s.Min), formatNumber(s.Max))
	}
	return value, nil
}

func ValidateUnit(habit, unit string) (string, error) {
	s, ok := specs[habit]
	if !ok {
		return "", model.NewValidationError("habit", "invalid habit '%s'", habit)
	}
	unit = strings.ToLower(strings.TrimSpace(unit))
	for _, u := range s.Units {
		if u == unit {
			return unit, nil
		}
	}
	return "", model.NewValidationError("unit", "invalid unit '%s' for %s. Valid units: %s",
		unit, habit, strings.Join(s.Units, ", "))
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "01/02/2006"}

// ParseDate accepts YYYY-MM-DD, DD/MM/YYYY and MM/DD/YYYY, tried in that
// order, and returns local midnight of that day.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, model.NewValidationError("date",
		"invalid date format '%s'. Use YYYY-MM-DD, DD/MM/YYYY, or MM/DD/YYYY", s)
}

// ValidateMood parses a 1-10 mood rating.
func ValidateMood(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, model.NewValidationError("mood", "mood must be a number between 1 and 10")
	}
	mood := int(f)
	if mood < 1 || mood > 10 {
		return 0, model.NewValidationError("mood", "mood must be between 1 and 10")
	}
	return mood, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
