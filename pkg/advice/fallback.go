package advice

import (
	"strings"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

type topic struct {
	keywords []string
	title    string
	tips     []string
}

// topics are checked in order; the first keyword hit wins.
var topics = []topic{
	{
		keywords: []string{"sleep", "tired", "fatigue"},
		title:    "For better sleep and energy levels:",
		tips: []string{
			"Aim for 7-9 hours of sleep per night",
			"Maintain a consistent sleep schedule",
			"Create a relaxing bedtime routine",
			"Limit screen time before bed",
			"Keep your bedroom cool and dark",
		},
	},
	{
		keywords: []string{"exercise", "fitness", "activity"},
		title:    "For physical activity and fitness:",
		tips: []string{
			"Aim for at least 150 minutes of moderate exercise per week",
			"Include both cardio and strength training",
			"Start slowly and gradually increase intensity",
			"Find activities you enjoy",
			"Consider walking, swimming, or cycling",
		},
	},
	{
		keywords: []string{"stress", "anxiety", "mental"},
		title:    "For stress management and mental wellness:",
		tips: []string{
			"Practice deep breathing or meditation",
			"Maintain social connections",
			"Get regular physical activity",
			"Ensure adequate sleep",
			"Consider professional counseling if needed",
		},
	},
	{
		keywords: []string{"nutrition", "diet", "eating"},
		title:    "For healthy nutrition:",
		tips: []string{
			"Eat a variety of fruits and vegetables",
			"Choose whole grains over refined grains",
			"Include lean proteins in your diet",
			"Stay hydrated with plenty of water",
			"Limit processed foods and added sugars",
		},
	},
}

var generalTopic = topic{
	title: "General wellness tips:",
	tips: []string{
		"Maintain a balanced diet with fruits and vegetables",
		"Get regular physical activity (150+ minutes/week)",
		"Ensure adequate sleep (7-9 hours per night)",
		"Stay hydrated throughout the day",
		"Practice stress management techniques",
		"Maintain social connections",
	},
}

func pickTopic(query string) topic {
	q := strings.ToLower(query)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(q, kw) {
				return t
			}
		}
	}
	return generalTopic
}

// Fallback is rule-based guidance used when no model answers.
func Fallback(query string) string {
	t := pickTopic(query)
	lines := []string{
		"🤖 Wellness Guidance",
		strings.Repeat("=", 30),
		"",
		t.title,
	}
	for _, tip := range t.tips {
		lines = append(lines, "• "+tip)
	}
	lines = append(lines,
		"",
		model.MedicalDisclaimer,
		"",
		"Note: AI advice is currently unavailable. These are general wellness guidelines.",
	)
	return strings.Join(lines, "\n")
}
