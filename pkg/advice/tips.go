package advice

import (
	"fmt"
	"strings"
	"time"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

var habitSuggestions = map[string][]string{
	"sleep": {
		"Maintain a consistent bedtime and wake time",
		"Create a relaxing bedtime routine",
		"Limit caffeine after 2 PM",
		"Keep your bedroom cool and dark",
		"Avoid screens 1 hour before bed",
		"Try relaxation techniques like deep breathing",
	},
	"water": {
		"Start your day with a glass of water",
		"Carry a water bottle with you",
		"Set reminders to drink water throughout the day",
		"Eat water-rich foods like fruits and vegetables",
		"Flavor water with lemon or cucumber if plain water is boring",
	},
	"exercise": {
		"Start with 10-15 minutes of activity daily",
		"Choose activities you enjoy",
		"Take the stairs instead of elevators",
		"Park farther away to increase walking",
		"Try bodyweight exercises at home",
		"Find a workout buddy for motivation",
	},
	"mood": {
		"Practice gratitude by writing down 3 good things daily",
		"Connect with friends and family regularly",
		"Spend time in nature",
		"Practice mindfulness or meditation",
		"Engage in hobbies you enjoy",
		"Limit negative media consumption",
	},
}

var defaultSuggestions = []string{
	"Set specific, achievable goals",
	"Track your progress regularly",
	"Celebrate small wins",
	"Be patient with yourself",
	"Seek support when needed",
}

// Suggestions returns the improvement tips for a habit.
func Suggestions(habit string) []string {
	s, ok := habitSuggestions[strings.ToLower(habit)]
	if !ok {
		s = defaultSuggestions
	}
	return append([]string(nil), s...)
}

// HabitSuggestions renders Suggestions as a numbered list with the
// disclaimer.
func HabitSuggestions(habit string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💡 Tips for Improving %s:\n", title(habit))
	for i, s := range Suggestions(habit) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	b.WriteString("\n")
	b.WriteString(model.MedicalDisclaimer)
	return b.String()
}

var dailyTips = []string{
	"💧 Drink a glass of water first thing in the morning to kickstart your metabolism.",
	"🚶 Take a 10-minute walk after meals to aid digestion and boost energy.",
	"😴 Create a wind-down routine 30 minutes before bed for better sleep quality.",
	"🥗 Add one extra serving of vegetables to your meals today.",
	"🧘 Take 5 deep breaths when you feel stressed or overwhelmed.",
	"📱 Put your phone away during meals to practice mindful eating.",
	"🌞 Get 10-15 minutes of sunlight exposure for vitamin D and mood benefits.",
	"💪 Do some light stretching or yoga to improve flexibility and reduce tension.",
	"📝 Write down 3 things you're grateful for to boost your mood.",
	"👥 Reach out to a friend or family member to strengthen social connections.",
}

// DailyTipText picks the tip for a day of the month, so it is stable for a
// whole day.
func DailyTipText(now time.Time) string {
	return dailyTips[now.Day()%len(dailyTips)]
}

func DailyTip(now time.Time) string {
	return "🌟 Daily Wellness Tip:\n" + DailyTipText(now) +
		"\n\nRemember: Small daily actions lead to big health improvements!"
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
