package symptom

var symptomTips = map[string][]string{
	"headache": {
		"Stay hydrated",
		"Apply cold or warm compress",
		"Practice relaxation techniques",
		"Maintain regular sleep schedule",
		"Limit screen time",
	},
	"fatigue": {
		"Ensure adequate sleep (7-9 hours)",
		"Exercise regularly",
		"Eat balanced meals",
		"Manage stress",
		"Stay hydrated",
	},
	"stress": {
		"Practice deep breathing",
		"Try meditation or mindfulness",
		"Exercise regularly",
		"Maintain social connections",
		"Set realistic goals",
	},
	"digestive": {
		"Eat smaller, more frequent meals",
		"Stay hydrated",
		"Include fiber in your diet",
		"Limit processed foods",
		"Practice mindful eating",
	},
}

var defaultSymptomTips = []string{
	"Monitor symptoms",
	"Stay hydrated",
	"Get adequate rest",
	"Consult healthcare provider if symptoms persist",
}

// TipCategories lists the categories Tips has dedicated advice for.
func TipCategories() []string {
	return []string{"headache", "fatigue", "stress", "digestive"}
}

// Tips returns general self-care tips for a symptom category. Unknown
// categories get a generic list. The result is a fresh slice.
func Tips(category string) []string {
	tips, ok := symptomTips[category]
	if !ok {
		tips = defaultSymptomTips
	}
	return append([]string(nil), tips...)
}
