package symptom

import (
	"strings"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

// maxListedMatches caps the phrases echoed back to the user.
const maxListedMatches = 3

type banner struct {
	title     string
	directive string
}

var banners = map[Urgency]banner{
	UrgencyEmergency: {
		title:     "🚨 MEDICAL EMERGENCY DETECTED 🚨",
		directive: "This appears to be a medical emergency. Call 911 or emergency services IMMEDIATELY.",
	},
	UrgencyUrgent: {
		title:     "⚠️  URGENT MEDICAL ATTENTION NEEDED",
		directive: "These symptoms require prompt medical evaluation. Contact your doctor or visit urgent care immediately.",
	},
	UrgencyModerate: {
		title:     "⚠️  Medical Consultation Recommended",
		directive: "Consider scheduling an appointment with your healthcare provider to discuss these symptoms.",
	},
	UrgencyLow: {
		title:     "ℹ️  General Wellness Information",
		directive: "While these symptoms may not be immediately concerning, monitor them and consult a healthcare professional if they persist or worsen.",
	},
}

var selfCareTips = []string{
	"Stay hydrated",
	"Get adequate rest",
	"Monitor symptoms",
	"Keep a symptom diary",
}

// Render builds the user-facing guidance for an analysis. The output depends
// only on the matches and the urgency; the sanitized text is accepted so the
// signature mirrors the analysis pipeline.
func (c *Catalogue) Render(sanitized string, matches []Match, u Urgency) string {
	_ = sanitized

	b, ok := banners[u]
	if !ok {
		b = banners[UrgencyUrgent]
	}
	lines := []string{b.title, b.directive}

	if u == UrgencyEmergency {
		for _, m := range matches {
			if instr, ok := c.Instruction(m.Category); ok {
				lines = append(lines, "", instr)
				break
			}
		}
	}

	if len(matches) > 0 {
		lines = append(lines, "", "Detected concerning symptoms:")
		for i, m := range matches {
			if i == maxListedMatches {
				break
			}
			lines = append(lines, "• "+m.Pattern)
		}
	}

	lines = append(lines, "", model.MedicalDisclaimer)

	if u == UrgencyLow || u == UrgencyModerate {
		lines = append(lines, "", "General self-care tips:")
		for _, tip := range selfCareTips {
			lines = append(lines, "• "+tip)
		}
	}

	return strings.Join(lines, "\n")
}

// Render uses the default catalogue's instructions.
func Render(sanitized string, matches []Match, u Urgency) string {
	return defaultCatalogue.Render(sanitized, matches, u)
}
