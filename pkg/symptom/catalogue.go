package symptom

import "strings"

// Severity of a single phrase hit.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Tier says which urgency a category is allowed to raise.
type Tier int

const (
	TierUrgent Tier = iota
	TierEmergency
)

// ConcerningCategory is the category reported for generic phrases that
// belong to no named category.
const ConcerningCategory = "concerning"

// Match is one phrase found in a sanitized description.
type Match struct {
	Category string   `json:"category" yaml:"category"`
	Pattern  string   `json:"pattern" yaml:"pattern"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// Category groups red-flag phrases that share an underlying concern.
type Category struct {
	Name        string
	Tier        Tier
	Phrases     []string
	Instruction string
}

// Catalogue is the read-only set of red-flag phrases. It is built once and
// shared by every analysis; nothing mutates it after construction.
type Catalogue struct {
	categories []Category
	concerning []string
	byName     map[string]int
}

var defaultCatalogue = newCatalogue([]Category{
	{
		Name:        "chest",
		Tier:        TierEmergency,
		Phrases:     []string{"chest pain", "chest pressure", "chest tightness", "heart pain"},
		Instruction: "🚨 URGENT: Chest pain can be a sign of a heart attack. Call emergency services (911) immediately.",
	},
	{
		Name:        "breathing",
		Tier:        TierEmergency,
		Phrases:     []string{"shortness of breath", "difficulty breathing", "can't breathe", "trouble breathing"},
		Instruction: "🚨 URGENT: Difficulty breathing requires immediate medical attention. Call 911.",
	},
	{
		Name:        "headache",
		Tier:        TierUrgent,
		Phrases:     []string{"sudden severe headache", "worst headache", "severe headache"},
		Instruction: "🚨 URGENT: Sudden severe headache may indicate stroke or aneurysm. Seek emergency care.",
	},
	{
		Name:        "vision",
		Tier:        TierUrgent,
		Phrases:     []string{"vision loss", "loss of vision", "sudden vision changes", "blind", "can't see"},
		Instruction: "🚨 URGENT: Sudden vision loss requires immediate medical attention.",
	},
	{
		Name:        "weakness",
		Tier:        TierUrgent,
		Phrases:     []string{"weakness on one side", "facial drooping", "speech problems", "slurred speech"},
		Instruction: "🚨 URGENT: Sudden weakness may indicate stroke. Call 911 immediately.",
	},
	{
		Name:        "consciousness",
		Tier:        TierEmergency,
		Phrases:     []string{"loss of consciousness", "fainting", "passed out", "unconscious"},
		Instruction: "🚨 URGENT: Loss of consciousness requires emergency medical care.",
	},
	{
		Name:        "blood",
		Tier:        TierUrgent,
		Phrases:     []string{"blood in stool", "blood in urine", "coughing blood", "vomiting blood"},
		Instruction: "⚠️  Blood in stool, urine, or coughing blood requires immediate medical evaluation.",
	},
	{
		Name:        "fever",
		Tier:        TierUrgent,
		Phrases:     []string{"high fever", "fever over 103", "burning up"},
		Instruction: "⚠️  High fever (over 103°F/39.4°C) requires medical attention.",
	},
	{
		Name:        "allergic",
		Tier:        TierEmergency,
		Phrases:     []string{"severe allergic reaction", "anaphylaxis", "swelling face", "difficulty swallowing"},
		Instruction: "🚨 URGENT: Severe allergic reactions can be life-threatening. Call 911.",
	},
}, []string{
	"severe pain", "extreme pain", "unbearable pain",
	"sudden onset", "came on suddenly", "started suddenly",
	"getting worse", "worsening", "worse than ever",
})

// DefaultCatalogue returns the process-wide red-flag catalogue.
func DefaultCatalogue() *Catalogue {
	return defaultCatalogue
}

// newCatalogue copies its inputs and runs every phrase through the same
// cleaning step as user input, so a phrase like "can't breathe" is stored
// in the form it takes after sanitization ("cant breathe").
func newCatalogue(categories []Category, concerning []string) *Catalogue {
	c := &Catalogue{
		categories: make([]Category, 0, len(categories)),
		concerning: make([]string, 0, len(concerning)),
		byName:     make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		phrases := make([]string, 0, len(cat.Phrases))
		for _, p := range cat.Phrases {
			phrases = append(phrases, clean(p))
		}
		cat.Phrases = phrases
		c.byName[cat.Name] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	for _, p := range concerning {
		c.concerning = append(c.concerning, clean(p))
	}
	return c
}

// Categories returns a copy of the categories in scan order.
func (c *Catalogue) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		cat.Phrases = append([]string(nil), cat.Phrases...)
		out[i] = cat
	}
	return out
}

// Concerning returns a copy of the generic phrase list.
func (c *Catalogue) Concerning() []string {
	return append([]string(nil), c.concerning...)
}

// Tier reports the tier of a named category. Generic and unknown
// categories report ok=false.
func (c *Catalogue) Tier(category string) (Tier, bool) {
	i, ok := c.byName[category]
	if !ok {
		return 0, false
	}
	return c.categories[i].Tier, true
}

// Instruction returns the emergency instruction for a category.
func (c *Catalogue) Instruction(category string) (string, bool) {
	i, ok := c.byName[category]
	if !ok || c.categories[i].Instruction == "" {
		return "", false
	}
	return c.categories[i].Instruction, true
}

// Detect scans sanitized text for every phrase of every category and then
// for every generic phrase. It never stops early: one description can hit
// several phrases across several categories.
func (c *Catalogue) Detect(sanitized string) []Match {
	var matches []Match
	for _, cat := range c.categories {
		for _, phrase := range cat.Phrases {
			if strings.Contains(sanitized, phrase) {
				matches = append(matches, Match{Category: cat.Name, Pattern: phrase, Severity: SeverityHigh})
			}
		}
	}
	for _, phrase := range c.concerning {
		if strings.Contains(sanitized, phrase) {
			matches = append(matches, Match{Category: ConcerningCategory, Pattern: phrase, Severity: SeverityMedium})
		}
	}
	return matches
}

// Detect runs the default catalogue over sanitized text.
func Detect(sanitized string) []Match {
	return defaultCatalogue.Detect(sanitized)
}
