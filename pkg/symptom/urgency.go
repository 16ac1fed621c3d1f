package symptom

import (
	"fmt"
	"strings"
)

// Urgency is an ordered triage level. Higher values are more urgent.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyModerate
	UrgencyUrgent
	UrgencyEmergency
)

var urgencyNames = [...]string{
	UrgencyLow:       "low",
	UrgencyModerate:  "moderate",
	UrgencyUrgent:    "urgent",
	UrgencyEmergency: "emergency",
}

func (u Urgency) String() string {
	if u < UrgencyLow || u > UrgencyEmergency {
		return fmt.Sprintf("Urgency(%d)", int(u))
	}
	return urgencyNames[u]
}

// RequiresAttention reports whether the level calls for prompt medical care.
func (u Urgency) RequiresAttention() bool {
	return u >= UrgencyUrgent
}

func (u Urgency) MarshalText() ([]byte, error) {
	if u < UrgencyLow || u > UrgencyEmergency {
		return nil, fmt.Errorf("invalid urgency %d", int(u))
	}
	return []byte(urgencyNames[u]), nil
}

func (u *Urgency) UnmarshalText(text []byte) error {
	parsed, err := ParseUrgency(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUrgency accepts the lower-case level names, ignoring case and
// surrounding space.
func ParseUrgency(s string) (Urgency, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range urgencyNames {
		if name == s {
			return Urgency(i), nil
		}
	}
	return UrgencyLow, fmt.Errorf("unknown urgency %q", s)
}

// Classify maps matches to an urgency level. The first rule that holds wins:
// an emergency-tier category, then an urgent-tier category, then three or
// more matches of any kind, then at least one match.
func (c *Catalogue) Classify(matches []Match) Urgency {
	var urgent bool
	for _, m := range matches {
		tier, ok := c.Tier(m.Category)
		if !ok {
			continue
		}
		if tier == TierEmergency {
			return UrgencyEmergency
		}
		urgent = true
	}
	switch {
	case urgent:
		return UrgencyUrgent
	case len(matches) >= 3:
		return UrgencyUrgent
	case len(matches) >= 1:
		return UrgencyModerate
	}
	return UrgencyLow
}

// Classify applies the default catalogue's tiers.
func Classify(matches []Match) Urgency {
	return defaultCatalogue.Classify(matches)
}
