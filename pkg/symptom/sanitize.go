package symptom

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

const (
	MaxInputLength = 500
	MinInputLength = 3
)

// Sanitize normalizes a free-text description before matching. It rejects
// raw input longer than MaxInputLength runes and cleaned text shorter than
// MinInputLength runes.
func Sanitize(text string) (string, error) {
	if n := utf8.RuneCountInString(text); n > MaxInputLength {
		return "", model.NewValidationError("description",
			"symptom description too long (%d characters, maximum %d)", n, MaxInputLength)
	}
	cleaned := clean(text)
	if utf8.RuneCountInString(cleaned) < MinInputLength {
		return "", model.NewValidationError("description",
			"please provide a more detailed symptom description (at least %d characters)", MinInputLength)
	}
	return cleaned, nil
}

// clean lower-cases text, drops everything except word characters,
// whitespace and - . , ! ? and then collapses whitespace runs to a single
// space. Filtering before collapsing keeps the result a fixed point.
func clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if keep(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func keep(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsNumber(r), unicode.IsSpace(r):
		return true
	}
	switch r {
	case '_', '-', '.', ',', '!', '?':
		return true
	}
	return false
}
