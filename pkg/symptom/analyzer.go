// Package symptom flags medically urgent language in free-text symptom
// descriptions. It is lexical phrase matching only and never diagnoses.
package symptom

import (
	"errors"
	"fmt"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

// ErrAnalysisFailed is returned alongside a fail-closed report when analysis
// hit an internal fault.
var ErrAnalysisFailed = errors.New("symptom analysis failed")

const failClosedMessage = "Unable to analyze symptoms. Please consult a healthcare professional."

// Report is the outcome of one analysis. It is built once and never changed.
type Report struct {
	RawInput          string  `json:"raw_input" yaml:"raw_input"`
	SanitizedInput    string  `json:"sanitized_input" yaml:"sanitized_input"`
	Matches           []Match `json:"matches" yaml:"matches"`
	Urgency           Urgency `json:"urgency" yaml:"urgency"`
	RequiresAttention bool    `json:"requires_attention" yaml:"requires_attention"`
	Response          string  `json:"response" yaml:"response"`
	Error             string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Analyzer runs the sanitize, detect, classify and render pipeline against
// one catalogue. It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	catalogue *Catalogue
}

// NewAnalyzer returns an analyzer over the default catalogue.
func NewAnalyzer() *Analyzer {
	return &Analyzer{catalogue: defaultCatalogue}
}

// Catalogue exposes the phrases the analyzer matches against.
func (a *Analyzer) Catalogue() *Catalogue {
	return a.catalogue
}

// Analyze triages a free-text description. The only expected error is a
// *model.ValidationError for input outside the length bounds, in which case
// the returned report is empty. An internal fault is recovered into a
// fail-closed report wrapped with ErrAnalysisFailed.
func (a *Analyzer) Analyze(text string) (report Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrAnalysisFailed, r)
			report = FailClosed(text, err)
		}
	}()

	sanitized, err := Sanitize(text)
	if err != nil {
		return Report{}, err
	}

	matches := a.catalogue.Detect(sanitized)
	urgency := a.catalogue.Classify(matches)

	return Report{
		RawInput:          text,
		SanitizedInput:    sanitized,
		Matches:           matches,
		Urgency:           urgency,
		RequiresAttention: urgency.RequiresAttention(),
		Response:          a.catalogue.Render(sanitized, matches, urgency),
	}, nil
}

var defaultAnalyzer = NewAnalyzer()

// Analyze triages text with the default analyzer.
func Analyze(text string) (Report, error) {
	return defaultAnalyzer.Analyze(text)
}

// FailClosed builds the report shown when a description could not be
// analyzed. It always asks for attention so a failure never reads as "low".
func FailClosed(raw string, err error) Report {
	r := Report{
		RawInput:          raw,
		Urgency:           UrgencyUrgent,
		RequiresAttention: true,
		Response:          failClosedMessage + "\n\n" + model.MedicalDisclaimer,
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
