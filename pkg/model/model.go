package model

import (
	"fmt"
	"time"
)

// MedicalDisclaimer is appended to every piece of guidance the assistant produces.
const MedicalDisclaimer = "⚠️  IMPORTANT DISCLAIMER: This advice is for general wellness purposes only. " +
	"It is not a substitute for professional medical advice, diagnosis, or treatment. " +
	"Always consult with a qualified healthcare provider for medical concerns."

// Entry is a single habit measurement.
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	Habit     string    `json:"habit" yaml:"habit"`
	Value     float64   `json:"value" yaml:"value"`
	Unit      string    `json:"unit" yaml:"unit"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Notes     string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ValidationError reports user input that can never be accepted as-is.
// Retrying with the same input fails the same way.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
