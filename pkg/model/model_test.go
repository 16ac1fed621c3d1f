package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("habit", "unknown habit %q", "juggling")
	assert.Equal(t, `invalid habit: unknown habit "juggling"`, err.Error())

	bare := &ValidationError{Message: "too short"}
	assert.Equal(t, "too short", bare.Error())
}

func TestValidationErrorUnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("track: %w", NewValidationError("value", "out of range"))

	var verr *ValidationError
	assert.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, "value", verr.Field)
}
