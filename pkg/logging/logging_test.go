package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		cfg  config.LoggingConfig
		want zapcore.Level
	}{
		{config.LoggingConfig{Level: "info", Format: "json"}, zapcore.InfoLevel},
		{config.LoggingConfig{Level: "warn", Format: "console"}, zapcore.WarnLevel},
		{config.LoggingConfig{Level: "error", Format: "json", Debug: true}, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		logger, err := New(tt.cfg)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(tt.want))
		if tt.want > zapcore.DebugLevel {
			assert.False(t, logger.Core().Enabled(tt.want-1))
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}
