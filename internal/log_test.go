package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelError, ParseLogLevel("error"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("WARNING"))
	assert.Equal(t, LogLevelDebug, ParseLogLevel(" DEBUG "))
	assert.Equal(t, LogLevelInfo, ParseLogLevel(""))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("chatty"))
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LogLevelWarn)

	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	logger.Warn("shown %d", 3)
	logger.Error("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 3")
	assert.Contains(t, out, "[ERROR] shown 4")
}
