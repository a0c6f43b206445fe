package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{input: "debug", expected: LevelDebug},
		{input: "INFO", expected: LevelInfo},
		{input: "", expected: LevelInfo},
		{input: "warning", expected: LevelWarn},
		{input: " error ", expected: LevelError},
		{input: "verbose", expected: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("navstate").
		With("tree", "services").
		Warn(context.Background(), errors.New("boom"), "toggle ignored", "path", "1.0")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "toggle ignored", entry["msg"])
	assert.Equal(t, "navstate", entry["component"])
	assert.Equal(t, "services", entry["tree"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "1.0", entry["path"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Format: "text", Output: &buf})

	logger.Debug(context.Background(), "debug message")
	logger.Info(context.Background(), "info message")
	logger.Warn(context.Background(), nil, "warn message")
	logger.Error(context.Background(), nil, "error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestLogger_WithDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&LoggerConfig{Level: LevelInfo, Format: "json", Output: &buf})

	_ = base.With("session", "a")
	base.Info(context.Background(), "plain")

	assert.NotContains(t, buf.String(), "session")
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Info(context.Background(), "ignored")
	assert.NotNil(t, logger.With("k", "v").WithComponent("c"))
}
