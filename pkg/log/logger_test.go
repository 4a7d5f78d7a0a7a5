package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger records messages for testing
type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Error(message string) {
	r.messages = append(r.messages, message)
}

func TestNoopLoggerZeroValue(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Error("discarded")
}

func TestMultiLoggerCallsAll(t *testing.T) {
	r1 := &recordingLogger{}
	r2 := &recordingLogger{}
	r3 := &recordingLogger{}

	multi := NewMultiLogger(r1, r2, r3)
	multi.Error("device broken")

	for i, r := range []*recordingLogger{r1, r2, r3} {
		assert.Equal(t, []string{"device broken"}, r.messages, "logger %d", i)
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	r := &recordingLogger{}
	multi := NewMultiLogger(nil, r)

	multi.Error("still delivered")
	assert.Equal(t, []string{"still delivered"}, r.messages)
}

func TestMultiLoggerEmptyList(t *testing.T) {
	NewMultiLogger().Error("nobody listens")
}

func TestSlogAdapterWritesErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	NewSlogAdapter(slog.New(handler)).Error("bad target")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "bad target", entry["msg"])
	assert.Equal(t, "catalog", entry["component"])
}

func TestSlogAdapterNilUsesDefault(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	assert.Same(t, slog.Default(), adapter.logger)
}
