package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"property-search-service/internal/core/port"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogAdapter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true})

	logger.WithFields(port.Fields{"trace_id": "abc"}).Error("boom happened", errors.New("boom"), port.Fields{"property_id": 7})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom happened", record["msg"])
	assert.Equal(t, "abc", record["trace_id"])
	assert.Equal(t, float64(7), record["property_id"])
	assert.Equal(t, "boom", record["error"])
}

func TestSlogAdapter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Debug("hidden", nil)
	logger.Info("hidden too", nil)
	logger.Warn("visible", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

type fakeFluent struct {
	tags     []string
	messages []port.Fields
	closed   bool
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.tags = append(f.tags, tag)
	f.messages = append(f.messages, message.(port.Fields))
	return nil
}

func (f *fakeFluent) Close() error {
	f.closed = true
	return nil
}

func TestFluentLoggerAdapter(t *testing.T) {
	client := &fakeFluent{}
	adapter, err := NewFluentLoggerAdapter(client, slog.LevelInfo)
	require.NoError(t, err)

	logger := adapter.WithFields(port.Fields{"component": "test"})
	logger.Debug("dropped", nil)
	logger.Info("kept", port.Fields{"k": "v"})
	logger.Error("failed", errors.New("cause"), nil)

	require.Equal(t, []string{"info", "error"}, client.tags)
	assert.Equal(t, "kept", client.messages[0]["message"])
	assert.Equal(t, "test", client.messages[0]["component"])
	assert.Equal(t, "v", client.messages[0]["k"])
	assert.Equal(t, "cause", client.messages[1]["error"])

	require.NoError(t, adapter.Close())
	assert.True(t, client.closed)

	_, err = NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultiLoggerAdapter(t *testing.T) {
	var a, b bytes.Buffer
	multi, err := NewMultiloggerAdapter(
		NewSlogAdapter(SlogConfig{Writer: &a, Level: slog.LevelInfo}),
		nil,
		NewSlogAdapter(SlogConfig{Writer: &b, Level: slog.LevelInfo}),
	)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"trace_id": "t-1"}).Info("hello", nil)

	assert.Contains(t, a.String(), "trace_id=t-1")
	assert.Contains(t, b.String(), "hello")

	_, err = NewMultiloggerAdapter()
	assert.Error(t, err)
}
