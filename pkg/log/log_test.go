package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{input: "error", want: LogLevelError},
		{input: "warn", want: LogLevelWarn},
		{input: "info", want: LogLevelInfo},
		{input: "debug", want: LogLevelDebug},
		{input: "trace", want: LogLevelTrace},
		{input: "verbose", want: LogLevelError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, got.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", 0, LogLevelWarn)

	l.Error("boom %d", 1)
	l.Warn("careful")
	l.Info("hidden")
	l.Debug("hidden")
	l.Trace("hidden")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "boom 1", entries[0]["msg"])
	assert.Equal(t, "warn", entries[1]["level"])

	buf.Reset()
	l.SetLevel(LogLevelTrace)
	assert.Equal(t, LogLevelTrace, l.Level())
	l.Trace("visible")
	assert.Len(t, decodeLines(t, &buf), 1)
}

func TestWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, "", 0, LogLevelInfo)
	run := base.With("run", "abc").With("msg", "ignored")

	run.Info("started")
	base.Info("plain")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0]["run"])
	assert.Equal(t, "started", entries[0]["msg"], "fields never override the message")
	assert.NotContains(t, entries[1], "run")
}

func TestDefaultLogger(t *testing.T) {
	prev := getDefaultLogger()
	t.Cleanup(func() { SetDefaultLogger(prev) })

	var buf bytes.Buffer
	SetDefaultLogger(New(&buf, "", 0, LogLevelInfo))
	Debug("hidden")
	Info("hello %s", "world")
	SetLevel(LogLevelDebug)
	Debug("now visible")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "hello world", entries[0]["msg"])
	assert.Equal(t, "debug", entries[1]["level"])
}
