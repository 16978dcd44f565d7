package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bufferedLogger builds a logger the way NewLogger does but on buf.
func bufferedLogger(buf *bytes.Buffer, role string) *Logger {
	return newLogger(buf, role)
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

// ─── newLogger ───

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := bufferedLogger(&buf, "go-tweet-server")

	l.Info().Str("tweet_id", "t-1").Msg("tweet created")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "go-tweet-server", entry["role"])
	assert.Equal(t, "t-1", entry["tweet_id"])
	assert.Equal(t, "tweet created", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryShape")
}

func TestNewLogger_Stdout(t *testing.T) {
	require.NotNil(t, NewLogger("go-tweet-server"))
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

// ─── WithLevel ───

func TestWithLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLines int
		wantErr   bool
	}{
		{name: "empty keeps debug", level: "", wantLines: 3},
		{name: "info", level: "info", wantLines: 2},
		{name: "upper case warn", level: " WARN ", wantLines: 1},
		{name: "disabled", level: "disabled", wantLines: 0},
		{name: "unknown", level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := bufferedLogger(&buf, "svc")

			l, err := base.WithLevel(tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)

			l.Debug().Msg("debug")
			l.Info().Msg("info")
			l.Warn().Msg("warn")

			assert.Len(t, decodeLines(t, &buf), tt.wantLines)
		})
	}
}

// ─── WithTraceID ───

func TestWithTraceID_ChildOnly(t *testing.T) {
	var buf bytes.Buffer
	parent := bufferedLogger(&buf, "svc")

	child := parent.WithTraceID("trace-42")
	child.Info().Msg("child")
	parent.Info().Msg("parent")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "trace-42", entries[0][TraceIDField])
	assert.Equal(t, "svc", entries[0]["role"])
	assert.NotContains(t, entries[1], TraceIDField)
}

// ─── context helpers ───

func TestFromContext(t *testing.T) {
	t.Run("without logger", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.Equal(t, zerolog.Disabled, l.GetLevel())
	})

	t.Run("round trip through WithContext", func(t *testing.T) {
		var buf bytes.Buffer
		l := bufferedLogger(&buf, "svc").WithTraceID("abc")
		ctx := l.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from ctx")

		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "abc", entries[0][TraceIDField])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := bufferedLogger(&buf, "svc").WithTraceID("req-1")

	req := httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Info().Msg("handled")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0][TraceIDField])
}

// ─── NewClientLogger ───

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "client.log")

	l, closer, err := NewClientLogger("client", path)
	require.NoError(t, err)

	l.Info().Str("screen", "timeline").Msg("opened")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "timeline", entry["screen"])
}

func TestNewClientLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	for _, msg := range []string{"first run", "second run"} {
		l, closer, err := NewClientLogger("client", path)
		require.NoError(t, err)
		l.Info().Msg(msg)
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestNewClientLogger_InvalidPath(t *testing.T) {
	// a regular file cannot be used as a parent directory
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	l, closer, err := NewClientLogger("client", filepath.Join(blocker, "client.log"))

	assert.Error(t, err)
	assert.Nil(t, l)
	assert.Nil(t, closer)
}
