// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	return entry
}

func captured(role string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(role)
	l.Logger = l.Output(&buf)
	return l, &buf
}

func TestNewLogger_Fields(t *testing.T) {
	l, buf := captured("formcache-server")

	l.Info().Str("collection", "forms").Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "formcache-server", entry["role"])
	assert.Equal(t, "forms", entry["collection"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_Globals(t *testing.T) {
	NewLogger("globals")

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

func TestGetChildLogger(t *testing.T) {
	parent, buf := captured("parent")
	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.With().Str("email", "ann@example.com").Logger()
	child.Info().Msg("child")
	parent.Info().Msg("parent")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "parent", decodeEntry(t, lines[0])["role"])
	assert.Equal(t, "ann@example.com", decodeEntry(t, lines[0])["email"])
	assert.NotContains(t, decodeEntry(t, lines[1]), "email")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()}

	tests := []struct {
		name string
		get  func(ctx context.Context) *Logger
	}{
		{name: "context", get: FromContext},
		{
			name: "request",
			get: func(ctx context.Context) *Logger {
				return FromRequest(httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			tt.get(l.WithContext(context.Background())).Info().Msg("x")

			assert.Equal(t, "t-1", decodeEntry(t, buf.Bytes())["trace_id"])
		})
	}
}

func TestFromContext_WithoutLoggerIsUsable(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client", "cache.log")
	l := NewClientLogger("formcache-client", FileOptions{Path: path, MaxSizeMB: 1, MaxBackups: 1})

	l.Info().Str("collection", "forms").Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	entry := decodeEntry(t, data)
	assert.Equal(t, "formcache-client", entry["role"])
	assert.Equal(t, "forms", entry["collection"])
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 10, orDefault(0, 10))
	assert.Equal(t, 10, orDefault(-1, 10))
	assert.Equal(t, 5, orDefault(5, 10))
}
