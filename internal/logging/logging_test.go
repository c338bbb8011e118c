package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug")
	require.NoError(t, err)

	l.Debug().Str("session", "abc").Int("turn", 3).Msg("guess scored")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "abc", line["session"])
	assert.Equal(t, float64(3), line["turn"])
	assert.Equal(t, "guess scored", line["message"])
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn")
	require.NoError(t, err)

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mastermind.log")
	l, closer, err := Open(path, "")
	require.NoError(t, err)

	l.Info().Msg("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
}

func TestOpenEmptyPath(t *testing.T) {
	_, closer, err := Open("", "info")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestOpenOrConsoleWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := OpenOrConsole("", "info", &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}
