// Package logging builds the zerolog loggers used across the game.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON lines to w at the named level.
// An empty level means info.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", level, err)
		}
		lvl = parsed
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Console returns a human-readable logger for terminal output.
func Console(w io.Writer, level string) (zerolog.Logger, error) {
	l, err := New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}, level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return l, nil
}

// Open returns a logger appending to path, creating parent directories.
// An empty path returns a no-op logger. The returned closer must be
// called when the program exits.
func Open(path, level string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := New(f, level)
	if err != nil {
		_ = f.Close()
		return zerolog.Nop(), nil, err
	}
	return l, f, nil
}

// OpenOrConsole is Open, except that without a path it writes
// human-readable lines to w.
func OpenOrConsole(path, level string, w io.Writer) (zerolog.Logger, io.Closer, error) {
	if path != "" {
		return Open(path, level)
	}
	l, err := Console(w, level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return l, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
