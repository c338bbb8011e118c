// Package panel provides the virtual hardware a game session talks to: a
// character LCD, a bar of dual-colour LEDs and two input sources.
package panel

import (
	"strings"

	"github.com/rs/zerolog"
)

// LCD is a fixed-size character display. Writes past an edge are clipped.
type LCD struct {
	rows   int
	cols   int
	cells  [][]rune
	logger zerolog.Logger
}

// NewLCD returns a blank rows x cols display. Every write is mirrored to
// logger at trace level.
func NewLCD(rows, cols int, logger zerolog.Logger) *LCD {
	l := &LCD{
		rows:   rows,
		cols:   cols,
		cells:  make([][]rune, rows),
		logger: logger.With().Str("component", "lcd").Logger(),
	}
	for i := range l.cells {
		l.cells[i] = make([]rune, cols)
	}
	l.blank()
	return l
}

// Rows returns the display height.
func (l *LCD) Rows() int { return l.rows }

// Cols returns the display width.
func (l *LCD) Cols() int { return l.cols }

// Clear blanks every cell.
func (l *LCD) Clear() {
	l.blank()
	l.logger.Trace().Msg("clear")
}

// WriteAt places text starting at (row, col). Characters falling outside
// the display are dropped.
func (l *LCD) WriteAt(row, col int, text string) {
	l.logger.Trace().Int("row", row).Int("col", col).Str("text", text).Msg("write")
	if row < 0 || row >= l.rows {
		return
	}
	for _, r := range text {
		if col >= l.cols {
			return
		}
		if col >= 0 {
			l.cells[row][col] = r
		}
		col++
	}
}

// Line returns one row including trailing blanks.
func (l *LCD) Line(row int) string {
	if row < 0 || row >= l.rows {
		return ""
	}
	return string(l.cells[row])
}

// Lines returns every row including trailing blanks.
func (l *LCD) Lines() []string {
	out := make([]string, l.rows)
	for i := range l.cells {
		out[i] = string(l.cells[i])
	}
	return out
}

// String returns the rows joined by newlines.
func (l *LCD) String() string {
	return strings.Join(l.Lines(), "\n")
}

func (l *LCD) blank() {
	for _, row := range l.cells {
		for j := range row {
			row[j] = ' '
		}
	}
}
