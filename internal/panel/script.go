package panel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/abhisek/mastermind/internal/game"
)

// Script reads one panel sample per text line. Each line holds zero or
// more whitespace separated tokens whose lines are combined:
//
//	1..N           press that digit button (one-based)
//	p, prev        the review-back chord
//	n, next        the review-forward chord
//	c, ok, enter   confirm
//	lines:1101c    raw lines, one 0/1 per digit button, optional trailing c
//
// An empty line is an idle tick and '#' starts a comment. Lines that fail
// to parse are logged and sampled as idle. Sample returns io.EOF once the
// reader is exhausted.
type Script struct {
	scanner *bufio.Scanner
	buttons int
	line    int
	logger  zerolog.Logger
}

// NewScript returns a script reading from r for a panel with the given
// number of digit buttons.
func NewScript(r io.Reader, buttons int, logger zerolog.Logger) *Script {
	return &Script{
		scanner: bufio.NewScanner(r),
		buttons: buttons,
		logger:  logger.With().Str("component", "script").Logger(),
	}
}

// Line returns the number of lines read so far.
func (s *Script) Line() int { return s.line }

// Sample implements game.Input.
func (s *Script) Sample() (game.Lines, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return game.Lines{}, fmt.Errorf("read script: %w", err)
		}
		return game.Lines{}, io.EOF
	}
	s.line++

	lines, err := ParseLine(s.scanner.Text(), s.buttons)
	if err != nil {
		s.logger.Warn().Err(err).Int("line", s.line).Msg("ignoring input line")
		return game.DigitLines(s.buttons), nil
	}
	return lines, nil
}

// ParseLine converts one script line into a panel sample.
func ParseLine(text string, buttons int) (game.Lines, error) {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}

	out := game.DigitLines(buttons)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		var ls game.Lines
		switch tok {
		case "c", "ok", "enter":
			ls = game.ConfirmLines(buttons)
		case "p", "prev":
			ls = game.ReviewPrevLines(buttons)
		case "n", "next":
			ls = game.ReviewNextLines(buttons)
		default:
			var err error
			ls, err = parseToken(tok, buttons)
			if err != nil {
				return game.Lines{}, err
			}
		}
		merge(&out, ls)
	}
	return out, nil
}

func parseToken(tok string, buttons int) (game.Lines, error) {
	if raw, ok := strings.CutPrefix(tok, "lines:"); ok {
		return parseRaw(raw, buttons)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 || n > buttons {
		return game.Lines{}, fmt.Errorf("%w: %q", ErrUnknownToken, tok)
	}
	return game.DigitLines(buttons, n-1), nil
}

func parseRaw(raw string, buttons int) (game.Lines, error) {
	out := game.DigitLines(buttons)
	if rest, ok := strings.CutSuffix(raw, "c"); ok {
		out.Confirm = true
		raw = rest
	}
	if len(raw) > buttons {
		return game.Lines{}, fmt.Errorf("%w: %d lines for %d buttons", ErrBadLines, len(raw), buttons)
	}
	for i, ch := range raw {
		switch ch {
		case '1':
			out.Digits[i] = true
		case '0':
		default:
			return game.Lines{}, fmt.Errorf("%w: %q", ErrBadLines, raw)
		}
	}
	return out, nil
}

func merge(dst *game.Lines, src game.Lines) {
	for i, on := range src.Digits {
		if on && i < len(dst.Digits) {
			dst.Digits[i] = true
		}
	}
	if src.Confirm {
		dst.Confirm = true
	}
}
