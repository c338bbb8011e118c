package game

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mastermind/internal/history"
	"github.com/abhisek/mastermind/internal/score"
)

// Display is a character display addressed by row and column.
type Display interface {
	Clear()
	WriteAt(row, col int, text string)
}

// Indicators lights the feedback pegs. Implementations clear every
// indicator before lighting exact pegs first and partial pegs after them.
type Indicators interface {
	SetPegs(exact, partial int)
}

// Display text.
const (
	TextWelcome  = "Welcome to MasterMind"
	TextGoal     = "Your goal is to guess my secret combination."
	TextThinking = "I am thinking a number:"
	TextGuess    = "Your guess:"
	TextWin      = "Well done! You win!"
	TextLose     = "You lose! Try again."
	TextSecret   = "Secret: "
)

// History line layout: entry number, separator, guess, then the counts.
const (
	historyNumberCol = 0
	historySepCol    = 2
	historyGuessCol  = 4
	historyGap       = 2
)

// Renderer draws a session onto a display and indicator bar.
type Renderer struct {
	display    Display
	indicators Indicators
	cols       int
}

// NewRenderer returns a renderer for a display cols characters wide.
func NewRenderer(display Display, indicators Indicators, cols int) *Renderer {
	return &Renderer{
		display:    display,
		indicators: indicators,
		cols:       cols,
	}
}

// Render redraws everything the session's state calls for.
func (r *Renderer) Render(s *Session) {
	r.display.Clear()

	switch s.State() {
	case StateAwaitingStart:
		r.display.WriteAt(0, 0, TextWelcome)
		r.display.WriteAt(1, 0, TextGoal)
		r.indicators.SetPegs(0, 0)

	// After a submit the newest score replaces the prompt on row 0.
	case StateGuessing:
		if last, err := s.History().Last(); err == nil {
			r.renderEntry(0, s.History().Len()-1, last)
		} else {
			r.display.WriteAt(0, 0, TextThinking)
		}
		r.renderGuess(s)
		r.renderLastScore(s)

	case StateReviewing:
		entry, err := s.History().Current()
		if err != nil {
			r.renderGuess(s)
			r.indicators.SetPegs(0, 0)
			return
		}
		r.renderEntry(0, s.History().Cursor(), entry)
		r.renderGuess(s)
		r.indicators.SetPegs(entry.Score.Exact, entry.Score.Partial)

	case StateWon, StateLost:
		r.display.WriteAt(0, 0, TextSecret+s.Secret().String())
		if s.State() == StateWon {
			r.display.WriteAt(1, 0, TextWin)
		} else {
			r.display.WriteAt(1, 0, TextLose)
		}
		r.renderLastScore(s)
	}
}

// renderGuess writes the label and the live guess, one digit per cell,
// right-aligned on the second row.
func (r *Renderer) renderGuess(s *Session) {
	r.display.WriteAt(1, 0, TextGuess)
	guess := s.Guess()
	start := r.cols - guess.Len()
	for i, d := range guess.Digits() {
		r.display.WriteAt(1, start+i, strconv.Itoa(int(d)))
	}
}

func (r *Renderer) renderLastScore(s *Session) {
	if res, ok := s.LastScore(); ok {
		r.indicators.SetPegs(res.Exact, res.Partial)
		return
	}
	r.indicators.SetPegs(0, 0)
}

// renderEntry writes one history line: "N: GUESS  xAyB".
func (r *Renderer) renderEntry(row, index int, e history.Entry) {
	r.display.WriteAt(row, historyNumberCol, strconv.Itoa(index+1))
	r.display.WriteAt(row, historySepCol, ": ")
	r.display.WriteAt(row, historyGuessCol, e.Guess.String())

	col := historyGuessCol + e.Guess.Len() + historyGap
	for _, part := range scoreParts(e.Score) {
		r.display.WriteAt(row, col, part)
		col += len(part)
	}
}

func scoreParts(res score.Result) []string {
	return []string{strconv.Itoa(res.Exact), "A", strconv.Itoa(res.Partial), "B"}
}

// FormatEntry renders a history entry as the same single line the display
// shows, for consoles and lists.
func FormatEntry(index int, e history.Entry) string {
	return fmt.Sprintf("%-2d: %s  %s", index+1, e.Guess, e.Score)
}
