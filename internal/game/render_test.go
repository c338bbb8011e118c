package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mastermind/internal/code"
	"github.com/abhisek/mastermind/internal/config"
	"github.com/abhisek/mastermind/internal/history"
	"github.com/abhisek/mastermind/internal/score"
)

// gridDisplay is a minimal character display for tests.
type gridDisplay struct {
	rows   [][]rune
	clears int
}

func newGridDisplay(rows, cols int) *gridDisplay {
	g := &gridDisplay{rows: make([][]rune, rows)}
	for i := range g.rows {
		g.rows[i] = []rune(strings.Repeat(" ", cols))
	}
	return g
}

func (g *gridDisplay) Clear() {
	g.clears++
	for i := range g.rows {
		for j := range g.rows[i] {
			g.rows[i][j] = ' '
		}
	}
}

func (g *gridDisplay) WriteAt(row, col int, text string) {
	if row < 0 || row >= len(g.rows) {
		return
	}
	for _, r := range text {
		if col >= 0 && col < len(g.rows[row]) {
			g.rows[row][col] = r
		}
		col++
	}
}

func (g *gridDisplay) Row(i int) string {
	return strings.TrimRight(string(g.rows[i]), " ")
}

type pegRecorder struct {
	calls [][2]int
}

func (p *pegRecorder) SetPegs(exact, partial int) {
	p.calls = append(p.calls, [2]int{exact, partial})
}

func (p *pegRecorder) Last() [2]int {
	return p.calls[len(p.calls)-1]
}

func newTestRenderer() (*Renderer, *gridDisplay, *pegRecorder) {
	d := newGridDisplay(2, 16)
	p := &pegRecorder{}
	return NewRenderer(d, p, 16), d, p
}

func TestRenderWelcome(t *testing.T) {
	r, d, p := newTestRenderer()
	s := newTestSession(t, "1234")

	r.Render(s)
	assert.Equal(t, "Welcome to Mast", d.Row(0)[:15])
	assert.Equal(t, "Your goal is to ", string(d.rows[1]))
	assert.Equal(t, [2]int{0, 0}, p.Last())
}

func TestRenderGuessing(t *testing.T) {
	r, d, p := newTestRenderer()
	s := newTestSession(t, "1234")
	apply(t, s, Confirm())

	r.Render(s)
	assert.Equal(t, "I am thinking a ", string(d.rows[0]))
	assert.Equal(t, "Your guess: 0123", d.Row(1))
	assert.Equal(t, [2]int{0, 0}, p.Last())

	apply(t, s, Confirm(), Increment(1))
	r.Render(s)
	assert.Equal(t, "1 : 0123  0A3B", d.Row(0))
	assert.Equal(t, "Your guess: 0223", d.Row(1))
	assert.Equal(t, [2]int{0, 3}, p.Last(), "indicators keep the latest score")
}

func TestRenderGuessingShowsScoreForLongCodes(t *testing.T) {
	cfg := config.Default()
	cfg.Length = 6
	s := newTestSessionWith(t, cfg, "012354")

	width := cfg.DisplayWidth()
	d := newGridDisplay(2, width)
	p := &pegRecorder{}
	r := NewRenderer(d, p, width)

	apply(t, s, Confirm(), Confirm())
	require.Equal(t, StateGuessing, s.State())

	r.Render(s)
	assert.Equal(t, "1 : 012345  4A2B", d.Row(0))
	assert.Equal(t, "Your guess: 012345", d.Row(1))
	assert.Equal(t, [2]int{4, 2}, p.Last())
}

func TestRenderReviewing(t *testing.T) {
	r, d, p := newTestRenderer()
	s := newTestSession(t, "1234")
	apply(t, s, Confirm(), Confirm(), Increment(0), Confirm(), ReviewPrev())
	require.Equal(t, StateReviewing, s.State())

	r.Render(s)
	assert.Equal(t, "1 : 0123  0A3B", d.Row(0))
	assert.Equal(t, "Your guess: 1123", d.Row(1))
	assert.Equal(t, [2]int{0, 3}, p.Last())

	apply(t, s, ReviewNext())
	r.Render(s)
	assert.Equal(t, "2 : 1123  1A2B", d.Row(0))
	assert.Equal(t, [2]int{1, 2}, p.Last())
}

func TestRenderTerminal(t *testing.T) {
	r, d, p := newTestRenderer()
	s := newTestSession(t, "0123")
	apply(t, s, Confirm(), Confirm())
	require.Equal(t, StateWon, s.State())

	r.Render(s)
	assert.Equal(t, "Secret: 0123", d.Row(0))
	assert.Equal(t, "Well done! You w", string(d.rows[1]))
	assert.Equal(t, [2]int{4, 0}, p.Last())
}

func TestRenderClearsEveryTime(t *testing.T) {
	r, d, _ := newTestRenderer()
	s := newTestSession(t, "1234")
	r.Render(s)
	r.Render(s)
	assert.Equal(t, 2, d.clears)
}

func TestFormatEntry(t *testing.T) {
	e := history.Entry{Guess: code.MustNew(0, 1, 2, 3), Score: score.Result{Partial: 3}}
	assert.Equal(t, "1 : 0123  0A3B", FormatEntry(0, e))
	assert.Equal(t, "10: 0123  0A3B", FormatEntry(9, e))
}
