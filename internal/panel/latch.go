package panel

import (
	"sync"

	"github.com/abhisek/mastermind/internal/game"
)

// Latch holds button presses until the next sample. Pressing a button
// keeps its line active until Sample reads and releases it, so a press
// between two ticks is never lost and simultaneous presses form a chord.
type Latch struct {
	mu    sync.Mutex
	lines game.Lines
}

// NewLatch returns a latch for a panel with the given number of digit
// buttons.
func NewLatch(buttons int) *Latch {
	return &Latch{lines: game.DigitLines(buttons)}
}

// Buttons returns the number of digit buttons.
func (l *Latch) Buttons() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines.Digits)
}

// Press latches digit buttons (zero-based). Out-of-range buttons are
// ignored.
func (l *Latch) Press(buttons ...int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range buttons {
		if b >= 0 && b < len(l.lines.Digits) {
			l.lines.Digits[b] = true
		}
	}
}

// Confirm latches the confirm button.
func (l *Latch) Confirm() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines.Confirm = true
}

// Set latches every active line of ls.
func (l *Latch) Set(ls game.Lines) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, on := range ls.Digits {
		if on && i < len(l.lines.Digits) {
			l.lines.Digits[i] = true
		}
	}
	if ls.Confirm {
		l.lines.Confirm = true
	}
}

// Pending reports whether any line is latched.
func (l *Latch) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.lines.Idle()
}

// Sample returns the latched lines and releases them. It never fails.
func (l *Latch) Sample() (game.Lines, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.lines
	l.lines = game.DigitLines(len(out.Digits))
	return out, nil
}

// Peek returns a copy of the latched lines without releasing them.
func (l *Latch) Peek() game.Lines {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := game.Lines{Digits: make([]bool, len(l.lines.Digits)), Confirm: l.lines.Confirm}
	copy(out.Digits, l.lines.Digits)
	return out
}
