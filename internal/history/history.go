// Package history records submitted guesses and their scores.
package history

import (
	"errors"
	"fmt"

	"github.com/abhisek/mastermind/internal/code"
	"github.com/abhisek/mastermind/internal/score"
)

var (
	// ErrCapacityExceeded is returned when appending to a full log.
	ErrCapacityExceeded = errors.New("history capacity exceeded")

	// ErrIndexOutOfRange is returned when reading outside the log.
	ErrIndexOutOfRange = errors.New("history index out of range")
)

// Entry is one submitted guess together with its score.
type Entry struct {
	Guess code.Code
	Score score.Result
}

// Log is a bounded, append-only list of entries with a review cursor.
// The cursor moves independently of appends, except that every append
// points it at the newest entry.
type Log struct {
	entries  []Entry
	capacity int
	cursor   int
}

// New creates an empty log holding at most capacity entries.
func New(capacity int) *Log {
	if capacity < 0 {
		capacity = 0
	}
	return &Log{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

// Append stores a copy of e and moves the cursor to it.
func (l *Log) Append(e Entry) error {
	if len(l.entries) >= l.capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, l.capacity)
	}
	e.Guess = e.Guess.Clone()
	l.entries = append(l.entries, e)
	l.cursor = len(l.entries) - 1
	return nil
}

// Get returns the entry at index i.
func (l *Log) Get(i int) (Entry, error) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, i, len(l.entries))
	}
	e := l.entries[i]
	e.Guess = e.Guess.Clone()
	return e, nil
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Cap returns the maximum number of entries.
func (l *Log) Cap() int {
	return l.capacity
}

// Full reports whether another append would fail.
func (l *Log) Full() bool {
	return len(l.entries) >= l.capacity
}

// Empty reports whether nothing has been appended yet.
func (l *Log) Empty() bool {
	return len(l.entries) == 0
}

// Last returns the most recent entry.
func (l *Log) Last() (Entry, error) {
	return l.Get(len(l.entries) - 1)
}

// Cursor returns the review position.
func (l *Log) Cursor() int {
	return l.cursor
}

// Current returns the entry under the review cursor.
func (l *Log) Current() (Entry, error) {
	return l.Get(l.cursor)
}

// MoveBack steps the cursor towards older entries. It reports false
// when the cursor is already at the first entry.
func (l *Log) MoveBack() bool {
	if l.cursor <= 0 {
		return false
	}
	l.cursor--
	return true
}

// MoveForward steps the cursor towards newer entries. It reports false
// when the cursor is already at the newest entry.
func (l *Log) MoveForward() bool {
	if l.cursor >= len(l.entries)-1 {
		return false
	}
	l.cursor++
	return true
}

// CanMoveForward reports whether MoveForward would move.
func (l *Log) CanMoveForward() bool {
	return l.cursor < len(l.entries)-1
}

// Entries returns a copy of all entries, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		e.Guess = e.Guess.Clone()
		out[i] = e
	}
	return out
}
