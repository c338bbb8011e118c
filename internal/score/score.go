// Package score compares a guess against a secret code.
package score

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/mastermind/internal/code"
)

var (
	// ErrLengthMismatch is returned when the secret and guess differ in length.
	ErrLengthMismatch = errors.New("secret and guess lengths differ")

	// ErrUnknownMode is returned by ParseMode for unrecognised names.
	ErrUnknownMode = errors.New("unknown scoring mode")
)

// Result is the feedback for one guess.
type Result struct {
	// Exact counts digits that are correct and in the correct position.
	Exact int
	// Partial counts correct digits in the wrong position.
	Partial int
}

// Solved reports whether every position of a code of the given length matched.
func (r Result) Solved(length int) bool {
	return r.Exact == length
}

func (r Result) String() string {
	return fmt.Sprintf("%dA%dB", r.Exact, r.Partial)
}

// Mode selects the partial-match counting rule.
type Mode string

const (
	// ModeReference counts every matching guess occurrence for each
	// non-exact secret position, without capping by multiplicity.
	ModeReference Mode = "reference"

	// ModeClassic caps partial matches by the remaining multiset overlap.
	ModeClassic Mode = "classic"
)

// AllModes returns the supported modes, default first.
func AllModes() []Mode {
	return []Mode{ModeReference, ModeClassic}
}

// ParseMode resolves a mode name case-insensitively. An empty name
// selects ModeReference.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeReference:
		return ModeReference, nil
	case ModeClassic:
		return ModeClassic, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Score evaluates guess against secret with the given mode.
func Score(mode Mode, secret, guess code.Code) (Result, error) {
	switch mode {
	case ModeReference, "":
		return Reference(secret, guess)
	case ModeClassic:
		return Classic(secret, guess)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Reference scores position by position. A secret digit in the right
// place is exact; otherwise it earns one partial for every guess position
// holding the same digit. A single secret digit can therefore earn more
// than one partial when the guess repeats it.
func Reference(secret, guess code.Code) (Result, error) {
	if secret.Len() != guess.Len() {
		return Result{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, secret.Len(), guess.Len())
	}
	s, g := secret.Digits(), guess.Digits()

	var r Result
	for i := range s {
		if s[i] == g[i] {
			r.Exact++
			continue
		}
		for n := range g {
			if s[i] == g[n] {
				r.Partial++
			}
		}
	}
	return r, nil
}

// Classic implements the two-pass multiset rule: exact matches first,
// then partial matches limited by how many of each digit remain unmatched
// on both sides.
func Classic(secret, guess code.Code) (Result, error) {
	if secret.Len() != guess.Len() {
		return Result{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, secret.Len(), guess.Len())
	}
	s, g := secret.Digits(), guess.Digits()

	var r Result
	var secretLeft, guessLeft [code.Base]int
	for i := range s {
		if s[i] == g[i] {
			r.Exact++
			continue
		}
		secretLeft[s[i]]++
		guessLeft[g[i]]++
	}
	for d := range secretLeft {
		r.Partial += min(secretLeft[d], guessLeft[d])
	}
	return r, nil
}
