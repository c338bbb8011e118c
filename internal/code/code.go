package code

import (
	"fmt"
	"strings"
)

const (
	// Base is the size of the digit alphabet.
	Base = 10

	// MaxLength is the longest code a session may play. It is also the
	// longest repetition-free code the alphabet can produce.
	MaxLength = Base
)

// Digit is a single code symbol in [0,9].
type Digit uint8

// Valid reports whether d is inside the alphabet.
func (d Digit) Valid() bool {
	return d < Base
}

// Next returns the digit after d, wrapping 9 back to 0.
func (d Digit) Next() Digit {
	return (d + 1) % Base
}

// Code is an ordered, length-tracked sequence of digits.
// The zero value is an empty code.
type Code struct {
	digits []Digit
}

// New builds a code from the given digits. It copies the slice.
func New(digits ...Digit) (Code, error) {
	for i, d := range digits {
		if !d.Valid() {
			return Code{}, fmt.Errorf("position %d: %w: %d", i, ErrInvalidDigit, d)
		}
	}
	c := Code{digits: make([]Digit, len(digits))}
	copy(c.digits, digits)
	return c, nil
}

// MustNew is like New but panics on invalid digits. Intended for tests
// and constants.
func MustNew(digits ...Digit) Code {
	c, err := New(digits...)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse reads a code from a string of decimal digits such as "0123".
// Spaces are ignored.
func Parse(s string) (Code, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return Code{}, fmt.Errorf("%w: empty code", ErrInvalidLength)
	}
	digits := make([]Digit, 0, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return Code{}, fmt.Errorf("position %d: %w: %q", i, ErrInvalidDigit, r)
		}
		digits = append(digits, Digit(r-'0'))
	}
	return Code{digits: digits}, nil
}

// Starting returns the canonical first guess for a code of the given
// length: 0,1,2,... with digit i equal to i mod 10.
func Starting(length int) (Code, error) {
	if length < 1 {
		return Code{}, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	digits := make([]Digit, length)
	for i := range digits {
		digits[i] = Digit(i % Base)
	}
	return Code{digits: digits}, nil
}

// Len returns the number of digits in the code.
func (c Code) Len() int {
	return len(c.digits)
}

// At returns the digit at position i.
func (c Code) At(i int) (Digit, error) {
	if i < 0 || i >= len(c.digits) {
		return 0, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, i, len(c.digits))
	}
	return c.digits[i], nil
}

// Digits returns a copy of the code's digits.
func (c Code) Digits() []Digit {
	out := make([]Digit, len(c.digits))
	copy(out, c.digits)
	return out
}

// Clone returns an independent copy of the code.
func (c Code) Clone() Code {
	return Code{digits: c.Digits()}
}

// Increment advances the digit at position i, wrapping 9 to 0.
func (c Code) Increment(i int) error {
	if i < 0 || i >= len(c.digits) {
		return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, i, len(c.digits))
	}
	c.digits[i] = c.digits[i].Next()
	return nil
}

// Equal reports whether both codes hold the same digits in the same order.
func (c Code) Equal(other Code) bool {
	if len(c.digits) != len(other.digits) {
		return false
	}
	for i := range c.digits {
		if c.digits[i] != other.digits[i] {
			return false
		}
	}
	return true
}

// Distinct reports whether no digit appears twice.
func (c Code) Distinct() bool {
	var seen [Base]bool
	for _, d := range c.digits {
		if seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

// String renders the digits without separators, e.g. "0123".
func (c Code) String() string {
	var b strings.Builder
	b.Grow(len(c.digits))
	for _, d := range c.digits {
		b.WriteByte('0' + byte(d))
	}
	return b.String()
}
