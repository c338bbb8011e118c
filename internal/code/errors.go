package code

import "errors"

var (
	// ErrInvalidLength is returned when a code length cannot be produced
	// or is outside the supported range.
	ErrInvalidLength = errors.New("invalid code length")

	// ErrIndexOutOfRange is returned when a digit position is outside the code.
	ErrIndexOutOfRange = errors.New("digit index out of range")

	// ErrInvalidDigit is returned when parsing a character that is not 0-9.
	ErrInvalidDigit = errors.New("invalid digit")
)
