package panel

import "errors"

var (
	ErrUnknownToken = errors.New("unknown input token")
	ErrBadLines     = errors.New("malformed lines token")
)
