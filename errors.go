package blt

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedByteCount indicates a read required more bytes than the buffer held.
	// Matched with errors.Is; the expected/actual counts are carried by ByteCountError.
	ErrUnexpectedByteCount = errors.New("blt: unexpected byte count")

	// ErrInvalidString indicates a payload declared as a string is not valid UTF-8.
	ErrInvalidString = errors.New("blt: invalid UTF-8 string")

	// ErrInvalidValue indicates a decoded string could not be converted into the
	// caller's target type.
	ErrInvalidValue = errors.New("blt: invalid value")
)

// ByteCountError reports how many bytes a read needed versus how many the
// buffer actually held. For fixed-width scalar reads the buffer is left
// untouched; for length-prefixed reads the already-consumed prefix is not
// restored (see DeserializeString).
type ByteCountError struct {
	Expected int
	Actual   int
}

func (e *ByteCountError) Error() string {
	return fmt.Sprintf("blt: expected %d bytes, found %d", e.Expected, e.Actual)
}

func (e *ByteCountError) Unwrap() error { return ErrUnexpectedByteCount }

// StringError reports the byte offset of the first invalid UTF-8 sequence
// inside a string payload. The payload bytes have already been consumed from
// the buffer when this error is returned.
type StringError struct {
	Offset int
}

func (e *StringError) Error() string {
	return fmt.Sprintf("blt: invalid UTF-8 sequence at byte offset %d", e.Offset)
}

func (e *StringError) Unwrap() error { return ErrInvalidString }

// ValueError carries the human-readable reason a decoded string could not be
// converted into the requested target type.
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("blt: invalid value: %s", e.Message)
}

func (e *ValueError) Unwrap() error { return ErrInvalidValue }
