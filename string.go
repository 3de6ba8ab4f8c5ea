package blt

import (
	"encoding"
	"unicode/utf8"
)

// TextPtr constrains P to a pointer to T that can be populated, fallibly,
// from UTF-8 text. Together with encoding.TextMarshaler on the serialize side
// it is the whole contract a custom wire type has to satisfy.
type TextPtr[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// SerializeString appends the pointer-sized little-endian byte length of s
// followed by its raw UTF-8 bytes.
func SerializeString(s string, buf *[]byte) {
	SerializeUint(uint(len(s)), buf)
	*buf = append(*buf, s...)
}

// DeserializeString removes the next length-prefixed string from the buffer.
//
// If the buffer is too short for the length prefix itself, the scalar codec's
// failure propagates and the buffer is left untouched. Once the prefix has
// been read it is never restored: a payload shorter than declared fails with
// a ByteCountError carrying the declared and remaining counts, and the prefix
// bytes stay consumed. A payload that splits off but is not valid UTF-8 fails
// with StringError, the buffer already advanced past it. Any failure here
// ends sequential decoding of the current record.
func DeserializeString(buf *[]byte) (string, error) {
	size, err := DeserializeUint(buf)
	if err != nil {
		return "", err
	}
	if size > uint(len(*buf)) {
		return "", &ByteCountError{Expected: int(size), Actual: len(*buf)}
	}
	payload := (*buf)[:size]
	*buf = (*buf)[size:]
	if !utf8.Valid(payload) {
		return "", &StringError{Offset: invalidRuneOffset(payload)}
	}
	return string(payload), nil
}

// invalidRuneOffset locates the first malformed UTF-8 sequence in p.
// Only called on payloads utf8.Valid already rejected.
func invalidRuneOffset(p []byte) int {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return 0
}

// SerializeValue appends the length-prefixed text form of v.
// A marshal failure surfaces as ValueError.
func SerializeValue(v encoding.TextMarshaler, buf *[]byte) error {
	text, err := v.MarshalText()
	if err != nil {
		return &ValueError{Message: err.Error()}
	}
	SerializeUint(uint(len(text)), buf)
	*buf = append(*buf, text...)
	return nil
}

// DeserializeValue removes the next string from the buffer and converts it
// into a T through its TextUnmarshaler. A conversion failure surfaces as
// ValueError carrying the unmarshaler's message; the buffer has already
// advanced past the payload by then.
func DeserializeValue[T any, P TextPtr[T]](buf *[]byte) (T, error) {
	var v T
	s, err := DeserializeString(buf)
	if err != nil {
		return v, err
	}
	if err := P(&v).UnmarshalText([]byte(s)); err != nil {
		return v, &ValueError{Message: err.Error()}
	}
	return v, nil
}
