// Package blt implements a minimal length-prefixed, little-endian binary
// codec over a caller-owned byte buffer.
//
// Serialize operations append to the back of the buffer and cannot fail.
// Deserialize operations consume exactly the bytes they need from the front
// of the buffer and leave the remainder intact, so heterogeneous records can
// be decoded sequentially without a separate cursor. Variable-length payloads
// (strings, sequences, frames) carry a pointer-sized little-endian length
// prefix; fixed-width scalars carry none, their width is implicit in the
// operation chosen.
//
// The codec has no I/O, no configuration and no internal recovery: every
// failure surfaces to the caller as one of the three error kinds declared in
// errors.go.
package blt

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// WordSize is the width in bytes of a pointer-sized length or count field.
// A consumer built on a different pointer width must agree on this out of
// band; the wire format carries no width negotiation.
const WordSize = bits.UintSize / 8

// putLE writes v into b least-significant byte first, one byte per element.
func putLE[T constraints.Unsigned](b []byte, v T) {
	for i := range b {
		b[i] = byte(v)
		v = T(uint64(v) >> 8)
	}
}

// takeLE assembles a little-endian value from every byte of b.
func takeLE[T constraints.Unsigned](b []byte) T {
	var v T
	for i := len(b) - 1; i >= 0; i-- {
		v = T(uint64(v)<<8 | uint64(b[i]))
	}
	return v
}

// appendLE appends the width-byte little-endian encoding of v to the buffer.
func appendLE[T constraints.Unsigned](buf *[]byte, v T, width int) {
	var scratch [8]byte
	putLE(scratch[:width], v)
	*buf = append(*buf, scratch[:width]...)
}

// consumeLE removes a width-byte little-endian value from the front of the
// buffer. On shortfall the buffer is left untouched.
func consumeLE[T constraints.Unsigned](buf *[]byte, width int) (T, error) {
	if len(*buf) < width {
		return 0, &ByteCountError{Expected: width, Actual: len(*buf)}
	}
	v := takeLE[T]((*buf)[:width])
	*buf = (*buf)[width:]
	return v, nil
}
