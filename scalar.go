package blt

import "math"

// Uint128 is an unsigned 128-bit integer stored as two 64-bit halves.
// Go has no native 128-bit integer; on the wire it is simply sixteen
// little-endian bytes, Lo first.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 is a signed (two's complement) 128-bit integer.
type Int128 struct {
	Lo uint64
	Hi int64
}

// SerializeUint8 appends the 1-byte encoding of v to the buffer.
func SerializeUint8(v uint8, buf *[]byte) { appendLE(buf, v, 1) }

// SerializeUint16 appends the 2-byte little-endian encoding of v to the buffer.
func SerializeUint16(v uint16, buf *[]byte) { appendLE(buf, v, 2) }

// SerializeUint32 appends the 4-byte little-endian encoding of v to the buffer.
func SerializeUint32(v uint32, buf *[]byte) { appendLE(buf, v, 4) }

// SerializeUint64 appends the 8-byte little-endian encoding of v to the buffer.
func SerializeUint64(v uint64, buf *[]byte) { appendLE(buf, v, 8) }

// SerializeUint128 appends the 16-byte little-endian encoding of v to the buffer.
func SerializeUint128(v Uint128, buf *[]byte) {
	appendLE(buf, v.Lo, 8)
	appendLE(buf, v.Hi, 8)
}

// SerializeUint appends the pointer-sized little-endian encoding of v to the
// buffer. This is the width every length and count prefix uses.
func SerializeUint(v uint, buf *[]byte) { appendLE(buf, v, WordSize) }

// SerializeInt8 appends the 1-byte encoding of v to the buffer.
func SerializeInt8(v int8, buf *[]byte) { appendLE(buf, uint8(v), 1) }

// SerializeInt16 appends the 2-byte little-endian encoding of v to the buffer.
func SerializeInt16(v int16, buf *[]byte) { appendLE(buf, uint16(v), 2) }

// SerializeInt32 appends the 4-byte little-endian encoding of v to the buffer.
func SerializeInt32(v int32, buf *[]byte) { appendLE(buf, uint32(v), 4) }

// SerializeInt64 appends the 8-byte little-endian encoding of v to the buffer.
func SerializeInt64(v int64, buf *[]byte) { appendLE(buf, uint64(v), 8) }

// SerializeInt128 appends the 16-byte little-endian encoding of v to the buffer.
func SerializeInt128(v Int128, buf *[]byte) {
	appendLE(buf, v.Lo, 8)
	appendLE(buf, uint64(v.Hi), 8)
}

// SerializeInt appends the pointer-sized little-endian encoding of v to the buffer.
func SerializeInt(v int, buf *[]byte) { appendLE(buf, uint(v), WordSize) }

// SerializeFloat32 appends the 4-byte little-endian IEEE 754 encoding of v to
// the buffer. The bit pattern is preserved exactly, NaNs included.
func SerializeFloat32(v float32, buf *[]byte) { appendLE(buf, math.Float32bits(v), 4) }

// SerializeFloat64 appends the 8-byte little-endian IEEE 754 encoding of v to
// the buffer.
func SerializeFloat64(v float64, buf *[]byte) { appendLE(buf, math.Float64bits(v), 8) }

// DeserializeUint8 removes the next 1-byte value from the buffer.
// On shortfall the buffer is left untouched and a ByteCountError is returned;
// the same all-or-nothing rule holds for every fixed-width deserialize below.
func DeserializeUint8(buf *[]byte) (uint8, error) { return consumeLE[uint8](buf, 1) }

// DeserializeUint16 removes the next 2-byte little-endian value from the buffer.
func DeserializeUint16(buf *[]byte) (uint16, error) { return consumeLE[uint16](buf, 2) }

// DeserializeUint32 removes the next 4-byte little-endian value from the buffer.
func DeserializeUint32(buf *[]byte) (uint32, error) { return consumeLE[uint32](buf, 4) }

// DeserializeUint64 removes the next 8-byte little-endian value from the buffer.
func DeserializeUint64(buf *[]byte) (uint64, error) { return consumeLE[uint64](buf, 8) }

// DeserializeUint128 removes the next 16-byte little-endian value from the buffer.
func DeserializeUint128(buf *[]byte) (Uint128, error) {
	// Checked up front so a short buffer consumes neither half.
	if len(*buf) < 16 {
		return Uint128{}, &ByteCountError{Expected: 16, Actual: len(*buf)}
	}
	lo, _ := consumeLE[uint64](buf, 8)
	hi, _ := consumeLE[uint64](buf, 8)
	return Uint128{Lo: lo, Hi: hi}, nil
}

// DeserializeUint removes the next pointer-sized little-endian value from the buffer.
func DeserializeUint(buf *[]byte) (uint, error) { return consumeLE[uint](buf, WordSize) }

// DeserializeInt8 removes the next 1-byte value from the buffer.
func DeserializeInt8(buf *[]byte) (int8, error) {
	v, err := consumeLE[uint8](buf, 1)
	return int8(v), err
}

// DeserializeInt16 removes the next 2-byte little-endian value from the buffer.
func DeserializeInt16(buf *[]byte) (int16, error) {
	v, err := consumeLE[uint16](buf, 2)
	return int16(v), err
}

// DeserializeInt32 removes the next 4-byte little-endian value from the buffer.
func DeserializeInt32(buf *[]byte) (int32, error) {
	v, err := consumeLE[uint32](buf, 4)
	return int32(v), err
}

// DeserializeInt64 removes the next 8-byte little-endian value from the buffer.
func DeserializeInt64(buf *[]byte) (int64, error) {
	v, err := consumeLE[uint64](buf, 8)
	return int64(v), err
}

// DeserializeInt128 removes the next 16-byte little-endian value from the buffer.
func DeserializeInt128(buf *[]byte) (Int128, error) {
	if len(*buf) < 16 {
		return Int128{}, &ByteCountError{Expected: 16, Actual: len(*buf)}
	}
	lo, _ := consumeLE[uint64](buf, 8)
	hi, _ := consumeLE[uint64](buf, 8)
	return Int128{Lo: lo, Hi: int64(hi)}, nil
}

// DeserializeInt removes the next pointer-sized little-endian value from the buffer.
func DeserializeInt(buf *[]byte) (int, error) {
	v, err := consumeLE[uint](buf, WordSize)
	return int(v), err
}

// DeserializeFloat32 removes the next 4-byte IEEE 754 value from the buffer.
func DeserializeFloat32(buf *[]byte) (float32, error) {
	v, err := consumeLE[uint32](buf, 4)
	return math.Float32frombits(v), err
}

// DeserializeFloat64 removes the next 8-byte IEEE 754 value from the buffer.
func DeserializeFloat64(buf *[]byte) (float64, error) {
	v, err := consumeLE[uint64](buf, 8)
	return math.Float64frombits(v), err
}
