package blt

// FinalizeSerialization prepends the pointer-sized little-endian encoding of
// the buffer's current length, turning it into a self-describing frame whose
// first field states how many bytes follow. Build the whole record with the
// other serialize operations first, then call this exactly once.
func FinalizeSerialization(buf *[]byte) {
	n := len(*buf)
	*buf = append(*buf, make([]byte, WordSize)...)
	copy((*buf)[WordSize:], (*buf)[:n])
	putLE((*buf)[:WordSize], uint(n))
}

// DeserializeFrame removes a finalized frame from the buffer and returns the
// frame body. The total-length prefix follows the same consumption rule as
// string decoding: a body shorter than declared fails with ByteCountError
// and the prefix stays consumed.
//
// The returned slice aliases the buffer's backing array; callers that mutate
// or retain it past the buffer's lifetime must copy it first.
func DeserializeFrame(buf *[]byte) ([]byte, error) {
	size, err := DeserializeUint(buf)
	if err != nil {
		return nil, err
	}
	if size > uint(len(*buf)) {
		return nil, &ByteCountError{Expected: int(size), Actual: len(*buf)}
	}
	body := (*buf)[:size]
	*buf = (*buf)[size:]
	return body, nil
}
