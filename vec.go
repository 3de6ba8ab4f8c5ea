package blt

import "encoding"

// SerializeStrings appends a pointer-sized little-endian element count
// followed by each element as a length-prefixed string.
func SerializeStrings(values []string, buf *[]byte) {
	SerializeUint(uint(len(values)), buf)
	for _, v := range values {
		SerializeString(v, buf)
	}
}

// DeserializeStrings removes the next string sequence from the buffer.
//
// On a mid-sequence failure the buffer is left wherever the failing element
// stopped: every earlier element is consumed, and the failing element's
// length prefix (plus any payload bytes it managed to split off) are gone.
// That state is not usable for recovery; only complete success leaves the
// buffer at a defined position.
func DeserializeStrings(buf *[]byte) ([]string, error) {
	count, err := DeserializeUint(buf)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, capHint(count, len(*buf)))
	for i := uint(0); i < count; i++ {
		s, err := DeserializeString(buf)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// SerializeValues appends a counted sequence of custom wire types, each as a
// length-prefixed string. The first marshal failure aborts the append,
// leaving the count prefix and earlier elements in the buffer.
func SerializeValues[T encoding.TextMarshaler](values []T, buf *[]byte) error {
	SerializeUint(uint(len(values)), buf)
	for _, v := range values {
		if err := SerializeValue(v, buf); err != nil {
			return err
		}
	}
	return nil
}

// DeserializeValues removes the next sequence from the buffer, converting
// each element into a T. Mid-sequence failure behavior matches
// DeserializeStrings.
func DeserializeValues[T any, P TextPtr[T]](buf *[]byte) ([]T, error) {
	count, err := DeserializeUint(buf)
	if err != nil {
		return nil, err
	}
	result := make([]T, 0, capHint(count, len(*buf)))
	for i := uint(0); i < count; i++ {
		v, err := DeserializeValue[T, P](buf)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// capHint bounds the allocation hint for a declared element count. Every
// element needs at least a length prefix, so a hostile count cannot claim
// more elements than remaining/WordSize and cannot force a huge allocation
// before the first element even decodes.
func capHint(count uint, remaining int) int {
	hint := remaining / WordSize
	if c := int(count); c >= 0 && c < hint {
		hint = c
	}
	return hint
}
