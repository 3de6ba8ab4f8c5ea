package blt

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternDeduplicates(t *testing.T) {
	var buf []byte
	SerializeString("request_id", &buf)
	SerializeString("request_id", &buf)

	a, err := DeserializeInternedString(&buf)
	require.NoError(t, err)
	b, err := DeserializeInternedString(&buf)
	require.NoError(t, err)

	assert.Equal(t, "request_id", a)
	assert.Equal(t, a, b)
	// Both results must share one backing allocation.
	assert.Same(t, unsafe.StringData(a), unsafe.StringData(b))
}

func TestInternSkipsLongStrings(t *testing.T) {
	long := strings.Repeat("x", maxInternedLen+1)
	assert.Equal(t, long, Intern(long))

	var buf []byte
	SerializeString(long, &buf)
	got, err := DeserializeInternedString(&buf)
	require.NoError(t, err)
	assert.Equal(t, long, got)
}

func TestInternPropagatesErrors(t *testing.T) {
	buf := leWord(100)

	_, err := DeserializeInternedString(&buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedByteCount)
}
