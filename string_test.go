package blt

import (
	"errors"
	"fmt"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/suite"
)

// unit is a tiny text-convertible wire type whose decode can fail.
type unit struct {
	symbol string
}

func (u unit) MarshalText() ([]byte, error) { return []byte(u.symbol), nil }

func (u *unit) UnmarshalText(text []byte) error {
	switch string(text) {
	case "C", "F", "K":
		u.symbol = string(text)
		return nil
	}
	return fmt.Errorf("unknown unit %q", text)
}

// badText always refuses to marshal.
type badText struct{}

func (badText) MarshalText() ([]byte, error) { return nil, errors.New("not representable") }

type StringCodecSuite struct {
	suite.Suite
}

func TestStringCodec(t *testing.T) {
	suite.Run(t, new(StringCodecSuite))
}

func (s *StringCodecSuite) TestHelloWorldWire() {
	var buf []byte
	SerializeString("Hello World!", &buf)

	expected := []byte{
		12, 0, 0, 0, 0, 0, 0, 0,
		'H', 'e', 'l', 'l', 'o', ' ', 'W', 'o', 'r', 'l', 'd', '!',
	}
	s.Require().Equal(expected, buf)

	got, err := DeserializeString(&buf)
	s.Require().NoError(err)
	s.Assert().Equal("Hello World!", got)
	s.Assert().Empty(buf)
}

func (s *StringCodecSuite) TestRoundTrip() {
	for _, v := range []string{
		"",
		"a",
		"Hello World!",
		"héllo wörld",
		"日本語のテキスト",
		"mixed ascii + 漢字 + emoji 🎉",
		"\x00embedded\x00nulls\x00",
	} {
		var buf []byte
		SerializeString(v, &buf)
		s.Require().Len(buf, WordSize+len(v))

		got, err := DeserializeString(&buf)
		s.Require().NoError(err)
		s.Assert().Equal(v, got)
		s.Assert().Empty(buf)
	}
}

func (s *StringCodecSuite) TestLeftoverPreserved() {
	var buf []byte
	SerializeString("first", &buf)
	SerializeString("second", &buf)
	SerializeUint32(99, &buf)

	got, err := DeserializeString(&buf)
	s.Require().NoError(err)
	s.Assert().Equal("first", got)

	// The remainder must be exactly the bytes appended after the first value.
	var tail []byte
	SerializeString("second", &tail)
	SerializeUint32(99, &tail)
	s.Assert().Equal(tail, buf)
}

func (s *StringCodecSuite) TestPrefixTooShort() {
	buf := []byte{1, 2, 3}
	snapshot := []byte{1, 2, 3}

	_, err := DeserializeString(&buf)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, ErrUnexpectedByteCount)

	var bce *ByteCountError
	s.Require().ErrorAs(err, &bce)
	s.Assert().Equal(WordSize, bce.Expected)
	s.Assert().Equal(3, bce.Actual)

	// The prefix read itself is atomic, so the buffer is untouched.
	s.Assert().Equal(snapshot, buf)
}

func (s *StringCodecSuite) TestDeclaredLengthExceedsBuffer() {
	buf := leWord(100)
	buf = append(buf, 'a', 'b', 'c')

	_, err := DeserializeString(&buf)
	s.Require().Error(err)

	var bce *ByteCountError
	s.Require().ErrorAs(err, &bce)
	s.Assert().Equal(100, bce.Expected)
	s.Assert().Equal(3, bce.Actual)

	// The length prefix is NOT restored: only the payload bytes remain.
	s.Assert().Equal([]byte{'a', 'b', 'c'}, buf)
}

func (s *StringCodecSuite) TestInvalidUTF8() {
	payload := []byte{'H', 0xFF, 0xFE, 'A'}
	buf := leWord(len(payload))
	buf = append(buf, payload...)
	buf = append(buf, 0x42) // trailing byte after the string

	_, err := DeserializeString(&buf)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, ErrInvalidString)

	var se *StringError
	s.Require().ErrorAs(err, &se)
	s.Assert().Equal(1, se.Offset)

	// The buffer has advanced past the bad payload either way.
	s.Assert().Equal([]byte{0x42}, buf)
}

func (s *StringCodecSuite) TestValueRoundTrip() {
	addr := netip.MustParseAddr("192.168.0.1")

	var buf []byte
	s.Require().NoError(SerializeValue(addr, &buf))

	got, err := DeserializeValue[netip.Addr](&buf)
	s.Require().NoError(err)
	s.Assert().Equal(addr, got)
	s.Assert().Empty(buf)
}

func (s *StringCodecSuite) TestValueConversionFailure() {
	var buf []byte
	SerializeString("X", &buf)
	SerializeUint8(7, &buf)

	_, err := DeserializeValue[unit](&buf)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, ErrInvalidValue)

	var ve *ValueError
	s.Require().ErrorAs(err, &ve)
	s.Assert().Equal(`unknown unit "X"`, ve.Message)

	// Conversion happens after the payload is consumed; decoding continues
	// from the next value.
	b, err := DeserializeUint8(&buf)
	s.Require().NoError(err)
	s.Assert().Equal(uint8(7), b)
}

func (s *StringCodecSuite) TestValueMarshalFailure() {
	var buf []byte
	err := SerializeValue(badText{}, &buf)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, ErrInvalidValue)
	s.Assert().Empty(buf)
}
