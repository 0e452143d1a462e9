package ua

import (
	"io"
	"unicode/utf8"
)

// String is a UA String: an optional UTF-8 byte sequence. Null (absent) is
// distinct from present-but-empty — encoded on the wire as Int32 length
// -1 versus 0 respectively (spec §3, §8.4). The zero value String{} is the
// present empty string, not null; use NullString for the null string.
type String struct {
	Value string
	Null  bool
}

// NewString returns a present (non-null) String, even when value is "".
func NewString(value string) String { return String{Value: value} }

// NullString returns the null String.
func NullString() String { return String{Null: true} }

// IsNull reports whether this is the null string.
func (s String) IsNull() bool { return s.Null }

// ByteLen returns the exact number of bytes Encode will write.
func (s String) ByteLen() int {
	if s.Null {
		return 4
	}
	return 4 + len(s.Value)
}

// Encode writes the Int32 length prefix (-1 if null) followed by the UTF-8
// bytes, if present.
func (s String) Encode(w io.Writer) (int, error) {
	if s.Null {
		return WriteInt32(w, -1)
	}
	n, err := WriteInt32(w, int32(len(s.Value)))
	if err != nil {
		return n, err
	}
	m, err := writeAll(w, []byte(s.Value))
	return n + m, err
}

// DecodeString reads an Int32 length prefix then, if non-negative, that many
// UTF-8 bytes. A length of -1 decodes to the null string. The declared
// length is checked against limits.MaxStringLength before any allocation
// proportional to it occurs (spec §8.5).
func DecodeString(r io.Reader, limits *DecodingLimits) (String, error) {
	n, err := ReadInt32(r)
	if err != nil {
		return String{}, err
	}
	if n < 0 {
		return NullString(), nil
	}
	if int(n) > limits.maxStringLength() {
		return String{}, newDecodingError(StatusBadEncodingLimitsExceeded, "string length exceeds limit", nil)
	}
	buf, err := readExact(r, int(n))
	if err != nil {
		return String{}, err
	}
	if !utf8.Valid(buf) {
		return String{}, newDecodingError(StatusBadDecodingError, "string is not valid UTF-8", nil)
	}
	return NewString(string(buf)), nil
}

// XMLElement shares String's wire format; its contents are assumed to be
// well-formed XML text and are not validated by this codec (spec §3).
type XMLElement = String

// ByteString is an optional raw byte sequence with the same null/empty
// distinction as String.
type ByteString struct {
	Data []byte
	Null bool
}

// NewByteString returns a present (non-null) ByteString.
func NewByteString(data []byte) ByteString { return ByteString{Data: data} }

// NullByteString returns the null ByteString.
func NullByteString() ByteString { return ByteString{Null: true} }

// IsNull reports whether this is the null byte string.
func (b ByteString) IsNull() bool { return b.Null }

// ByteLen returns the exact number of bytes Encode will write.
func (b ByteString) ByteLen() int {
	if b.Null {
		return 4
	}
	return 4 + len(b.Data)
}

// Encode writes the Int32 length prefix (-1 if null) followed by the raw
// bytes, if present.
func (b ByteString) Encode(w io.Writer) (int, error) {
	if b.Null {
		return WriteInt32(w, -1)
	}
	n, err := WriteInt32(w, int32(len(b.Data)))
	if err != nil {
		return n, err
	}
	m, err := writeAll(w, b.Data)
	return n + m, err
}

// DecodeByteString reads an Int32 length prefix then, if non-negative, that
// many raw bytes, enforcing limits.MaxByteStringLength against the declared
// length before allocating.
func DecodeByteString(r io.Reader, limits *DecodingLimits) (ByteString, error) {
	n, err := ReadInt32(r)
	if err != nil {
		return ByteString{}, err
	}
	if n < 0 {
		return NullByteString(), nil
	}
	if int(n) > limits.maxByteStringLength() {
		return ByteString{}, newDecodingError(StatusBadEncodingLimitsExceeded, "byte string length exceeds limit", nil)
	}
	buf, err := readExact(r, int(n))
	if err != nil {
		return ByteString{}, err
	}
	return NewByteString(buf), nil
}
