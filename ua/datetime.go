package ua

import (
	"io"
	"time"
)

// unixToOpcuaTicksOffset is the number of 100ns ticks between the OPC UA
// epoch (1601-01-01 UTC) and the Unix epoch (1970-01-01 UTC).
const unixToOpcuaTicksOffset int64 = 116444736000000000

// DateTime is an Int64 count of 100-nanosecond ticks since 1601-01-01 UTC.
// Zero maps to null; math.MaxInt64 conventionally means "never expires"
// (spec §3).
type DateTime int64

// NewDateTime converts a time.Time to its OPC UA tick representation.
func NewDateTime(t time.Time) DateTime {
	if t.IsZero() {
		return 0
	}
	return DateTime(t.UnixNano()/100 + unixToOpcuaTicksOffset)
}

// Time converts back to a time.Time. The zero DateTime (null) converts to
// the zero time.Time.
func (d DateTime) Time() time.Time {
	if d == 0 {
		return time.Time{}
	}
	return time.Unix(0, (int64(d)-unixToOpcuaTicksOffset)*100).UTC()
}

// IsNull reports whether this DateTime is the null value.
func (d DateTime) IsNull() bool { return d == 0 }

// ByteLen is always 8.
func (DateTime) ByteLen() int { return 8 }

// Encode writes the 8-byte little-endian tick count.
func (d DateTime) Encode(w io.Writer) (int, error) { return WriteInt64(w, int64(d)) }

// DecodeDateTime reads the 8-byte little-endian tick count.
func DecodeDateTime(r io.Reader) (DateTime, error) {
	v, err := ReadInt64(r)
	return DateTime(v), err
}
