package ua

import (
	"fmt"
	"io"
)

// Guid is a 16-octet globally unique identifier: a UInt32, a UInt16, a
// UInt16 (all little-endian), then 8 raw octets verbatim (spec §3, example
// in §8: {0x72962B91, 0xFA75, 0x4AE6, [0x8D,0x28,0xB4,0x04,0xDC,0x7D,0xAF,0x63]}
// encodes to 91 2B 96 72 75 FA E6 4A 8D 28 B4 04 DC 7D AF 63).
type Guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// ByteLen is always 16.
func (Guid) ByteLen() int { return 16 }

// Encode writes the 16-byte wire representation.
func (g Guid) Encode(w io.Writer) (int, error) {
	size := 0
	n, err := WriteUint32(w, g.Data1)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint16(w, g.Data2)
	size += n
	if err != nil {
		return size, err
	}
	n, err = WriteUint16(w, g.Data3)
	size += n
	if err != nil {
		return size, err
	}
	n, err = writeAll(w, g.Data4[:])
	size += n
	return size, err
}

// DecodeGuid reads the 16-byte wire representation.
func DecodeGuid(r io.Reader) (Guid, error) {
	var g Guid
	var err error
	if g.Data1, err = ReadUint32(r); err != nil {
		return Guid{}, err
	}
	if g.Data2, err = ReadUint16(r); err != nil {
		return Guid{}, err
	}
	if g.Data3, err = ReadUint16(r); err != nil {
		return Guid{}, err
	}
	buf, err := readExact(r, 8)
	if err != nil {
		return Guid{}, err
	}
	copy(g.Data4[:], buf)
	return g, nil
}

// String renders the canonical hyphenated hex form.
func (g Guid) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}
