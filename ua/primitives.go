// Package ua implements the OPC UA Part 6 binary (UA Binary) encoding:
// the fixed-width primitives, built-in types (String, Guid, DateTime,
// NodeId, QualifiedName, LocalizedText, DiagnosticInfo, ExtensionObject,
// Variant, DataValue) and the Part 4 service message types carried over
// it. It has no knowledge of transport — uatcp builds on top of this
// package, never the other way around.
package ua

import (
	"encoding/binary"
	"io"
	"math"
)

// Layer 1: byte-order-specific reads/writes for fixed-width integers, IEEE
// floats, and raw byte runs. Every multi-byte value is little-endian (spec
// §3). A successful read advances the stream by exactly the type's width;
// a short read or write failure returns a DecodingError/EncodingError and
// the caller abandons the current message — there is no partial-value
// recovery (spec §4.1).

func readExact(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, newDecodingError(StatusBadDecodingError, "short read", err)
	}
	return buf, nil
}

func writeAll(w io.Writer, b []byte) (int, error) {
	n, err := w.Write(b)
	if err != nil {
		return n, newEncodingError(StatusBadEncodingError, "short write", err)
	}
	if n != len(b) {
		return n, newEncodingError(StatusBadEncodingError, "short write", io.ErrShortWrite)
	}
	return n, nil
}

// ReadUint8 reads a single unsigned octet.
func ReadUint8(r io.Reader) (uint8, error) {
	b, err := readExact(r, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteUint8 writes a single unsigned octet.
func WriteUint8(w io.Writer, v uint8) (int, error) { return writeAll(w, []byte{v}) }

// ReadInt8 reads a single two's-complement octet.
func ReadInt8(r io.Reader) (int8, error) {
	v, err := ReadUint8(r)
	return int8(v), err
}

// WriteInt8 writes a single two's-complement octet.
func WriteInt8(w io.Writer, v int8) (int, error) { return WriteUint8(w, uint8(v)) }

// ReadUint16 reads a little-endian 16-bit unsigned integer.
func ReadUint16(r io.Reader) (uint16, error) {
	b, err := readExact(r, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// WriteUint16 writes a little-endian 16-bit unsigned integer.
func WriteUint16(w io.Writer, v uint16) (int, error) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return writeAll(w, b[:])
}

// ReadInt16 reads a little-endian 16-bit two's-complement integer.
func ReadInt16(r io.Reader) (int16, error) {
	v, err := ReadUint16(r)
	return int16(v), err
}

// WriteInt16 writes a little-endian 16-bit two's-complement integer.
func WriteInt16(w io.Writer, v int16) (int, error) { return WriteUint16(w, uint16(v)) }

// ReadUint32 reads a little-endian 32-bit unsigned integer.
func ReadUint32(r io.Reader) (uint32, error) {
	b, err := readExact(r, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// WriteUint32 writes a little-endian 32-bit unsigned integer.
func WriteUint32(w io.Writer, v uint32) (int, error) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return writeAll(w, b[:])
}

// ReadInt32 reads a little-endian 32-bit two's-complement integer.
func ReadInt32(r io.Reader) (int32, error) {
	v, err := ReadUint32(r)
	return int32(v), err
}

// WriteInt32 writes a little-endian 32-bit two's-complement integer.
func WriteInt32(w io.Writer, v int32) (int, error) { return WriteUint32(w, uint32(v)) }

// ReadUint64 reads a little-endian 64-bit unsigned integer.
func ReadUint64(r io.Reader) (uint64, error) {
	b, err := readExact(r, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// WriteUint64 writes a little-endian 64-bit unsigned integer.
func WriteUint64(w io.Writer, v uint64) (int, error) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return writeAll(w, b[:])
}

// ReadInt64 reads a little-endian 64-bit two's-complement integer.
func ReadInt64(r io.Reader) (int64, error) {
	v, err := ReadUint64(r)
	return int64(v), err
}

// WriteInt64 writes a little-endian 64-bit two's-complement integer.
func WriteInt64(w io.Writer, v int64) (int, error) { return WriteUint64(w, uint64(v)) }

// ReadFloat32 reads a little-endian IEEE-754 single-precision float.
func ReadFloat32(r io.Reader) (float32, error) {
	v, err := ReadUint32(r)
	return math.Float32frombits(v), err
}

// WriteFloat32 writes a little-endian IEEE-754 single-precision float.
func WriteFloat32(w io.Writer, v float32) (int, error) {
	return WriteUint32(w, math.Float32bits(v))
}

// ReadFloat64 reads a little-endian IEEE-754 double-precision float.
func ReadFloat64(r io.Reader) (float64, error) {
	v, err := ReadUint64(r)
	return math.Float64frombits(v), err
}

// WriteFloat64 writes a little-endian IEEE-754 double-precision float.
func WriteFloat64(w io.Writer, v float64) (int, error) {
	return WriteUint64(w, math.Float64bits(v))
}

// ReadBoolean decodes a Boolean. Any nonzero octet on the wire maps to true;
// only encoders are required to emit exactly 0x00/0x01 (spec §3).
func ReadBoolean(r io.Reader) (bool, error) {
	v, err := ReadUint8(r)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// WriteBoolean encodes a Boolean as exactly 0x00 or 0x01.
func WriteBoolean(w io.Writer, v bool) (int, error) {
	if v {
		return WriteUint8(w, 1)
	}
	return WriteUint8(w, 0)
}
