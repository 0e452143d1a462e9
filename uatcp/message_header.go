// Package uatcp implements UA-TCP: the chunk framing and single-shot
// Hello/Acknowledge/Error handshake OPC UA Part 6 layers over a raw byte
// stream. It depends on ua for primitives, String, and StatusCode, and
// adds nothing the codec layer doesn't need — ua has no dependency back
// into this package (spec §4.5, §5, §6).
package uatcp

import (
	"encoding/binary"
	"io"

	"github.com/bruegth/opcua-core/ua"
)

// MessageType is the three-ASCII-octet discriminant in a MessageHeader.
type MessageType string

const (
	MessageTypeHello        MessageType = "HEL"
	MessageTypeAcknowledge  MessageType = "ACK"
	MessageTypeError        MessageType = "ERR"
	MessageTypeMessage      MessageType = "MSG"
	MessageTypeOpenChannel  MessageType = "OPN"
	MessageTypeCloseChannel MessageType = "CLO"
)

// ChunkType is the fourth octet of a MessageHeader: whether this chunk
// completes, continues, or aborts its logical message.
type ChunkType byte

const (
	ChunkTypeFinal        ChunkType = 'F'
	ChunkTypeIntermediate ChunkType = 'C'
	ChunkTypeAbort        ChunkType = 'A'
)

// headerSize is the fixed 8-byte MessageHeader size: 3 type octets + 1
// chunk-type octet + a UInt32 total chunk length (spec §4.5).
const headerSize = 8

// MessageHeader is the fixed 8-byte header prefixing every UA-TCP chunk.
type MessageHeader struct {
	Type   MessageType
	Chunk  ChunkType
	Length uint32 // total chunk length, header included
}

// ByteLen is always 8.
func (MessageHeader) ByteLen() int { return headerSize }

// Encode writes the 3 type octets, the chunk-type octet, then the UInt32
// length, in that wire order, as a single write.
func (h MessageHeader) Encode(w io.Writer) (int, error) {
	if len(h.Type) != 3 {
		return 0, &ua.EncodingError{Status: ua.StatusBadInvalidState, Msg: "MessageHeader.Type must be exactly 3 ASCII octets"}
	}
	var buf [headerSize]byte
	copy(buf[0:3], h.Type)
	buf[3] = byte(h.Chunk)
	binary.LittleEndian.PutUint32(buf[4:8], h.Length)
	n, err := w.Write(buf[:])
	if err != nil {
		return n, &ua.EncodingError{Status: ua.StatusBadEncodingError, Msg: "short write of MessageHeader", Err: err}
	}
	return n, nil
}

// DecodeMessageHeader reads the fixed 8-byte header.
func DecodeMessageHeader(r io.Reader) (MessageHeader, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return MessageHeader{}, &ua.DecodingError{Status: ua.StatusBadDecodingError, Msg: "short read of MessageHeader", Err: err}
	}
	return MessageHeader{
		Type:   MessageType(buf[0:3]),
		Chunk:  ChunkType(buf[3]),
		Length: binary.LittleEndian.Uint32(buf[4:8]),
	}, nil
}
