package uatcp

import (
	"io"

	"github.com/bruegth/opcua-core/ua"
)

// ReadFrame reads one chunk: the fixed 8-byte header, then exactly
// Length-8 body bytes, validating the declared length falls within
// [8, maxMessageSize] before reading the body (spec §4.5's chunk reader:
// "read exactly 8 bytes → parse header → validate → read length-8 body").
// A declared length outside that range fails with BadTcpMessageTooLarge
// without reading the (possibly enormous) body.
func ReadFrame(r io.Reader, maxMessageSize uint32) (MessageHeader, []byte, error) {
	header, err := DecodeMessageHeader(r)
	if err != nil {
		return MessageHeader{}, nil, err
	}
	if header.Length < headerSize || (maxMessageSize > 0 && header.Length > maxMessageSize) {
		return header, nil, &ua.DecodingError{
			Status: ua.StatusBadTCPMessageTooLarge,
			Msg:    "chunk length outside negotiated bounds",
		}
	}
	body := make([]byte, header.Length-headerSize)
	if _, err := io.ReadFull(r, body); err != nil {
		return header, nil, &ua.DecodingError{Status: ua.StatusBadDecodingError, Msg: "short read of chunk body", Err: err}
	}
	return header, body, nil
}

// WriteFrame writes the 8-byte header (type, chunk type, total length)
// followed by body, failing with BadResponseTooLarge if body alone
// (header not counted) exceeds maxChunkBodySize (spec §6). maxChunkBodySize == 0
// disables the check (used for the handshake messages, which precede any
// negotiated limit).
func WriteFrame(w io.Writer, msgType MessageType, chunk ChunkType, body []byte, maxChunkBodySize uint32) (int, error) {
	if maxChunkBodySize > 0 && uint32(len(body)) > maxChunkBodySize {
		return 0, &ua.EncodingError{Status: ua.StatusBadResponseTooLarge, Msg: "chunk body exceeds negotiated send buffer"}
	}
	header := MessageHeader{Type: msgType, Chunk: chunk, Length: uint32(headerSize + len(body))}
	size, err := header.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := w.Write(body)
	size += n
	if err != nil {
		return size, &ua.EncodingError{Status: ua.StatusBadEncodingError, Msg: "short write of chunk body", Err: err}
	}
	return size, nil
}
