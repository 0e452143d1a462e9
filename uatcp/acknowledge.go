package uatcp

import (
	"io"

	"github.com/bruegth/opcua-core/ua"
)

// AcknowledgeMessage is the server's response to a valid Hello: the same
// five UInt32 fields, each already clamped to the server's own configured
// limits — no endpoint URL (spec §4.5).
type AcknowledgeMessage struct {
	ProtocolVersion   uint32
	ReceiveBufferSize uint32
	SendBufferSize    uint32
	MaxMessageSize    uint32
	MaxChunkCount     uint32
}

// ByteLen returns the exact body length (header excluded).
func (AcknowledgeMessage) ByteLen() int { return 4 * 5 }

// Encode writes the five UInt32 fields, body only.
func (a *AcknowledgeMessage) Encode(w io.Writer) (int, error) {
	size, err := ua.WriteUint32(w, a.ProtocolVersion)
	if err != nil {
		return size, err
	}
	n, err := ua.WriteUint32(w, a.ReceiveBufferSize)
	size += n
	if err != nil {
		return size, err
	}
	n, err = ua.WriteUint32(w, a.SendBufferSize)
	size += n
	if err != nil {
		return size, err
	}
	n, err = ua.WriteUint32(w, a.MaxMessageSize)
	size += n
	if err != nil {
		return size, err
	}
	n, err = ua.WriteUint32(w, a.MaxChunkCount)
	return size + n, err
}

// DecodeAcknowledgeMessage reads an AcknowledgeMessage body.
func DecodeAcknowledgeMessage(r io.Reader) (*AcknowledgeMessage, error) {
	a := &AcknowledgeMessage{}
	var err error
	if a.ProtocolVersion, err = ua.ReadUint32(r); err != nil {
		return nil, err
	}
	if a.ReceiveBufferSize, err = ua.ReadUint32(r); err != nil {
		return nil, err
	}
	if a.SendBufferSize, err = ua.ReadUint32(r); err != nil {
		return nil, err
	}
	if a.MaxMessageSize, err = ua.ReadUint32(r); err != nil {
		return nil, err
	}
	if a.MaxChunkCount, err = ua.ReadUint32(r); err != nil {
		return nil, err
	}
	return a, nil
}

// negotiate builds the server's AcknowledgeMessage from its own configured
// limits and the client's Hello proposal, taking the lesser of each buffer
// size (spec §4.5).
func negotiate(hello *HelloMessage, serverLimits NegotiatedLimits) *AcknowledgeMessage {
	return &AcknowledgeMessage{
		ProtocolVersion:   hello.ProtocolVersion,
		ReceiveBufferSize: lesser(hello.ReceiveBufferSize, serverLimits.ReceiveBufferSize),
		SendBufferSize:    lesser(hello.SendBufferSize, serverLimits.SendBufferSize),
		MaxMessageSize:    lesser(hello.MaxMessageSize, serverLimits.MaxMessageSize),
		MaxChunkCount:     lesser(hello.MaxChunkCount, serverLimits.MaxChunkCount),
	}
}
