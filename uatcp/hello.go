package uatcp

import (
	"io"

	"github.com/bruegth/opcua-core/ua"
)

// HelloMessage is the client's opening proposal: the five negotiable
// UInt32 limits plus the endpoint URL it intends to connect to (spec §4.5).
type HelloMessage struct {
	ProtocolVersion   uint32
	ReceiveBufferSize uint32
	SendBufferSize    uint32
	MaxMessageSize    uint32
	MaxChunkCount     uint32
	EndpointURL       ua.String
}

// ByteLen returns the exact body length (header excluded).
func (h *HelloMessage) ByteLen() int {
	return 4*5 + h.EndpointURL.ByteLen()
}

// Encode writes the five UInt32 fields then the endpoint URL string, body
// only — the caller wraps this with WriteFrame for the 8-byte header.
func (h *HelloMessage) Encode(w io.Writer) (int, error) {
	size, err := ua.WriteUint32(w, h.ProtocolVersion)
	if err != nil {
		return size, err
	}
	n, err := ua.WriteUint32(w, h.ReceiveBufferSize)
	size += n
	if err != nil {
		return size, err
	}
	n, err = ua.WriteUint32(w, h.SendBufferSize)
	size += n
	if err != nil {
		return size, err
	}
	n, err = ua.WriteUint32(w, h.MaxMessageSize)
	size += n
	if err != nil {
		return size, err
	}
	n, err = ua.WriteUint32(w, h.MaxChunkCount)
	size += n
	if err != nil {
		return size, err
	}
	n, err = h.EndpointURL.Encode(w)
	return size + n, err
}

// DecodeHelloMessage reads a HelloMessage body. The endpoint URL's declared
// length is checked against MaxEndpointURLLength before allocation.
func DecodeHelloMessage(r io.Reader) (*HelloMessage, error) {
	h := &HelloMessage{}
	var err error
	if h.ProtocolVersion, err = ua.ReadUint32(r); err != nil {
		return nil, err
	}
	if h.ReceiveBufferSize, err = ua.ReadUint32(r); err != nil {
		return nil, err
	}
	if h.SendBufferSize, err = ua.ReadUint32(r); err != nil {
		return nil, err
	}
	if h.MaxMessageSize, err = ua.ReadUint32(r); err != nil {
		return nil, err
	}
	if h.MaxChunkCount, err = ua.ReadUint32(r); err != nil {
		return nil, err
	}
	limits := &ua.DecodingLimits{MaxStringLength: MaxEndpointURLLength}
	endpointURL, err := ua.DecodeString(r, limits)
	if err != nil {
		return nil, err
	}
	h.EndpointURL = endpointURL
	return h, nil
}

// Validate reports whether h is an acceptable Hello per spec §4.5: both
// buffer sizes at least MinBufferSize and the endpoint URL within
// MaxEndpointURLLength (already enforced by DecodeHelloMessage's limits,
// re-checked here so a HelloMessage built in-process is validated the same
// way a decoded one is).
func (h *HelloMessage) Validate() error {
	if h.ReceiveBufferSize < MinBufferSize || h.SendBufferSize < MinBufferSize {
		return &ua.DecodingError{Status: ua.StatusBadConnectionRejected, Msg: "proposed buffer size below minimum"}
	}
	if len(h.EndpointURL.Value) > MaxEndpointURLLength {
		return &ua.DecodingError{Status: ua.StatusBadConnectionRejected, Msg: "endpoint URL exceeds maximum length"}
	}
	return nil
}
