package uatcp

import (
	"io"

	"github.com/bruegth/opcua-core/ua"
)

// ErrorMessage carries a status code and a human-readable reason; sent in
// place of Acknowledge when a Hello is rejected, or at any point a protocol
// violation forces the connection closed (spec §4.5).
type ErrorMessage struct {
	Status ua.StatusCode
	Reason ua.String
}

// ByteLen returns the exact body length (header excluded).
func (e *ErrorMessage) ByteLen() int { return 4 + e.Reason.ByteLen() }

// Encode writes the status code then the reason string, body only.
func (e *ErrorMessage) Encode(w io.Writer) (int, error) {
	size, err := ua.WriteUint32(w, uint32(e.Status))
	if err != nil {
		return size, err
	}
	n, err := e.Reason.Encode(w)
	return size + n, err
}

// DecodeErrorMessage reads an ErrorMessage body.
func DecodeErrorMessage(r io.Reader, limits *ua.DecodingLimits) (*ErrorMessage, error) {
	status, err := ua.ReadUint32(r)
	if err != nil {
		return nil, err
	}
	reason, err := ua.DecodeString(r, limits)
	if err != nil {
		return nil, err
	}
	return &ErrorMessage{Status: ua.StatusCode(status), Reason: reason}, nil
}
