package ua

import "fmt"

// StatusCode is an OPC UA result code. The high 16 bits carry the code, the
// low 16 bits carry sub-code/info flags (spec Part 6 §7.34).
type StatusCode uint32

// A representative slice of the OPC UA status code registry: enough to drive
// this core's own error taxonomy and the handshake's rejection paths. The
// full Annex A registry belongs to the schema code generator, out of scope
// here (see SPEC_FULL.md).
const (
	StatusOK                       StatusCode = 0x00000000
	StatusBadUnexpectedError       StatusCode = 0x80010000
	StatusBadInternalError         StatusCode = 0x80020000
	StatusBadEncodingError         StatusCode = 0x80060000
	StatusBadDecodingError         StatusCode = 0x80070000
	StatusBadEncodingLimitsExceeded StatusCode = 0x80080000
	StatusBadInvalidState          StatusCode = 0x80330000
	StatusBadConnectionRejected    StatusCode = 0x80140000
	StatusBadTCPMessageTooLarge    StatusCode = 0x80160000
	StatusBadResponseTooLarge      StatusCode = 0x80B80000
	StatusBadTCPNotEnoughResources StatusCode = 0x80150000
	StatusBadCommunicationError    StatusCode = 0x80050000
)

// Code returns the high-16-bit status code, discarding sub-code flags.
func (s StatusCode) Code() uint16 { return uint16(s >> 16) }

// Flags returns the low-16-bit sub-code/info bits.
func (s StatusCode) Flags() uint16 { return uint16(s) }

// IsGood reports whether the status code's severity bits indicate success.
// Per Part 6, the two high bits of the code distinguish Good/Uncertain/Bad;
// 0x80000000 and above is Bad.
func (s StatusCode) IsGood() bool { return uint32(s)&0xC0000000 == 0 }

func (s StatusCode) String() string {
	switch s {
	case StatusOK:
		return "Good"
	case StatusBadUnexpectedError:
		return "BadUnexpectedError"
	case StatusBadInternalError:
		return "BadInternalError"
	case StatusBadEncodingError:
		return "BadEncodingError"
	case StatusBadDecodingError:
		return "BadDecodingError"
	case StatusBadEncodingLimitsExceeded:
		return "BadEncodingLimitsExceeded"
	case StatusBadInvalidState:
		return "BadInvalidState"
	case StatusBadConnectionRejected:
		return "BadConnectionRejected"
	case StatusBadTCPMessageTooLarge:
		return "BadTcpMessageTooLarge"
	case StatusBadResponseTooLarge:
		return "BadResponseTooLarge"
	case StatusBadTCPNotEnoughResources:
		return "BadTcpNotEnoughResources"
	case StatusBadCommunicationError:
		return "BadCommunicationError"
	default:
		return fmt.Sprintf("StatusCode(0x%08X)", uint32(s))
	}
}

// EncodingError is returned when a value cannot be written to the wire:
// a short write, a declared size exceeding a configured limit, or an
// attempt to encode a malformed value (e.g. a NodeId with an inconsistent
// identifier variant). Codec functions never recover from this locally —
// the caller abandons the current message (spec §7).
type EncodingError struct {
	Status StatusCode
	Msg    string
	Err    error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("opcua: encoding error (%s): %s: %v", e.Status, e.Msg, e.Err)
	}
	return fmt.Sprintf("opcua: encoding error (%s): %s", e.Status, e.Msg)
}

func (e *EncodingError) Unwrap() error { return e.Err }

func newEncodingError(status StatusCode, msg string, err error) *EncodingError {
	return &EncodingError{Status: status, Msg: msg, Err: err}
}

// DecodingError is returned when the wire bytes cannot be interpreted:
// a truncated stream, invalid UTF-8, an unrecognized discriminant byte,
// or a declared length exceeding a DecodingLimits bound.
type DecodingError struct {
	Status StatusCode
	Msg    string
	Err    error
}

func (e *DecodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("opcua: decoding error (%s): %s: %v", e.Status, e.Msg, e.Err)
	}
	return fmt.Sprintf("opcua: decoding error (%s): %s", e.Status, e.Msg)
}

func (e *DecodingError) Unwrap() error { return e.Err }

func newDecodingError(status StatusCode, msg string, err error) *DecodingError {
	return &DecodingError{Status: status, Msg: msg, Err: err}
}
