package ua

import "io"

// ExtensionObjectEncoding selects an ExtensionObject's body representation.
type ExtensionObjectEncoding byte

const (
	ExtensionObjectEncodingNone       ExtensionObjectEncoding = 0x00
	ExtensionObjectEncodingByteString ExtensionObjectEncoding = 0x01
	ExtensionObjectEncodingXMLElement ExtensionObjectEncoding = 0x02
)

// ExtensionObject is a container for an application-specific data type that
// may not be recognized by the receiver: a NodeId naming the data type's
// binary encoding, plus a body selected by a one-byte discriminant
// (spec §3, §4.2).
type ExtensionObject struct {
	TypeID   *NodeID
	Encoding ExtensionObjectEncoding
	Body     []byte // raw bytes; interpretation depends on Encoding
}

// NullExtensionObject returns the null ExtensionObject: a null TypeID and
// no body.
func NullExtensionObject() *ExtensionObject {
	return &ExtensionObject{TypeID: NewNumericNodeID(0, 0), Encoding: ExtensionObjectEncodingNone}
}

// ByteLen returns the exact wire length.
func (e *ExtensionObject) ByteLen() int {
	size := e.TypeID.ByteLen() + 1
	if e.Encoding != ExtensionObjectEncodingNone {
		size += 4 + len(e.Body)
	}
	return size
}

// Encode writes the type-id NodeId, the one-byte body selector, and the
// body as a length-prefixed ByteString/XmlElement (spec example: a null
// body is node-id bytes + 0x00, 3 bytes total for Numeric(0,0); a present
// body carries its own Int32 length prefix ahead of the raw bytes, matching
// DecodeExtensionObject below).
func (e *ExtensionObject) Encode(w io.Writer) (int, error) {
	size, err := e.TypeID.Encode(w)
	if err != nil {
		return size, err
	}
	n, err := WriteUint8(w, byte(e.Encoding))
	size += n
	if err != nil {
		return size, err
	}
	if e.Encoding == ExtensionObjectEncodingNone {
		return size, nil
	}
	n, err = NewByteString(e.Body).Encode(w)
	return size + n, err
}

// DecodeExtensionObject reads the type-id NodeId, the body selector, and
// the body. An unrecognized selector is a hard decode failure — unlike the
// lenient "log and return None" behavior observed in some reference
// implementations, this codec never silently drops a malformed body
// (spec §9 Open Questions).
func DecodeExtensionObject(r io.Reader, limits *DecodingLimits) (*ExtensionObject, error) {
	typeID, err := DecodeNodeID(r, limits)
	if err != nil {
		return nil, err
	}
	sel, err := ReadUint8(r)
	if err != nil {
		return nil, err
	}
	e := &ExtensionObject{TypeID: typeID, Encoding: ExtensionObjectEncoding(sel)}
	switch e.Encoding {
	case ExtensionObjectEncodingNone:
		return e, nil
	case ExtensionObjectEncodingByteString:
		bs, err := DecodeByteString(r, limits)
		if err != nil {
			return nil, err
		}
		e.Body = bs.Data
		return e, nil
	case ExtensionObjectEncodingXMLElement:
		xe, err := DecodeString(r, limits)
		if err != nil {
			return nil, err
		}
		e.Body = []byte(xe.Value)
		return e, nil
	default:
		return nil, newDecodingError(StatusBadDecodingError, "unrecognized ExtensionObject encoding selector", nil)
	}
}
