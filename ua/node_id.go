package ua

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NodeIDType identifies which identifier variant a NodeID holds. Numeric
// values are further compacted at encode time into TwoByte/FourByte/Numeric
// wire forms depending on magnitude (spec §4.2) — NodeIDType only
// distinguishes the four *logical* identifier kinds a caller can construct.
type NodeIDType byte

const (
	NodeIDTypeNumeric    NodeIDType = 0x02
	NodeIDTypeString     NodeIDType = 0x03
	NodeIDTypeGUID       NodeIDType = 0x04
	NodeIDTypeByteString NodeIDType = 0x05
)

// encoding-byte low nibble values for the six wire forms (spec §4.2).
const (
	nodeIDFormTwoByte    = 0x00
	nodeIDFormFourByte   = 0x01
	nodeIDFormNumeric    = 0x02
	nodeIDFormString     = 0x03
	nodeIDFormGUID       = 0x04
	nodeIDFormByteString = 0x05
)

// NodeID is a tuple (namespace index, identifier) naming an entity in an
// address space. The identifier is one of four logical kinds; Numeric
// identifiers are re-compacted to the smallest wire form that fits on every
// Encode, per spec §4.2 — many servers reject non-canonical encodings.
type NodeID struct {
	typ    NodeIDType
	ns     uint16
	num    uint32
	str    string
	guid   Guid
	opaque []byte
}

// NewNumericNodeID builds a NodeID with a numeric identifier.
func NewNumericNodeID(ns uint16, id uint32) *NodeID {
	return &NodeID{typ: NodeIDTypeNumeric, ns: ns, num: id}
}

// NewStringNodeID builds a NodeID with a string identifier.
func NewStringNodeID(ns uint16, id string) *NodeID {
	return &NodeID{typ: NodeIDTypeString, ns: ns, str: id}
}

// NewGUIDNodeID builds a NodeID with a Guid identifier.
func NewGUIDNodeID(ns uint16, id Guid) *NodeID {
	return &NodeID{typ: NodeIDTypeGUID, ns: ns, guid: id}
}

// NewByteStringNodeID builds a NodeID with an opaque ByteString identifier.
func NewByteStringNodeID(ns uint16, id []byte) *NodeID {
	return &NodeID{typ: NodeIDTypeByteString, ns: ns, opaque: id}
}

// Type reports the identifier's logical kind.
func (n *NodeID) Type() NodeIDType { return n.typ }

// Namespace returns the namespace index.
func (n *NodeID) Namespace() uint16 { return n.ns }

// IntID returns the numeric identifier. Zero for non-numeric NodeIDs.
func (n *NodeID) IntID() uint32 { return n.num }

// StringID returns the string identifier. Empty for non-string NodeIDs.
func (n *NodeID) StringID() string { return n.str }

// GUIDID returns the Guid identifier.
func (n *NodeID) GUIDID() Guid { return n.guid }

// OpaqueID returns the ByteString identifier.
func (n *NodeID) OpaqueID() []byte { return n.opaque }

// String renders the compact "ns=X;..." textual form OPC UA tooling uses
// (namespace 0 omits "ns=0;").
func (n *NodeID) String() string {
	var id string
	switch n.typ {
	case NodeIDTypeString:
		id = "s=" + n.str
	case NodeIDTypeGUID:
		id = "g=" + n.guid.String()
	case NodeIDTypeByteString:
		id = "b=" + string(n.opaque)
	default:
		id = "i=" + strconv.FormatUint(uint64(n.num), 10)
	}
	if n.ns == 0 {
		return id
	}
	return fmt.Sprintf("ns=%d;%s", n.ns, id)
}

// ParseNodeID parses the compact textual form ("ns=2;i=1000", "i=2042",
// "s=Foo", "ns=1;s=Bar").
func ParseNodeID(s string) (*NodeID, error) {
	var ns uint16
	rest := s
	if strings.HasPrefix(s, "ns=") {
		parts := strings.SplitN(s[3:], ";", 2)
		if len(parts) != 2 {
			return nil, newDecodingError(StatusBadDecodingError, "malformed NodeId string: missing identifier", nil)
		}
		n, err := strconv.ParseUint(parts[0], 10, 16)
		if err != nil {
			return nil, newDecodingError(StatusBadDecodingError, "malformed NodeId namespace", err)
		}
		ns = uint16(n)
		rest = parts[1]
	}
	switch {
	case strings.HasPrefix(rest, "i="):
		id, err := strconv.ParseUint(rest[2:], 10, 32)
		if err != nil {
			return nil, newDecodingError(StatusBadDecodingError, "malformed numeric NodeId identifier", err)
		}
		return NewNumericNodeID(ns, uint32(id)), nil
	case strings.HasPrefix(rest, "s="):
		return NewStringNodeID(ns, rest[2:]), nil
	default:
		return nil, newDecodingError(StatusBadDecodingError, "unsupported NodeId identifier form: "+rest, nil)
	}
}

// wireForm returns the compact encoding-byte low nibble this value must use.
func (n *NodeID) wireForm() byte {
	switch n.typ {
	case NodeIDTypeString:
		return nodeIDFormString
	case NodeIDTypeGUID:
		return nodeIDFormGUID
	case NodeIDTypeByteString:
		return nodeIDFormByteString
	default:
		if n.ns == 0 && n.num <= 0xFF {
			return nodeIDFormTwoByte
		}
		if n.ns <= 0xFF && n.num <= 0xFFFF {
			return nodeIDFormFourByte
		}
		return nodeIDFormNumeric
	}
}

// ByteLen returns the exact wire length of the canonical encoding.
func (n *NodeID) ByteLen() int {
	switch n.wireForm() {
	case nodeIDFormTwoByte:
		return 2
	case nodeIDFormFourByte:
		return 4
	case nodeIDFormNumeric:
		return 1 + 2 + 4
	case nodeIDFormString:
		return 1 + 2 + NewString(n.str).ByteLen()
	case nodeIDFormGUID:
		return 1 + 2 + n.guid.ByteLen()
	case nodeIDFormByteString:
		return 1 + 2 + NewByteString(n.opaque).ByteLen()
	}
	return 0
}

// Encode picks the smallest wire form the value fits into and writes it.
func (n *NodeID) Encode(w io.Writer) (int, error) {
	return n.encodeWithFlags(w, 0)
}

// encodeWithFlags writes the encoding byte with additional high-nibble
// flag bits OR'd in (used by ExpandedNodeID for its URI/server-index bits).
func (n *NodeID) encodeWithFlags(w io.Writer, flags byte) (int, error) {
	form := n.wireForm()
	size := 0
	switch form {
	case nodeIDFormTwoByte:
		m, err := WriteUint8(w, form|flags)
		size += m
		if err != nil {
			return size, err
		}
		m, err = WriteUint8(w, byte(n.num))
		size += m
		return size, err
	case nodeIDFormFourByte:
		m, err := WriteUint8(w, form|flags)
		size += m
		if err != nil {
			return size, err
		}
		m, err = WriteUint8(w, byte(n.ns))
		size += m
		if err != nil {
			return size, err
		}
		m, err = WriteUint16(w, uint16(n.num))
		size += m
		return size, err
	case nodeIDFormNumeric:
		m, err := WriteUint8(w, form|flags)
		size += m
		if err != nil {
			return size, err
		}
		m, err = WriteUint16(w, n.ns)
		size += m
		if err != nil {
			return size, err
		}
		m, err = WriteUint32(w, n.num)
		size += m
		return size, err
	case nodeIDFormString:
		m, err := WriteUint8(w, form|flags)
		size += m
		if err != nil {
			return size, err
		}
		m, err = WriteUint16(w, n.ns)
		size += m
		if err != nil {
			return size, err
		}
		m, err = NewString(n.str).Encode(w)
		size += m
		return size, err
	case nodeIDFormGUID:
		m, err := WriteUint8(w, form|flags)
		size += m
		if err != nil {
			return size, err
		}
		m, err = WriteUint16(w, n.ns)
		size += m
		if err != nil {
			return size, err
		}
		m, err = n.guid.Encode(w)
		size += m
		return size, err
	case nodeIDFormByteString:
		m, err := WriteUint8(w, form|flags)
		size += m
		if err != nil {
			return size, err
		}
		m, err = WriteUint16(w, n.ns)
		size += m
		if err != nil {
			return size, err
		}
		m, err = NewByteString(n.opaque).Encode(w)
		size += m
		return size, err
	}
	return size, newEncodingError(StatusBadInvalidState, "unrecognized NodeId identifier form", nil)
}

// DecodeNodeID reads a NodeID's canonical encoding (spec §4.2). The two
// high flag bits (0x80, 0x40) used by ExpandedNodeID are ignored here —
// DecodeExpandedNodeID reads the same byte through decodeNodeIDByte and
// interprets them itself.
func DecodeNodeID(r io.Reader, limits *DecodingLimits) (*NodeID, error) {
	n, _, err := decodeNodeIDByte(r, limits)
	return n, err
}

// decodeNodeIDByte additionally returns the raw encoding byte so
// ExpandedNodeID can inspect its flag bits.
func decodeNodeIDByte(r io.Reader, limits *DecodingLimits) (*NodeID, byte, error) {
	encByte, err := ReadUint8(r)
	if err != nil {
		return nil, 0, err
	}
	form := encByte & 0x0F
	switch form {
	case nodeIDFormTwoByte:
		id, err := ReadUint8(r)
		if err != nil {
			return nil, encByte, err
		}
		return NewNumericNodeID(0, uint32(id)), encByte, nil
	case nodeIDFormFourByte:
		ns, err := ReadUint8(r)
		if err != nil {
			return nil, encByte, err
		}
		id, err := ReadUint16(r)
		if err != nil {
			return nil, encByte, err
		}
		return NewNumericNodeID(uint16(ns), uint32(id)), encByte, nil
	case nodeIDFormNumeric:
		ns, err := ReadUint16(r)
		if err != nil {
			return nil, encByte, err
		}
		id, err := ReadUint32(r)
		if err != nil {
			return nil, encByte, err
		}
		return NewNumericNodeID(ns, id), encByte, nil
	case nodeIDFormString:
		ns, err := ReadUint16(r)
		if err != nil {
			return nil, encByte, err
		}
		s, err := DecodeString(r, limits)
		if err != nil {
			return nil, encByte, err
		}
		return NewStringNodeID(ns, s.Value), encByte, nil
	case nodeIDFormGUID:
		ns, err := ReadUint16(r)
		if err != nil {
			return nil, encByte, err
		}
		g, err := DecodeGuid(r)
		if err != nil {
			return nil, encByte, err
		}
		return NewGUIDNodeID(ns, g), encByte, nil
	case nodeIDFormByteString:
		ns, err := ReadUint16(r)
		if err != nil {
			return nil, encByte, err
		}
		bs, err := DecodeByteString(r, limits)
		if err != nil {
			return nil, encByte, err
		}
		return NewByteStringNodeID(ns, bs.Data), encByte, nil
	default:
		return nil, encByte, newDecodingError(StatusBadDecodingError, fmt.Sprintf("unrecognized NodeId encoding form 0x%02X", form), nil)
	}
}
