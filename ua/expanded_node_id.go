package ua

import "io"

const (
	expandedNodeIDFlagNamespaceURI = 0x80
	expandedNodeIDFlagServerIndex  = 0x40
)

// ExpandedNodeID reuses NodeID's encoding byte with two additional flag
// bits: 0x80 indicates a namespace-URI string follows, 0x40 indicates a
// server-index UInt32 follows (spec §3, §4.2).
type ExpandedNodeID struct {
	NodeID       *NodeID
	NamespaceURI String // present only if NamespaceURI.IsNull() == false
	ServerIndex  *uint32
}

// ByteLen returns the exact wire length, including the base NodeID, the
// optional namespace URI string, and the optional server index.
func (e *ExpandedNodeID) ByteLen() int {
	size := e.NodeID.ByteLen()
	if !e.NamespaceURI.IsNull() {
		size += e.NamespaceURI.ByteLen()
	}
	if e.ServerIndex != nil {
		size += 4
	}
	return size
}

// Encode writes the NodeID with the URI/server-index flag bits OR'd into
// its encoding byte, followed by whichever optional fields are present.
func (e *ExpandedNodeID) Encode(w io.Writer) (int, error) {
	var flags byte
	if !e.NamespaceURI.IsNull() {
		flags |= expandedNodeIDFlagNamespaceURI
	}
	if e.ServerIndex != nil {
		flags |= expandedNodeIDFlagServerIndex
	}
	size, err := e.NodeID.encodeWithFlags(w, flags)
	if err != nil {
		return size, err
	}
	if !e.NamespaceURI.IsNull() {
		n, err := e.NamespaceURI.Encode(w)
		size += n
		if err != nil {
			return size, err
		}
	}
	if e.ServerIndex != nil {
		n, err := WriteUint32(w, *e.ServerIndex)
		size += n
		if err != nil {
			return size, err
		}
	}
	return size, nil
}

// DecodeExpandedNodeID reads the base NodeID and, per its flag bits, the
// optional namespace URI and/or server index.
func DecodeExpandedNodeID(r io.Reader, limits *DecodingLimits) (*ExpandedNodeID, error) {
	nodeID, encByte, err := decodeNodeIDByte(r, limits)
	if err != nil {
		return nil, err
	}
	e := &ExpandedNodeID{NodeID: nodeID, NamespaceURI: NullString()}
	if encByte&expandedNodeIDFlagNamespaceURI != 0 {
		uri, err := DecodeString(r, limits)
		if err != nil {
			return nil, err
		}
		e.NamespaceURI = uri
	}
	if encByte&expandedNodeIDFlagServerIndex != 0 {
		idx, err := ReadUint32(r)
		if err != nil {
			return nil, err
		}
		e.ServerIndex = &idx
	}
	return e, nil
}
