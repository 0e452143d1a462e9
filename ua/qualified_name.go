package ua

import "io"

// QualifiedName is a name qualified by a namespace index. The name may be
// null (spec §3).
type QualifiedName struct {
	NamespaceIndex uint16
	Name           String
}

// ByteLen returns the exact wire length.
func (q QualifiedName) ByteLen() int { return 2 + q.Name.ByteLen() }

// Encode writes the namespace index then the name string.
func (q QualifiedName) Encode(w io.Writer) (int, error) {
	size, err := WriteUint16(w, q.NamespaceIndex)
	if err != nil {
		return size, err
	}
	n, err := q.Name.Encode(w)
	return size + n, err
}

// DecodeQualifiedName reads the namespace index then the name string.
func DecodeQualifiedName(r io.Reader, limits *DecodingLimits) (QualifiedName, error) {
	ns, err := ReadUint16(r)
	if err != nil {
		return QualifiedName{}, err
	}
	name, err := DecodeString(r, limits)
	if err != nil {
		return QualifiedName{}, err
	}
	return QualifiedName{NamespaceIndex: ns, Name: name}, nil
}
