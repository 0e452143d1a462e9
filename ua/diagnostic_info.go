package ua

import "io"

// DiagnosticInfo mask bits (spec §4.3).
const (
	diagMaskSymbolicID          = 0x01
	diagMaskNamespaceURI        = 0x02
	diagMaskLocalizedText       = 0x04
	diagMaskLocale              = 0x08
	diagMaskAdditionalInfo      = 0x10
	diagMaskInnerStatusCode     = 0x20
	diagMaskInnerDiagnosticInfo = 0x40
)

// DiagnosticInfo is an optional, possibly recursive structure of human and
// machine diagnostic data attached to status codes. All seven fields are
// independently optional; the recursive InnerDiagnosticInfo is bounded by
// DecodingLimits.MaxRecursionDepth (spec §4.3).
//
// Field order on the wire is symbolic_id, namespace_uri, locale,
// localized_text, additional_info, inner_status_code,
// inner_diagnostic_info — locale before localized_text, even though the
// mask bit for localized_text (0x04) is numerically lower than locale's
// (0x08). The bit assignment follows the original source and spec §4.3's
// Note; a spec §4.3 table that numbers the two the other way contradicts
// its own Note and is wrong.
type DiagnosticInfo struct {
	SymbolicID          *int32
	NamespaceURI        *int32
	Locale              *int32
	LocalizedText       *int32
	AdditionalInfo      String
	InnerStatusCode     *StatusCode
	InnerDiagnosticInfo *DiagnosticInfo
}

func (d *DiagnosticInfo) mask() byte {
	var m byte
	if d.SymbolicID != nil {
		m |= diagMaskSymbolicID
	}
	if d.NamespaceURI != nil {
		m |= diagMaskNamespaceURI
	}
	if d.Locale != nil {
		m |= diagMaskLocale
	}
	if d.LocalizedText != nil {
		m |= diagMaskLocalizedText
	}
	if !d.AdditionalInfo.IsNull() {
		m |= diagMaskAdditionalInfo
	}
	if d.InnerStatusCode != nil {
		m |= diagMaskInnerStatusCode
	}
	if d.InnerDiagnosticInfo != nil {
		m |= diagMaskInnerDiagnosticInfo
	}
	return m
}

// ByteLen returns the exact wire length, recursing into InnerDiagnosticInfo.
func (d *DiagnosticInfo) ByteLen() int {
	size := 1
	if d.SymbolicID != nil {
		size += 4
	}
	if d.NamespaceURI != nil {
		size += 4
	}
	if d.Locale != nil {
		size += 4
	}
	if d.LocalizedText != nil {
		size += 4
	}
	if !d.AdditionalInfo.IsNull() {
		size += d.AdditionalInfo.ByteLen()
	}
	if d.InnerStatusCode != nil {
		size += 4
	}
	if d.InnerDiagnosticInfo != nil {
		size += d.InnerDiagnosticInfo.ByteLen()
	}
	return size
}

// Encode writes the mask byte followed by whichever fields it marks
// present, in spec §4.3's field order.
func (d *DiagnosticInfo) Encode(w io.Writer) (int, error) {
	size, err := WriteUint8(w, d.mask())
	if err != nil {
		return size, err
	}
	if d.SymbolicID != nil {
		n, err := WriteInt32(w, *d.SymbolicID)
		size += n
		if err != nil {
			return size, err
		}
	}
	if d.NamespaceURI != nil {
		n, err := WriteInt32(w, *d.NamespaceURI)
		size += n
		if err != nil {
			return size, err
		}
	}
	if d.Locale != nil {
		n, err := WriteInt32(w, *d.Locale)
		size += n
		if err != nil {
			return size, err
		}
	}
	if d.LocalizedText != nil {
		n, err := WriteInt32(w, *d.LocalizedText)
		size += n
		if err != nil {
			return size, err
		}
	}
	if !d.AdditionalInfo.IsNull() {
		n, err := d.AdditionalInfo.Encode(w)
		size += n
		if err != nil {
			return size, err
		}
	}
	if d.InnerStatusCode != nil {
		n, err := WriteUint32(w, uint32(*d.InnerStatusCode))
		size += n
		if err != nil {
			return size, err
		}
	}
	if d.InnerDiagnosticInfo != nil {
		n, err := d.InnerDiagnosticInfo.Encode(w)
		size += n
		if err != nil {
			return size, err
		}
	}
	return size, nil
}

// DecodeDiagnosticInfo reads the mask byte then whichever fields it marks
// present, recursing into InnerDiagnosticInfo up to
// limits.MaxRecursionDepth. Exceeding the depth bound fails decoding
// (spec §4.3, §8.5: depth 101 against a limit of 100 fails).
func DecodeDiagnosticInfo(r io.Reader, limits *DecodingLimits) (*DiagnosticInfo, error) {
	return decodeDiagnosticInfo(r, limits, 0)
}

func decodeDiagnosticInfo(r io.Reader, limits *DecodingLimits, depth int) (*DiagnosticInfo, error) {
	if depth > limits.maxRecursionDepth() {
		return nil, newDecodingError(StatusBadDecodingError, "DiagnosticInfo recursion exceeds max depth", nil)
	}
	mask, err := ReadUint8(r)
	if err != nil {
		return nil, err
	}
	d := &DiagnosticInfo{AdditionalInfo: NullString()}
	if mask&diagMaskSymbolicID != 0 {
		v, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		d.SymbolicID = &v
	}
	if mask&diagMaskNamespaceURI != 0 {
		v, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		d.NamespaceURI = &v
	}
	if mask&diagMaskLocale != 0 {
		v, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		d.Locale = &v
	}
	if mask&diagMaskLocalizedText != 0 {
		v, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		d.LocalizedText = &v
	}
	if mask&diagMaskAdditionalInfo != 0 {
		s, err := DecodeString(r, limits)
		if err != nil {
			return nil, err
		}
		d.AdditionalInfo = s
	}
	if mask&diagMaskInnerStatusCode != 0 {
		v, err := ReadUint32(r)
		if err != nil {
			return nil, err
		}
		sc := StatusCode(v)
		d.InnerStatusCode = &sc
	}
	if mask&diagMaskInnerDiagnosticInfo != 0 {
		inner, err := decodeDiagnosticInfo(r, limits, depth+1)
		if err != nil {
			return nil, err
		}
		d.InnerDiagnosticInfo = inner
	}
	return d, nil
}
