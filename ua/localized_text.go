package ua

import "io"

// LocalizedText mask bits (spec §4.2). 0x02 (text present) is numerically
// higher than 0x01 (locale present) but both fields, when present, are
// always written locale-then-text — the mask only ever gates presence,
// never reorders the two fields relative to each other.
const (
	localizedTextMaskLocale = 0x01
	localizedTextMaskText   = 0x02
)

// LocalizedText is human readable text with an optional locale identifier.
// Locale and Text are independently optional; an absent field contributes
// zero bytes to the wire form and decodes to null, not empty string
// (spec §4.2). This type's reference implementation
// (original_source/core/src/types/encodable_types.rs) is a literal
// `unimplemented!()` stub — spec §4.2's mask rules are authoritative here.
type LocalizedText struct {
	Locale String
	Text   String
}

func (t LocalizedText) mask() byte {
	var m byte
	if !t.Locale.IsNull() {
		m |= localizedTextMaskLocale
	}
	if !t.Text.IsNull() {
		m |= localizedTextMaskText
	}
	return m
}

// ByteLen returns the exact wire length: one mask byte plus whichever of
// Locale/Text are present.
func (t LocalizedText) ByteLen() int {
	size := 1
	if !t.Locale.IsNull() {
		size += t.Locale.ByteLen()
	}
	if !t.Text.IsNull() {
		size += t.Text.ByteLen()
	}
	return size
}

// Encode writes the mask byte followed by whichever fields are present.
// Example (spec §8): {locale=null, text="hello"} encodes to
// 02 05 00 00 00 68 65 6C 6C 6F.
func (t LocalizedText) Encode(w io.Writer) (int, error) {
	size, err := WriteUint8(w, t.mask())
	if err != nil {
		return size, err
	}
	if !t.Locale.IsNull() {
		n, err := t.Locale.Encode(w)
		size += n
		if err != nil {
			return size, err
		}
	}
	if !t.Text.IsNull() {
		n, err := t.Text.Encode(w)
		size += n
		if err != nil {
			return size, err
		}
	}
	return size, nil
}

// DecodeLocalizedText reads the mask byte then whichever fields it marks
// present. Absent fields decode to null, never to empty string.
func DecodeLocalizedText(r io.Reader, limits *DecodingLimits) (LocalizedText, error) {
	mask, err := ReadUint8(r)
	if err != nil {
		return LocalizedText{}, err
	}
	t := LocalizedText{Locale: NullString(), Text: NullString()}
	if mask&localizedTextMaskLocale != 0 {
		locale, err := DecodeString(r, limits)
		if err != nil {
			return LocalizedText{}, err
		}
		t.Locale = locale
	}
	if mask&localizedTextMaskText != 0 {
		text, err := DecodeString(r, limits)
		if err != nil {
			return LocalizedText{}, err
		}
		t.Text = text
	}
	return t, nil
}
