package ua

import "io"

// DataValue mask bits (spec §4.2).
const (
	dataValueMaskValue              = 0x01
	dataValueMaskStatus             = 0x02
	dataValueMaskSourceTimestamp    = 0x04
	dataValueMaskServerTimestamp    = 0x08
	dataValueMaskSourcePicoseconds  = 0x10
	dataValueMaskServerPicoseconds  = 0x20
)

// DataValue pairs a Variant with quality and timestamp metadata. All six
// fields are independently optional, selected by a mask byte (spec §4.2).
type DataValue struct {
	Value              *Variant
	Status             *StatusCode
	SourceTimestamp    *DateTime
	ServerTimestamp    *DateTime
	SourcePicoseconds  *uint16
	ServerPicoseconds  *uint16
}

func (d *DataValue) mask() byte {
	var m byte
	if d.Value != nil {
		m |= dataValueMaskValue
	}
	if d.Status != nil {
		m |= dataValueMaskStatus
	}
	if d.SourceTimestamp != nil {
		m |= dataValueMaskSourceTimestamp
	}
	if d.ServerTimestamp != nil {
		m |= dataValueMaskServerTimestamp
	}
	if d.SourcePicoseconds != nil {
		m |= dataValueMaskSourcePicoseconds
	}
	if d.ServerPicoseconds != nil {
		m |= dataValueMaskServerPicoseconds
	}
	return m
}

// ByteLen returns the exact wire length.
func (d *DataValue) ByteLen() int {
	size := 1
	if d.Value != nil {
		size += d.Value.ByteLen()
	}
	if d.Status != nil {
		size += 4
	}
	if d.SourceTimestamp != nil {
		size += 8
	}
	if d.ServerTimestamp != nil {
		size += 8
	}
	if d.SourcePicoseconds != nil {
		size += 2
	}
	if d.ServerPicoseconds != nil {
		size += 2
	}
	return size
}

// Encode writes the mask byte followed by whichever fields it marks
// present, in field declaration order.
func (d *DataValue) Encode(w io.Writer) (int, error) {
	size, err := WriteUint8(w, d.mask())
	if err != nil {
		return size, err
	}
	if d.Value != nil {
		n, err := d.Value.Encode(w)
		size += n
		if err != nil {
			return size, err
		}
	}
	if d.Status != nil {
		n, err := WriteUint32(w, uint32(*d.Status))
		size += n
		if err != nil {
			return size, err
		}
	}
	if d.SourceTimestamp != nil {
		n, err := d.SourceTimestamp.Encode(w)
		size += n
		if err != nil {
			return size, err
		}
	}
	if d.ServerTimestamp != nil {
		n, err := d.ServerTimestamp.Encode(w)
		size += n
		if err != nil {
			return size, err
		}
	}
	if d.SourcePicoseconds != nil {
		n, err := WriteUint16(w, *d.SourcePicoseconds)
		size += n
		if err != nil {
			return size, err
		}
	}
	if d.ServerPicoseconds != nil {
		n, err := WriteUint16(w, *d.ServerPicoseconds)
		size += n
		if err != nil {
			return size, err
		}
	}
	return size, nil
}

// DecodeDataValue reads the mask byte then whichever fields it marks
// present.
func DecodeDataValue(r io.Reader, limits *DecodingLimits) (*DataValue, error) {
	mask, err := ReadUint8(r)
	if err != nil {
		return nil, err
	}
	d := &DataValue{}
	if mask&dataValueMaskValue != 0 {
		v, err := DecodeVariant(r, limits)
		if err != nil {
			return nil, err
		}
		d.Value = v
	}
	if mask&dataValueMaskStatus != 0 {
		v, err := ReadUint32(r)
		if err != nil {
			return nil, err
		}
		sc := StatusCode(v)
		d.Status = &sc
	}
	if mask&dataValueMaskSourceTimestamp != 0 {
		v, err := DecodeDateTime(r)
		if err != nil {
			return nil, err
		}
		d.SourceTimestamp = &v
	}
	if mask&dataValueMaskServerTimestamp != 0 {
		v, err := DecodeDateTime(r)
		if err != nil {
			return nil, err
		}
		d.ServerTimestamp = &v
	}
	if mask&dataValueMaskSourcePicoseconds != 0 {
		v, err := ReadUint16(r)
		if err != nil {
			return nil, err
		}
		d.SourcePicoseconds = &v
	}
	if mask&dataValueMaskServerPicoseconds != 0 {
		v, err := ReadUint16(r)
		if err != nil {
			return nil, err
		}
		d.ServerPicoseconds = &v
	}
	return d, nil
}
