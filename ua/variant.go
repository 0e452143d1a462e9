package ua

import (
	"fmt"
	"io"
	"time"
)

// Built-in type ids, 1..25, used as the low 6 bits of a Variant's encoding
// byte (spec §3 table, §4.2).
const (
	TypeIDBoolean         = 1
	TypeIDSByte           = 2
	TypeIDByte            = 3
	TypeIDInt16           = 4
	TypeIDUInt16          = 5
	TypeIDInt32           = 6
	TypeIDUInt32          = 7
	TypeIDInt64           = 8
	TypeIDUInt64          = 9
	TypeIDFloat           = 10
	TypeIDDouble          = 11
	TypeIDString          = 12
	TypeIDDateTime        = 13
	TypeIDGuid            = 14
	TypeIDByteString      = 15
	TypeIDXMLElement      = 16
	TypeIDNodeID          = 17
	TypeIDExpandedNodeID  = 18
	TypeIDStatusCode      = 19
	TypeIDQualifiedName   = 20
	TypeIDLocalizedText   = 21
	TypeIDExtensionObject = 22
	TypeIDDataValue       = 23
	TypeIDVariant         = 24
	TypeIDDiagnosticInfo  = 25
)

const (
	variantArrayFlag      = 0x40
	variantDimensionsFlag = 0x80
	variantTypeIDMask     = 0x3F
)

// Variant is a self-describing value holding a built-in scalar, array, or
// matrix. Encoding byte bits: low 6 = type id, 0x40 = array, 0x80 = array
// with dimensions (spec §3, §4.2). Type ids 24 (Variant) and 25
// (DiagnosticInfo) have no codec here: encoding or decoding a Variant of
// either type fails.
type Variant struct {
	typeID     byte
	isArray    bool
	dimensions []int32
	scalar     interface{}
	items      []interface{}
}

// TypeID returns the built-in type id (1..25) this Variant carries.
func (v *Variant) TypeID() byte { return v.typeID }

// IsArray reports whether this Variant holds an array (or matrix).
func (v *Variant) IsArray() bool { return v.isArray }

// Value returns the scalar Go value. Valid only when !IsArray().
func (v *Variant) Value() interface{} { return v.scalar }

// Values returns the array elements as Go values. Valid only when IsArray().
func (v *Variant) Values() []interface{} { return v.items }

// Dimensions returns the matrix dimensions, or nil for a flat array/scalar.
func (v *Variant) Dimensions() []int32 { return v.dimensions }

// NewVariant builds a Variant from a native Go value. Scalars map directly;
// recognized slice types become array Variants. An unsupported Go type
// returns a BadInvalidState EncodingError.
func NewVariant(value interface{}) (*Variant, error) {
	if id, scalar, ok := scalarTypeID(value); ok {
		return &Variant{typeID: id, scalar: scalar}, nil
	}
	if id, items, ok := arrayTypeID(value); ok {
		return &Variant{typeID: id, isArray: true, items: items}, nil
	}
	return nil, newEncodingError(StatusBadInvalidState, fmt.Sprintf("unsupported Variant value type %T", value), nil)
}

// MustVariant is NewVariant but panics on an unsupported type, for call
// sites building literal argument lists where the types are known statically
// (mirrors the convenience helper observed wrapping method-call argument
// construction in the teacher).
func MustVariant(value interface{}) *Variant {
	v, err := NewVariant(value)
	if err != nil {
		panic(err)
	}
	return v
}

func scalarTypeID(value interface{}) (byte, interface{}, bool) {
	switch val := value.(type) {
	case bool:
		return TypeIDBoolean, val, true
	case int8:
		return TypeIDSByte, val, true
	case byte:
		return TypeIDByte, val, true
	case int16:
		return TypeIDInt16, val, true
	case uint16:
		return TypeIDUInt16, val, true
	case int32:
		return TypeIDInt32, val, true
	case uint32:
		return TypeIDUInt32, val, true
	case int:
		return TypeIDInt32, int32(val), true
	case int64:
		return TypeIDInt64, val, true
	case uint64:
		return TypeIDUInt64, val, true
	case float32:
		return TypeIDFloat, val, true
	case float64:
		return TypeIDDouble, val, true
	case string:
		return TypeIDString, NewString(val), true
	case String:
		return TypeIDString, val, true
	case time.Time:
		return TypeIDDateTime, NewDateTime(val), true
	case DateTime:
		return TypeIDDateTime, val, true
	case Guid:
		return TypeIDGuid, val, true
	case []byte:
		return TypeIDByteString, NewByteString(val), true
	case ByteString:
		return TypeIDByteString, val, true
	case *NodeID:
		return TypeIDNodeID, val, true
	case *ExpandedNodeID:
		return TypeIDExpandedNodeID, val, true
	case StatusCode:
		return TypeIDStatusCode, val, true
	case QualifiedName:
		return TypeIDQualifiedName, val, true
	case LocalizedText:
		return TypeIDLocalizedText, val, true
	case *ExtensionObject:
		return TypeIDExtensionObject, val, true
	case *DataValue:
		return TypeIDDataValue, val, true
	default:
		return 0, nil, false
	}
}

func arrayTypeID(value interface{}) (byte, []interface{}, bool) {
	switch vs := value.(type) {
	case []bool:
		return TypeIDBoolean, toAny(vs), true
	case []int16:
		return TypeIDInt16, toAny(vs), true
	case []uint16:
		return TypeIDUInt16, toAny(vs), true
	case []int32:
		return TypeIDInt32, toAny(vs), true
	case []uint32:
		return TypeIDUInt32, toAny(vs), true
	case []int64:
		return TypeIDInt64, toAny(vs), true
	case []uint64:
		return TypeIDUInt64, toAny(vs), true
	case []float32:
		return TypeIDFloat, toAny(vs), true
	case []float64:
		return TypeIDDouble, toAny(vs), true
	case []string:
		out := make([]interface{}, len(vs))
		for i, s := range vs {
			out[i] = NewString(s)
		}
		return TypeIDString, out, true
	case []*NodeID:
		return TypeIDNodeID, toAny(vs), true
	case []*ExtensionObject:
		return TypeIDExtensionObject, toAny(vs), true
	default:
		return 0, nil, false
	}
}

func toAny[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

// ByteLen returns the exact wire length of the encoding byte plus payload.
func (v *Variant) ByteLen() int {
	size := 1
	if v.isArray {
		size += 4 // Int32 array length
		for _, it := range v.items {
			size += scalarByteLen(v.typeID, it)
		}
		if v.dimensions != nil {
			size += 4 + 4*len(v.dimensions)
		}
		return size
	}
	return size + scalarByteLen(v.typeID, v.scalar)
}

// Encode writes the encoding byte then the scalar or array payload
// (spec example: an Int32 array [1,2,3] encodes as 0x46, Int32(3), then the
// three Int32 values).
func (v *Variant) Encode(w io.Writer) (int, error) {
	encByte := v.typeID & variantTypeIDMask
	if v.isArray {
		encByte |= variantArrayFlag
		if v.dimensions != nil {
			encByte |= variantDimensionsFlag
		}
	}
	size, err := WriteUint8(w, encByte)
	if err != nil {
		return size, err
	}
	if !v.isArray {
		n, err := encodeScalar(w, v.typeID, v.scalar)
		return size + n, err
	}
	n, err := WriteInt32(w, int32(len(v.items)))
	size += n
	if err != nil {
		return size, err
	}
	for _, it := range v.items {
		n, err := encodeScalar(w, v.typeID, it)
		size += n
		if err != nil {
			return size, err
		}
	}
	if v.dimensions != nil {
		n, err := WriteInt32(w, int32(len(v.dimensions)))
		size += n
		if err != nil {
			return size, err
		}
		for _, d := range v.dimensions {
			n, err := WriteInt32(w, d)
			size += n
			if err != nil {
				return size, err
			}
		}
	}
	return size, nil
}

// DecodeVariant reads the encoding byte then the scalar or array payload. A
// matrix whose declared dimensions product disagrees with the decoded
// element count fails decoding (spec §4.2).
func DecodeVariant(r io.Reader, limits *DecodingLimits) (*Variant, error) {
	encByte, err := ReadUint8(r)
	if err != nil {
		return nil, err
	}
	typeID := encByte & variantTypeIDMask
	isArray := encByte&variantArrayFlag != 0
	hasDims := encByte&variantDimensionsFlag != 0

	if !isArray {
		scalar, err := decodeScalar(r, limits, typeID)
		if err != nil {
			return nil, err
		}
		return &Variant{typeID: typeID, scalar: scalar}, nil
	}

	count, null, err := ReadArrayLen(r, limits.maxArrayLength())
	if err != nil {
		return nil, err
	}
	items := make([]interface{}, 0, count)
	if !null {
		for i := 0; i < count; i++ {
			it, err := decodeScalar(r, limits, typeID)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
	}

	v := &Variant{typeID: typeID, isArray: true, items: items}
	if hasDims {
		dimCount, dimsNull, err := ReadArrayLen(r, limits.maxArrayLength())
		if err != nil {
			return nil, err
		}
		if !dimsNull {
			dims := make([]int32, dimCount)
			product := int64(1)
			for i := range dims {
				d, err := ReadInt32(r)
				if err != nil {
					return nil, err
				}
				dims[i] = d
				product *= int64(d)
			}
			if product != int64(len(items)) {
				return nil, newDecodingError(StatusBadDecodingError, "Variant matrix dimensions disagree with element count", nil)
			}
			v.dimensions = dims
		}
	}
	return v, nil
}

func scalarByteLen(typeID byte, value interface{}) int {
	switch typeID {
	case TypeIDBoolean, TypeIDSByte, TypeIDByte:
		return 1
	case TypeIDInt16, TypeIDUInt16:
		return 2
	case TypeIDInt32, TypeIDUInt32, TypeIDFloat:
		return 4
	case TypeIDInt64, TypeIDUInt64, TypeIDDouble, TypeIDDateTime:
		return 8
	case TypeIDString, TypeIDXMLElement:
		return value.(String).ByteLen()
	case TypeIDGuid:
		return value.(Guid).ByteLen()
	case TypeIDByteString:
		return value.(ByteString).ByteLen()
	case TypeIDNodeID:
		return value.(*NodeID).ByteLen()
	case TypeIDExpandedNodeID:
		return value.(*ExpandedNodeID).ByteLen()
	case TypeIDStatusCode:
		return 4
	case TypeIDQualifiedName:
		return value.(QualifiedName).ByteLen()
	case TypeIDLocalizedText:
		return value.(LocalizedText).ByteLen()
	case TypeIDExtensionObject:
		return value.(*ExtensionObject).ByteLen()
	case TypeIDDataValue:
		return value.(*DataValue).ByteLen()
	default:
		return 0
	}
}

func encodeScalar(w io.Writer, typeID byte, value interface{}) (int, error) {
	switch typeID {
	case TypeIDBoolean:
		return WriteBoolean(w, value.(bool))
	case TypeIDSByte:
		return WriteInt8(w, value.(int8))
	case TypeIDByte:
		return WriteUint8(w, value.(byte))
	case TypeIDInt16:
		return WriteInt16(w, value.(int16))
	case TypeIDUInt16:
		return WriteUint16(w, value.(uint16))
	case TypeIDInt32:
		return WriteInt32(w, value.(int32))
	case TypeIDUInt32:
		return WriteUint32(w, value.(uint32))
	case TypeIDInt64:
		return WriteInt64(w, value.(int64))
	case TypeIDUInt64:
		return WriteUint64(w, value.(uint64))
	case TypeIDFloat:
		return WriteFloat32(w, value.(float32))
	case TypeIDDouble:
		return WriteFloat64(w, value.(float64))
	case TypeIDDateTime:
		return value.(DateTime).Encode(w)
	case TypeIDString, TypeIDXMLElement:
		return value.(String).Encode(w)
	case TypeIDGuid:
		return value.(Guid).Encode(w)
	case TypeIDByteString:
		return value.(ByteString).Encode(w)
	case TypeIDNodeID:
		return value.(*NodeID).Encode(w)
	case TypeIDExpandedNodeID:
		return value.(*ExpandedNodeID).Encode(w)
	case TypeIDStatusCode:
		return WriteUint32(w, uint32(value.(StatusCode)))
	case TypeIDQualifiedName:
		return value.(QualifiedName).Encode(w)
	case TypeIDLocalizedText:
		return value.(LocalizedText).Encode(w)
	case TypeIDExtensionObject:
		return value.(*ExtensionObject).Encode(w)
	case TypeIDDataValue:
		return value.(*DataValue).Encode(w)
	default:
		return 0, newEncodingError(StatusBadInvalidState, fmt.Sprintf("unsupported Variant built-in type id %d", typeID), nil)
	}
}

func decodeScalar(r io.Reader, limits *DecodingLimits, typeID byte) (interface{}, error) {
	switch typeID {
	case TypeIDBoolean:
		return ReadBoolean(r)
	case TypeIDSByte:
		return ReadInt8(r)
	case TypeIDByte:
		return ReadUint8(r)
	case TypeIDInt16:
		return ReadInt16(r)
	case TypeIDUInt16:
		return ReadUint16(r)
	case TypeIDInt32:
		return ReadInt32(r)
	case TypeIDUInt32:
		return ReadUint32(r)
	case TypeIDInt64:
		return ReadInt64(r)
	case TypeIDUInt64:
		return ReadUint64(r)
	case TypeIDFloat:
		return ReadFloat32(r)
	case TypeIDDouble:
		return ReadFloat64(r)
	case TypeIDDateTime:
		return DecodeDateTime(r)
	case TypeIDString, TypeIDXMLElement:
		return DecodeString(r, limits)
	case TypeIDGuid:
		return DecodeGuid(r)
	case TypeIDByteString:
		return DecodeByteString(r, limits)
	case TypeIDNodeID:
		return DecodeNodeID(r, limits)
	case TypeIDExpandedNodeID:
		return DecodeExpandedNodeID(r, limits)
	case TypeIDStatusCode:
		v, err := ReadUint32(r)
		return StatusCode(v), err
	case TypeIDQualifiedName:
		return DecodeQualifiedName(r, limits)
	case TypeIDLocalizedText:
		return DecodeLocalizedText(r, limits)
	case TypeIDExtensionObject:
		return DecodeExtensionObject(r, limits)
	case TypeIDDataValue:
		return DecodeDataValue(r, limits)
	default:
		return nil, newDecodingError(StatusBadDecodingError, fmt.Sprintf("unsupported Variant built-in type id %d", typeID), nil)
	}
}
