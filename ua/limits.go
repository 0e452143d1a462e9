package ua

// DecodingLimits bounds the resources a single decode operation may consume,
// so that a hostile length prefix cannot induce unbounded allocation before
// a single byte of the declared payload has actually arrived (spec §5, §8.5).
//
// A DecodingLimits is plain data, copied by value, and safe to share across
// concurrently-running decodes — the codec layer keeps no state of its own.
type DecodingLimits struct {
	// MaxStringLength bounds a single String/XmlElement's declared byte length.
	MaxStringLength int
	// MaxByteStringLength bounds a single ByteString's declared byte length.
	MaxByteStringLength int
	// MaxArrayLength bounds the declared element count of any array.
	MaxArrayLength int
	// MaxRecursionDepth bounds DiagnosticInfo nesting.
	MaxRecursionDepth int
	// MaxMessageSize records a cap on the cumulative size of a decoded
	// message body. No decoder in this module reads it: type decoders do not
	// track cumulative size, and uatcp.ReadFrame takes its own maxMessageSize
	// argument instead.
	MaxMessageSize int
}

// DefaultDecodingLimits returns conservative limits suitable for a server
// that has not yet negotiated a Hello/Acknowledge exchange with a peer.
func DefaultDecodingLimits() *DecodingLimits {
	return &DecodingLimits{
		MaxStringLength:     1 << 20,  // 1 MiB
		MaxByteStringLength: 1 << 20,  // 1 MiB
		MaxArrayLength:      1 << 16,  // 65536 elements
		MaxRecursionDepth:   100,
		MaxMessageSize:      4 << 20, // 4 MiB
	}
}

func (l *DecodingLimits) maxArrayLength() int {
	if l == nil || l.MaxArrayLength <= 0 {
		return DefaultDecodingLimits().MaxArrayLength
	}
	return l.MaxArrayLength
}

func (l *DecodingLimits) maxStringLength() int {
	if l == nil || l.MaxStringLength <= 0 {
		return DefaultDecodingLimits().MaxStringLength
	}
	return l.MaxStringLength
}

func (l *DecodingLimits) maxByteStringLength() int {
	if l == nil || l.MaxByteStringLength <= 0 {
		return DefaultDecodingLimits().MaxByteStringLength
	}
	return l.MaxByteStringLength
}

func (l *DecodingLimits) maxRecursionDepth() int {
	if l == nil || l.MaxRecursionDepth <= 0 {
		return DefaultDecodingLimits().MaxRecursionDepth
	}
	return l.MaxRecursionDepth
}
