package ua

import "io"

// Arrays carry an Int32 length prefix: -1 for a null (absent) array, 0 for
// present-but-empty, and N for N elements in order (spec §3, §4.2). Null is
// distinct from empty — the same rule as String/ByteString, just one layer
// up.

// WriteArrayLen writes the Int32 length prefix for an array of n elements,
// or -1 if the array itself is null.
func WriteArrayLen(w io.Writer, n int, null bool) (int, error) {
	if null {
		return WriteInt32(w, -1)
	}
	return WriteInt32(w, int32(n))
}

// ReadArrayLen reads an Int32 array length prefix, enforcing it against
// maxLen before the caller allocates anything proportional to it
// (spec §8.5: a declared length of 2^31-1 against a 1024 cap must fail
// before any such allocation). Returns (0, true, nil) for a null array.
func ReadArrayLen(r io.Reader, maxLen int) (count int, null bool, err error) {
	n, err := ReadInt32(r)
	if err != nil {
		return 0, false, err
	}
	if n < 0 {
		return 0, true, nil
	}
	if int(n) > maxLen {
		return 0, false, newDecodingError(StatusBadEncodingLimitsExceeded, "array length exceeds limit", nil)
	}
	return int(n), false, nil
}

// byteLenOf is implemented by every built-in type in this package.
type byteLenOf interface {
	ByteLen() int
}

type encoder interface {
	byteLenOf
	Encode(w io.Writer) (int, error)
}

// ArrayByteLen returns the exact wire length of write_array(items) for a
// null array (items == nil) or a present one.
func ArrayByteLen[T byteLenOf](items []T, null bool) int {
	if null {
		return 4
	}
	size := 4
	for _, it := range items {
		size += it.ByteLen()
	}
	return size
}

// WriteArray writes the Int32 length prefix followed by each element's
// encoding, in order. Pass null=true for an absent (as opposed to empty)
// array.
func WriteArray[T encoder](w io.Writer, items []T, null bool) (int, error) {
	size, err := WriteArrayLen(w, len(items), null)
	if err != nil {
		return size, err
	}
	for _, it := range items {
		n, err := it.Encode(w)
		size += n
		if err != nil {
			return size, err
		}
	}
	return size, nil
}

// ReadArray reads an Int32 length prefix then decodes that many elements
// with decodeOne, enforcing limits.MaxArrayLength against the declared
// count. Returns (nil, true, nil) for a null array and a non-nil empty
// slice with false for a present-but-empty one (len(result) == 0 either
// way, null distinguishes the two — check the returned bool, not len).
func ReadArray[T any](r io.Reader, limits *DecodingLimits, decodeOne func(io.Reader, *DecodingLimits) (T, error)) ([]T, bool, error) {
	count, null, err := ReadArrayLen(r, limits.maxArrayLength())
	if err != nil {
		return nil, false, err
	}
	if null {
		return nil, true, nil
	}
	items := make([]T, 0, count)
	for i := 0; i < count; i++ {
		v, err := decodeOne(r, limits)
		if err != nil {
			return nil, false, err
		}
		items = append(items, v)
	}
	return items, false, nil
}
