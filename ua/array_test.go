package ua

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteArrayReadArrayRoundTrip(t *testing.T) {
	items := []String{NewString("a"), NewString("b"), NewString("c")}
	var buf bytes.Buffer
	n, err := WriteArray(&buf, items, false)
	require.NoError(t, err)
	assert.Equal(t, ArrayByteLen(items, false), n)

	got, null, err := ReadArray(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits(), DecodeString)
	require.NoError(t, err)
	assert.False(t, null)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Value)
	assert.Equal(t, "b", got[1].Value)
	assert.Equal(t, "c", got[2].Value)
}

func TestArrayNullVsEmpty(t *testing.T) {
	var nullBuf, emptyBuf bytes.Buffer
	_, err := WriteArray[String](&nullBuf, nil, true)
	require.NoError(t, err)
	_, err = WriteArray(&emptyBuf, []String{}, false)
	require.NoError(t, err)

	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, nullBuf.Bytes())
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, emptyBuf.Bytes())

	_, null, err := ReadArray(bytes.NewReader(nullBuf.Bytes()), DefaultDecodingLimits(), DecodeString)
	require.NoError(t, err)
	assert.True(t, null)

	got, null, err := ReadArray(bytes.NewReader(emptyBuf.Bytes()), DefaultDecodingLimits(), DecodeString)
	require.NoError(t, err)
	assert.False(t, null)
	assert.Empty(t, got)
}

func TestReadArrayEnforcesMaxLength(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteInt32(&buf, 0x7FFFFFFF)
	require.NoError(t, err)

	limits := &DecodingLimits{MaxArrayLength: 4}
	_, _, err = ReadArray(bytes.NewReader(buf.Bytes()), limits, DecodeString)
	require.Error(t, err)
	var decErr *DecodingError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, StatusBadEncodingLimitsExceeded, decErr.Status)
}

func TestArrayByteLenNullIsFourBytes(t *testing.T) {
	assert.Equal(t, 4, ArrayByteLen[String](nil, true))
}
