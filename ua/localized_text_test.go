package ua

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocalizedTextWireExample checks the spec §8 concrete scenario:
// {locale=null, text="hello"} encodes to 02 05 00 00 00 68 65 6C 6C 6F.
func TestLocalizedTextWireExample(t *testing.T) {
	lt := LocalizedText{Locale: NullString(), Text: NewString("hello")}
	want := []byte{0x02, 0x05, 0x00, 0x00, 0x00, 0x68, 0x65, 0x6C, 0x6C, 0x6F}

	var buf bytes.Buffer
	n, err := lt.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, len(want), n)
	assert.Equal(t, want, buf.Bytes())

	got, err := DecodeLocalizedText(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.True(t, got.Locale.IsNull())
	assert.Equal(t, "hello", got.Text.Value)
}

func TestLocalizedTextBothPresent(t *testing.T) {
	lt := LocalizedText{Locale: NewString("en-US"), Text: NewString("Temperature")}
	var buf bytes.Buffer
	n, err := lt.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, lt.ByteLen(), n)
	assert.Equal(t, byte(0x03), buf.Bytes()[0])

	got, err := DecodeLocalizedText(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, "en-US", got.Locale.Value)
	assert.Equal(t, "Temperature", got.Text.Value)
}

func TestLocalizedTextBothAbsent(t *testing.T) {
	lt := LocalizedText{Locale: NullString(), Text: NullString()}
	var buf bytes.Buffer
	n, err := lt.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte{0x00}, buf.Bytes())

	got, err := DecodeLocalizedText(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.True(t, got.Locale.IsNull())
	assert.True(t, got.Text.IsNull())
}
