package uatcp

import (
	"bytes"
	"testing"

	"github.com/bruegth/opcua-core/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageHeaderRoundTrip(t *testing.T) {
	h := MessageHeader{Type: MessageTypeHello, Chunk: ChunkTypeFinal, Length: 32}

	var buf bytes.Buffer
	n, err := h.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, headerSize, n)
	assert.Equal(t, []byte{'H', 'E', 'L', 'F', 0x20, 0x00, 0x00, 0x00}, buf.Bytes())

	got, err := DecodeMessageHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestMessageHeaderEncodeRejectsShortType(t *testing.T) {
	h := MessageHeader{Type: MessageType("HE"), Chunk: ChunkTypeFinal, Length: 8}
	var buf bytes.Buffer
	_, err := h.Encode(&buf)
	require.Error(t, err)
	var encErr *ua.EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, ua.StatusBadInvalidState, encErr.Status)
}

func TestMessageHeaderDecodeShortReadFails(t *testing.T) {
	_, err := DecodeMessageHeader(bytes.NewReader([]byte{'H', 'E', 'L'}))
	require.Error(t, err)
	var decErr *ua.DecodingError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, ua.StatusBadDecodingError, decErr.Status)
}
