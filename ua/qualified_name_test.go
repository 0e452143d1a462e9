package ua

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualifiedNameRoundTrip(t *testing.T) {
	q := QualifiedName{NamespaceIndex: 2, Name: NewString("Temperature")}
	var buf bytes.Buffer
	n, err := q.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, q.ByteLen(), n)

	got, err := DecodeQualifiedName(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, q, got)
}

func TestQualifiedNameNullName(t *testing.T) {
	q := QualifiedName{NamespaceIndex: 0, Name: NullString()}
	var buf bytes.Buffer
	_, err := q.Encode(&buf)
	require.NoError(t, err)

	got, err := DecodeQualifiedName(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.True(t, got.Name.IsNull())
}
