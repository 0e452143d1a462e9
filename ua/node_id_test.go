package ua

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNodeIDTwoByteWireExample checks the spec §8 canonical-form example:
// ns=0, numeric identifier 42 encodes to the 2-byte TwoByte form
// [0x00, 0x2A].
func TestNodeIDTwoByteWireExample(t *testing.T) {
	n := NewNumericNodeID(0, 42)
	var buf bytes.Buffer
	size, err := n.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, size)
	assert.Equal(t, []byte{0x00, 0x2A}, buf.Bytes())

	got, err := DecodeNodeID(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, uint16(0), got.Namespace())
	assert.Equal(t, uint32(42), got.IntID())
}

func TestNodeIDWireFormSelection(t *testing.T) {
	tests := []struct {
		name     string
		nodeID   *NodeID
		wantLen  int
		wantForm byte
	}{
		{"TwoByte: ns=0, id<=255", NewNumericNodeID(0, 255), 2, nodeIDFormTwoByte},
		{"FourByte: ns<=255, id<=65535", NewNumericNodeID(1, 1001), 4, nodeIDFormFourByte},
		{"Numeric: id>65535", NewNumericNodeID(0, 100000), 7, nodeIDFormNumeric},
		{"Numeric: ns>255", NewNumericNodeID(300, 5), 7, nodeIDFormNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := tt.nodeID.Encode(&buf)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, n)
			assert.Equal(t, tt.wantForm, buf.Bytes()[0]&0x0F)
		})
	}
}

func TestNodeIDStringRoundTrip(t *testing.T) {
	n := NewStringNodeID(2, "Temperature.Sensor1")
	var buf bytes.Buffer
	_, err := n.Encode(&buf)
	require.NoError(t, err)

	got, err := DecodeNodeID(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, NodeIDTypeString, got.Type())
	assert.Equal(t, uint16(2), got.Namespace())
	assert.Equal(t, "Temperature.Sensor1", got.StringID())
}

func TestNodeIDGUIDRoundTrip(t *testing.T) {
	g := Guid{Data1: 1, Data2: 2, Data3: 3, Data4: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}}
	n := NewGUIDNodeID(5, g)
	var buf bytes.Buffer
	_, err := n.Encode(&buf)
	require.NoError(t, err)

	got, err := DecodeNodeID(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, NodeIDTypeGUID, got.Type())
	assert.Equal(t, g, got.GUIDID())
}

func TestNodeIDByteStringRoundTrip(t *testing.T) {
	n := NewByteStringNodeID(0, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	var buf bytes.Buffer
	_, err := n.Encode(&buf)
	require.NoError(t, err)

	got, err := DecodeNodeID(bytes.NewReader(buf.Bytes()), DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, NodeIDTypeByteString, got.Type())
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, got.OpaqueID())
}

func TestNodeIDStringForm(t *testing.T) {
	assert.Equal(t, "i=42", NewNumericNodeID(0, 42).String())
	assert.Equal(t, "ns=2;i=42", NewNumericNodeID(2, 42).String())
	assert.Equal(t, "ns=1;s=Foo", NewStringNodeID(1, "Foo").String())
}

func TestParseNodeID(t *testing.T) {
	tests := []struct {
		in      string
		wantNs  uint16
		wantID  uint32
		wantStr string
		isStr   bool
	}{
		{"i=2042", 0, 2042, "", false},
		{"ns=2;i=1000", 2, 1000, "", false},
		{"s=Foo", 0, 0, "Foo", true},
		{"ns=1;s=Bar", 1, 0, "Bar", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := ParseNodeID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNs, n.Namespace())
			if tt.isStr {
				assert.Equal(t, tt.wantStr, n.StringID())
			} else {
				assert.Equal(t, tt.wantID, n.IntID())
			}
		})
	}
}

func TestParseNodeIDInvalid(t *testing.T) {
	_, err := ParseNodeID("bogus")
	require.Error(t, err)
}

func TestDecodeNodeIDUnrecognizedForm(t *testing.T) {
	_, err := DecodeNodeID(bytes.NewReader([]byte{0x09}), DefaultDecodingLimits())
	require.Error(t, err)
	var decErr *DecodingError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, StatusBadDecodingError, decErr.Status)
}
