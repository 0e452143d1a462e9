package uatcp

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/bruegth/opcua-core/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serverLimitsForTest() NegotiatedLimits {
	return NegotiatedLimits{
		ReceiveBufferSize: 8192,
		SendBufferSize:    65536,
		MaxMessageSize:    16_777_216,
		MaxChunkCount:     5000,
	}
}

func TestHandshakeAcceptsValidHello(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	type serverResult struct {
		limits NegotiatedLimits
		err    error
	}
	serverDone := make(chan serverResult, 1)
	go func() {
		limits, err := PerformServerHandshake(ctx, serverConn, serverLimitsForTest())
		serverDone <- serverResult{limits, err}
	}()

	hello := &HelloMessage{
		ProtocolVersion:   0,
		ReceiveBufferSize: 65536,
		SendBufferSize:    65536,
		MaxMessageSize:    16_777_216,
		MaxChunkCount:     10_000,
		EndpointURL:       ua.NewString("opc.tcp://host:4840"),
	}
	clientLimits, err := PerformClientHandshake(ctx, clientConn, hello)
	require.NoError(t, err)
	assert.Equal(t, uint32(8192), clientLimits.ReceiveBufferSize)
	assert.Equal(t, uint32(65536), clientLimits.SendBufferSize)
	assert.Equal(t, uint32(16_777_216), clientLimits.MaxMessageSize)
	assert.Equal(t, uint32(5000), clientLimits.MaxChunkCount)

	result := <-serverDone
	require.NoError(t, result.err)
	assert.Equal(t, clientLimits, result.limits)
}

// TestHandshakeRejectsBufferBelowMinimum checks the spec §8 scenario: a
// Hello proposing receive_buffer_size = 4096, below MinBufferSize (8192),
// is rejected with an Error carrying BadConnectionRejected and no
// Acknowledge is ever sent.
func TestHandshakeRejectsBufferBelowMinimum(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	type serverResult struct {
		limits NegotiatedLimits
		err    error
	}
	serverDone := make(chan serverResult, 1)
	go func() {
		limits, err := PerformServerHandshake(ctx, serverConn, serverLimitsForTest())
		serverDone <- serverResult{limits, err}
	}()

	hello := &HelloMessage{
		ProtocolVersion:   0,
		ReceiveBufferSize: 4096,
		SendBufferSize:    65536,
		MaxMessageSize:    16_777_216,
		MaxChunkCount:     10_000,
		EndpointURL:       ua.NewString("opc.tcp://host:4840"),
	}
	// Bypass Validate on the client side: we want to exercise the server's
	// rejection path, not the client's own pre-send validation.
	var body bytes.Buffer
	_, err := hello.Encode(&body)
	require.NoError(t, err)
	_, err = WriteFrame(clientConn, MessageTypeHello, ChunkTypeFinal, body.Bytes(), 0)
	require.NoError(t, err)

	header, respBody, err := ReadFrame(clientConn, 0)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeError, header.Type)

	errMsg, err := DecodeErrorMessage(bytes.NewReader(respBody), ua.DefaultDecodingLimits())
	require.NoError(t, err)
	assert.Equal(t, ua.StatusBadConnectionRejected, errMsg.Status)

	result := <-serverDone
	require.Error(t, result.err)
	var decErr *ua.DecodingError
	require.ErrorAs(t, result.err, &decErr)
	assert.Equal(t, ua.StatusBadConnectionRejected, decErr.Status)
}

func TestPerformClientHandshakeRejectsInvalidHelloBeforeSending(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	hello := &HelloMessage{
		ProtocolVersion:   0,
		ReceiveBufferSize: 100,
		SendBufferSize:    100,
		MaxMessageSize:    0,
		MaxChunkCount:     0,
		EndpointURL:       ua.NewString("opc.tcp://host:4840"),
	}
	_, err := PerformClientHandshake(context.Background(), clientConn, hello)
	require.Error(t, err)
	var decErr *ua.DecodingError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, ua.StatusBadConnectionRejected, decErr.Status)
}

func TestPerformServerHandshakeRejectsNonHelloFirstMessage(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	serverDone := make(chan error, 1)
	go func() {
		_, err := PerformServerHandshake(ctx, serverConn, serverLimitsForTest())
		serverDone <- err
	}()

	_, err := WriteFrame(clientConn, MessageTypeMessage, ChunkTypeFinal, []byte{0x01, 0x02}, 0)
	require.NoError(t, err)

	header, _, err := ReadFrame(clientConn, 0)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeError, header.Type)

	result := <-serverDone
	require.Error(t, result)
	var decErr *ua.DecodingError
	require.ErrorAs(t, result, &decErr)
	assert.Equal(t, ua.StatusBadConnectionRejected, decErr.Status)
}
