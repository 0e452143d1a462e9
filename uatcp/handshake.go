package uatcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/bruegth/opcua-core/ua"
)

// handshakeConfig collects the optional logger/meter a caller can attach to
// a handshake. Both default to the package's no-op behavior when absent,
// matching the teacher's pattern of accepting a *zap.Logger into
// newOPCUAClient rather than reaching for a global logger.
type handshakeConfig struct {
	logger *zap.Logger
	meter  metric.Meter
}

// HandshakeOption configures logging/metrics for a single handshake call.
type HandshakeOption func(*handshakeConfig)

// WithLogger attaches structured logging to a handshake.
func WithLogger(logger *zap.Logger) HandshakeOption {
	return func(c *handshakeConfig) { c.logger = logger }
}

// WithMeter attaches an otel metric.Meter a handshake records
// outcomes/chunk-size instruments against.
func WithMeter(meter metric.Meter) HandshakeOption {
	return func(c *handshakeConfig) { c.meter = meter }
}

func newHandshakeConfig(opts []HandshakeOption) *handshakeConfig {
	c := &handshakeConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PerformServerHandshake drives the server side of the single-shot
// Hello/Acknowledge/Error state machine (spec §4.5):
//
//	AwaitingHello --(recv HEL/F)--> ValidateHello
//	  invalid (bad type, buffers < MinBufferSize, endpoint too long) --> SendError --> closed
//	  ok --> SendAck --> SecureChannelOpenPending
//
// Any message other than a final Hello chunk as the first frame is a
// protocol violation: an Error is sent and an error returned: the caller is
// expected to close the connection in that case.
func PerformServerHandshake(ctx context.Context, conn io.ReadWriter, serverLimits NegotiatedLimits, opts ...HandshakeOption) (NegotiatedLimits, error) {
	cfg := newHandshakeConfig(opts)
	instr := newInstrumentation(cfg.meter)

	header, body, err := ReadFrame(conn, serverLimits.MaxMessageSize)
	if err != nil {
		cfg.logger.Warn("UA-TCP handshake: failed to read opening frame", zap.Error(err))
		instr.recordHandshakeRejected(ctx, "read_error")
		return NegotiatedLimits{}, err
	}
	if header.Type != MessageTypeHello || header.Chunk != ChunkTypeFinal {
		cfg.logger.Warn("UA-TCP handshake: expected a final Hello chunk first",
			zap.String("got_type", string(header.Type)), zap.Uint8("got_chunk", uint8(header.Chunk)))
		instr.recordHandshakeRejected(ctx, "protocol_violation")
		sendError(conn, ua.StatusBadConnectionRejected, "expected Hello as the first message")
		return NegotiatedLimits{}, &ua.DecodingError{Status: ua.StatusBadConnectionRejected, Msg: "protocol violation: expected Hello"}
	}

	hello, err := DecodeHelloMessage(bytes.NewReader(body))
	if err != nil {
		cfg.logger.Warn("UA-TCP handshake: malformed Hello body", zap.Error(err))
		instr.recordHandshakeRejected(ctx, "malformed_hello")
		sendError(conn, ua.StatusBadConnectionRejected, "malformed Hello")
		return NegotiatedLimits{}, err
	}

	if err := hello.Validate(); err != nil {
		cfg.logger.Info("UA-TCP handshake: rejecting Hello",
			zap.Uint32("receive_buffer_size", hello.ReceiveBufferSize),
			zap.Uint32("send_buffer_size", hello.SendBufferSize),
			zap.Error(err))
		instr.recordHandshakeRejected(ctx, "hello_rejected")
		status := ua.StatusBadConnectionRejected
		var decErr *ua.DecodingError
		if errors.As(err, &decErr) {
			status = decErr.Status
		}
		sendError(conn, status, err.Error())
		return NegotiatedLimits{}, err
	}

	ack := negotiate(hello, serverLimits)
	var buf bytes.Buffer
	if _, err := ack.Encode(&buf); err != nil {
		return NegotiatedLimits{}, err
	}
	if _, err := WriteFrame(conn, MessageTypeAcknowledge, ChunkTypeFinal, buf.Bytes(), 0); err != nil {
		cfg.logger.Error("UA-TCP handshake: failed to send Acknowledge", zap.Error(err))
		instr.recordHandshakeRejected(ctx, "write_error")
		return NegotiatedLimits{}, err
	}

	negotiated := NegotiatedLimits{
		ReceiveBufferSize: ack.ReceiveBufferSize,
		SendBufferSize:    ack.SendBufferSize,
		MaxMessageSize:    ack.MaxMessageSize,
		MaxChunkCount:     ack.MaxChunkCount,
	}
	cfg.logger.Info("UA-TCP handshake accepted",
		zap.Uint32("receive_buffer_size", negotiated.ReceiveBufferSize),
		zap.Uint32("send_buffer_size", negotiated.SendBufferSize),
		zap.Uint32("max_message_size", negotiated.MaxMessageSize))
	instr.recordHandshakeAccepted(ctx, negotiated.MaxChunkBodySize())
	return negotiated, nil
}

// PerformClientHandshake drives the client side: send Hello, then await
// either Acknowledge (success) or Error (rejection) as the first and only
// response frame.
func PerformClientHandshake(ctx context.Context, conn io.ReadWriter, hello *HelloMessage, opts ...HandshakeOption) (NegotiatedLimits, error) {
	cfg := newHandshakeConfig(opts)
	instr := newInstrumentation(cfg.meter)

	if err := hello.Validate(); err != nil {
		return NegotiatedLimits{}, err
	}

	var buf bytes.Buffer
	if _, err := hello.Encode(&buf); err != nil {
		return NegotiatedLimits{}, err
	}
	if _, err := WriteFrame(conn, MessageTypeHello, ChunkTypeFinal, buf.Bytes(), 0); err != nil {
		cfg.logger.Error("UA-TCP handshake: failed to send Hello", zap.Error(err))
		instr.recordHandshakeRejected(ctx, "write_error")
		return NegotiatedLimits{}, err
	}

	header, body, err := ReadFrame(conn, hello.MaxMessageSize)
	if err != nil {
		cfg.logger.Warn("UA-TCP handshake: failed to read server response", zap.Error(err))
		instr.recordHandshakeRejected(ctx, "read_error")
		return NegotiatedLimits{}, err
	}

	switch header.Type {
	case MessageTypeAcknowledge:
		if header.Chunk != ChunkTypeFinal {
			instr.recordHandshakeRejected(ctx, "protocol_violation")
			return NegotiatedLimits{}, &ua.DecodingError{Status: ua.StatusBadConnectionRejected, Msg: "Acknowledge must be a final chunk"}
		}
		ack, err := DecodeAcknowledgeMessage(bytes.NewReader(body))
		if err != nil {
			instr.recordHandshakeRejected(ctx, "malformed_ack")
			return NegotiatedLimits{}, err
		}
		negotiated := NegotiatedLimits{
			ReceiveBufferSize: ack.ReceiveBufferSize,
			SendBufferSize:    ack.SendBufferSize,
			MaxMessageSize:    ack.MaxMessageSize,
			MaxChunkCount:     ack.MaxChunkCount,
		}
		cfg.logger.Info("UA-TCP handshake accepted by server",
			zap.Uint32("send_buffer_size", negotiated.SendBufferSize),
			zap.Uint32("receive_buffer_size", negotiated.ReceiveBufferSize))
		instr.recordHandshakeAccepted(ctx, negotiated.MaxChunkBodySize())
		return negotiated, nil
	case MessageTypeError:
		errMsg, decErr := DecodeErrorMessage(bytes.NewReader(body), nil)
		if decErr != nil {
			instr.recordHandshakeRejected(ctx, "malformed_error")
			return NegotiatedLimits{}, decErr
		}
		cfg.logger.Warn("UA-TCP handshake rejected by server",
			zap.String("status", errMsg.Status.String()), zap.String("reason", errMsg.Reason.Value))
		instr.recordHandshakeRejected(ctx, "server_rejected")
		return NegotiatedLimits{}, &ua.DecodingError{Status: errMsg.Status, Msg: fmt.Sprintf("server rejected Hello: %s", errMsg.Reason.Value)}
	default:
		instr.recordHandshakeRejected(ctx, "protocol_violation")
		return NegotiatedLimits{}, &ua.DecodingError{Status: ua.StatusBadConnectionRejected, Msg: "expected Acknowledge or Error in response to Hello"}
	}
}

// sendError writes an ErrorMessage frame, swallowing any write failure —
// the connection is being abandoned either way and the caller already has
// the original error to report.
func sendError(conn io.Writer, status ua.StatusCode, reason string) {
	em := &ErrorMessage{Status: status, Reason: ua.NewString(reason)}
	var buf bytes.Buffer
	if _, err := em.Encode(&buf); err != nil {
		return
	}
	_, _ = WriteFrame(conn, MessageTypeError, ChunkTypeFinal, buf.Bytes(), 0)
}
