package uatcp

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentation wraps the counters/histograms a handshake records.
// Instruments are created from a caller-supplied metric.Meter; a nil Meter
// (or one backed by the otel no-op MeterProvider) makes every recording a
// no-op, exactly as the rest of the otel/metric ecosystem behaves when no
// MeterProvider is configured. The teacher carries otel/metric only as an
// indirect dependency (pulled in transitively by the collector SDK); this
// package is what exercises it directly.
type instrumentation struct {
	handshakeOutcomes metric.Int64Counter
	chunkSizes        metric.Int64Histogram
}

// newInstrumentation builds the instruments from meter. meter may be nil,
// in which case every record* call below becomes a cheap no-op.
func newInstrumentation(meter metric.Meter) *instrumentation {
	if meter == nil {
		return &instrumentation{}
	}
	outcomes, _ := meter.Int64Counter(
		"opcua.uatcp.handshake_outcomes",
		metric.WithDescription("count of UA-TCP handshakes by outcome (accepted/rejected)"),
	)
	chunkSizes, _ := meter.Int64Histogram(
		"opcua.uatcp.negotiated_chunk_size",
		metric.WithDescription("negotiated max chunk body size in bytes, recorded once per accepted handshake"),
		metric.WithUnit("By"),
	)
	return &instrumentation{handshakeOutcomes: outcomes, chunkSizes: chunkSizes}
}

func (i *instrumentation) recordHandshakeAccepted(ctx context.Context, maxChunkBodySize uint32) {
	if i == nil {
		return
	}
	if i.handshakeOutcomes != nil {
		i.handshakeOutcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "accepted")))
	}
	if i.chunkSizes != nil {
		i.chunkSizes.Record(ctx, int64(maxChunkBodySize))
	}
}

func (i *instrumentation) recordHandshakeRejected(ctx context.Context, reason string) {
	if i == nil || i.handshakeOutcomes == nil {
		return
	}
	i.handshakeOutcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", "rejected"),
		attribute.String("reason", reason),
	))
}
