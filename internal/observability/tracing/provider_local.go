//go:build !gcloud

package tracing

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider creates a TracerProvider without an exporter. Spans still carry
// ids so logs and published messages can be correlated.
func NewProvider(_ context.Context, cfg Config) (*Provider, error) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(newResource(cfg)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
	)

	return &Provider{tp: tp}, nil
}
