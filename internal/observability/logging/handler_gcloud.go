//go:build gcloud

package logging

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

const (
	gcpTraceKey   = "logging.googleapis.com/trace"
	gcpSpanKey    = "logging.googleapis.com/spanId"
	gcpSampledKey = "logging.googleapis.com/trace_sampled"
)

// gcpTraceAttrs links an entry to its Cloud Trace span. Entries logged outside a
// span, such as timer deliveries before the fire span starts, get no trace fields.
func gcpTraceAttrs(ctx context.Context, projectID string) []slog.Attr {
	if projectID == "" {
		return nil
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	return []slog.Attr{
		slog.String(gcpTraceKey, "projects/"+projectID+"/traces/"+sc.TraceID().String()),
		slog.String(gcpSpanKey, sc.SpanID().String()),
		slog.Bool(gcpSampledKey, sc.IsSampled()),
	}
}
