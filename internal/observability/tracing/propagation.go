package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// ExtractFromHTTPRequest continues a trace started by the API caller.
func ExtractFromHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(r.Header))
}

// InjectToMetadata writes the current trace context into bus message metadata so
// consumers of reminder and intake events join the same trace. A nil map is left alone.
func InjectToMetadata(ctx context.Context, metadata map[string]string) {
	if metadata == nil {
		return
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.MapCarrier(metadata))
}
