package logging

import (
	"context"
	"log/slog"
)

// ContextHandler adds request id, module and trace attributes carried by the
// record's context.
type ContextHandler struct {
	next          slog.Handler
	projectID     string
	defaultModule Module
}

func NewContextHandler(next slog.Handler, projectID string, defaultModule Module) *ContextHandler {
	return &ContextHandler{
		next:          next,
		projectID:     projectID,
		defaultModule: defaultModule,
	}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if requestID := RequestIDFromContext(ctx); requestID != "" {
		r.AddAttrs(slog.String("request_id", requestID))
	}

	module := ModuleFromContext(ctx)
	if module == "" {
		module = h.defaultModule
	}

	if module != "" {
		r.AddAttrs(slog.String("module", string(module)))
	}

	r.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)

	return h.next.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{
		next:          h.next.WithAttrs(attrs),
		projectID:     h.projectID,
		defaultModule: h.defaultModule,
	}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{
		next:          h.next.WithGroup(name),
		projectID:     h.projectID,
		defaultModule: h.defaultModule,
	}
}
