package logger

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// traceContext carries the current trace identifiers as strings.
type traceContext struct {
	traceID string
	spanID  string
}

// traceContextFrom extracts trace identifiers from the context, if a
// valid span is recording.
func traceContextFrom(ctx context.Context) (traceContext, bool) {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return traceContext{}, false
	}
	return traceContext{
		traceID: sc.TraceID().String(),
		spanID:  sc.SpanID().String(),
	}, true
}

// TraceContextHandler decorates another slog.Handler with trace_id and
// span_id attributes taken from the request context.
type TraceContextHandler struct {
	inner slog.Handler
}

// NewTraceContextHandler wraps the given handler.
func NewTraceContextHandler(inner slog.Handler) *TraceContextHandler {
	return &TraceContextHandler{inner: inner}
}

func (h *TraceContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *TraceContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if tc, ok := traceContextFrom(ctx); ok {
		r.AddAttrs(
			slog.String("trace_id", tc.traceID),
			slog.String("span_id", tc.spanID),
		)
	}
	return h.inner.Handle(ctx, r)
}

func (h *TraceContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceContextHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *TraceContextHandler) WithGroup(name string) slog.Handler {
	return &TraceContextHandler{inner: h.inner.WithGroup(name)}
}
