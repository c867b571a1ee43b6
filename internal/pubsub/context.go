package pubsub

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/propagation"
)

type contextKey string

const requestIDKey = contextKey("request_id")

// propagator carries the W3C trace context across the bus in message metadata.
var propagator propagation.TextMapPropagator = propagation.TraceContext{}

// WithRequestID returns a context whose published messages carry id.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// injectContext writes the request ID and trace context of ctx into md.
func injectContext(ctx context.Context, md message.Metadata) {
	if id := RequestIDFromContext(ctx); id != "" {
		md.Set(metaKeyRequestID, id)
	}
	propagator.Inject(ctx, propagation.MapCarrier(md))
}

// extractContext rebuilds the publisher's request ID and trace context on top of base.
// The GoChannel hands subscribers a copy of the message, so nothing set with
// SetContext on the publishing side survives the trip.
func extractContext(base context.Context, md message.Metadata) context.Context {
	ctx := propagator.Extract(base, propagation.MapCarrier(md))
	return WithRequestID(ctx, md.Get(metaKeyRequestID))
}

// transportKey reports whether a metadata key is bus plumbing rather than user metadata.
func transportKey(k string) bool {
	if k == metaKeyClientID || k == metaKeyTopic {
		return true
	}
	for _, f := range propagator.Fields() {
		if k == f {
			return true
		}
	}
	return false
}
