package pubsub

import (
	"context"
	"unicode/utf8"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const payloadPreviewLength = 100

// startMessageSpan opens a span named pubsub.<operation>.<topic> carrying the
// messaging attributes shared by the publish and process sides.
func startMessageSpan(ctx context.Context, tracer trace.Tracer, operation, topic string, msg *message.Message, kind trace.SpanKind) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "watermill"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.destination", topic),
		attribute.String("messaging.message_id", msg.UUID),
		attribute.String("client.id", msg.Metadata.Get(metaKeyClientID)),
		attribute.Int("messaging.message_payload_size_bytes", len(msg.Payload)),
		attribute.String("messaging.message_payload_preview", payloadPreview(msg.Payload)),
	}
	if id := RequestIDFromContext(ctx); id != "" {
		attrs = append(attrs, attribute.String("http.request_id", id))
	}
	return tracer.Start(ctx, "pubsub."+operation+"."+topic, trace.WithSpanKind(kind), trace.WithAttributes(attrs...))
}

// payloadPreview cuts the payload to a readable prefix without splitting a rune.
func payloadPreview(payload []byte) string {
	if len(payload) <= payloadPreviewLength {
		return string(payload)
	}
	cut := payloadPreviewLength
	for cut > 0 && !utf8.RuneStart(payload[cut]) {
		cut--
	}
	return string(payload[:cut]) + "..."
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// TracingMiddleware records a consumer span around every handled message.
// The span is parented on the trace context the publisher wrote into the metadata.
func TracingMiddleware(tracer trace.Tracer) func(message.HandlerFunc) message.HandlerFunc {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			spanCtx, span := startMessageSpan(msg.Context(), tracer, "process", msg.Metadata.Get(metaKeyTopic), msg, trace.SpanKindConsumer)
			defer span.End()

			msg.SetContext(spanCtx)

			produced, err := h(msg)
			if err != nil {
				failSpan(span, err)
				return nil, err
			}
			span.SetAttributes(attribute.Int("messaging.messages_produced", len(produced)))
			return produced, nil
		}
	}
}

// PublisherTracingMiddleware wraps a publisher with a producer span per message.
type PublisherTracingMiddleware struct {
	publisher message.Publisher
	tracer    trace.Tracer
}

// NewPublisherTracingMiddleware creates a new publisher with tracing middleware
func NewPublisherTracingMiddleware(publisher message.Publisher, tracer trace.Tracer) *PublisherTracingMiddleware {
	return &PublisherTracingMiddleware{
		publisher: publisher,
		tracer:    tracer,
	}
}

// Publish starts a span per message and rewrites the propagated trace context
// so consumers become children of the publish span.
func (p *PublisherTracingMiddleware) Publish(topic string, messages ...*message.Message) error {
	spans := make([]trace.Span, 0, len(messages))
	defer func() {
		for _, span := range spans {
			span.End()
		}
	}()

	for _, msg := range messages {
		spanCtx, span := startMessageSpan(msg.Context(), p.tracer, "publish", topic, msg, trace.SpanKindProducer)
		spans = append(spans, span)
		injectContext(spanCtx, msg.Metadata)
		msg.SetContext(spanCtx)
	}

	err := p.publisher.Publish(topic, messages...)
	if err != nil {
		for _, span := range spans {
			failSpan(span, err)
		}
	}
	return err
}

// Close closes the underlying publisher
func (p *PublisherTracingMiddleware) Close() error {
	return p.publisher.Close()
}
