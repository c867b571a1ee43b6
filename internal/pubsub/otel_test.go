package pubsub

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestTracingMiddleware(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	bridge := NewWatermillBridgeWithTracer(tp.Tracer("test"))
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, Message{
		Topic:    "test.topic",
		ClientID: "client-123",
		Payload:  []byte(`{"message":"hello"}`),
		Metadata: map[string]string{"request_id": "req-123"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "client-123", msg.ClientID)
		assert.Equal(t, "req-123", msg.Metadata["request_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}

	assert.Eventually(t, func() bool {
		var publish, process bool
		for _, span := range recorder.Ended() {
			switch span.Name() {
			case "pubsub.publish.test.topic":
				publish = true
			case "pubsub.process.test.topic":
				process = true
			}
		}
		return publish && process
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSubscriberContextCarriesPublisherTrace(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := tp.Tracer("test")

	bridge := NewWatermillBridgeWithTracer(tracer)
	t.Cleanup(func() { _ = bridge.Close() })

	type subKey struct{}
	subCtx, cancel := context.WithCancel(context.WithValue(context.Background(), subKey{}, "archive"))
	defer cancel()

	handled := make(chan context.Context, 1)
	require.NoError(t, bridge.Subscribe(subCtx, "contact.submitted", func(ctx context.Context, msg Message) error {
		assert.NotContains(t, msg.Metadata, "traceparent")
		handled <- ctx
		return nil
	}))

	reqCtx, root := tracer.Start(WithRequestID(context.Background(), "req-9"), "POST /contact")
	require.NoError(t, bridge.Publish(reqCtx, Message{Topic: "contact.submitted", ClientID: "c1", Payload: []byte(`{}`)}))
	root.End()

	var ctx context.Context
	select {
	case ctx = <-handled:
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}

	assert.Equal(t, "req-9", RequestIDFromContext(ctx))
	assert.Equal(t, "archive", ctx.Value(subKey{}), "handler context derives from the subscription context")
	assert.Equal(t, root.SpanContext().TraceID(), trace.SpanContextFromContext(ctx).TraceID())

	require.Eventually(t, func() bool { return len(recorder.Ended()) >= 3 }, 2*time.Second, 10*time.Millisecond)
	spans := map[string]sdktrace.ReadOnlySpan{}
	for _, span := range recorder.Ended() {
		spans[span.Name()] = span
	}
	publish, process := spans["pubsub.publish.contact.submitted"], spans["pubsub.process.contact.submitted"]
	require.NotNil(t, publish)
	require.NotNil(t, process)
	assert.Equal(t, root.SpanContext().SpanID(), publish.Parent().SpanID())
	assert.Equal(t, publish.SpanContext().SpanID(), process.Parent().SpanID())
	assert.Contains(t, process.Attributes(), attribute.String("http.request_id", "req-9"))
}

func TestUntracedBridgeStillPropagates(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	bridge := NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	handled := make(chan context.Context, 1)
	require.NoError(t, bridge.Subscribe(context.Background(), "contact.rejected", func(ctx context.Context, msg Message) error {
		handled <- ctx
		return nil
	}))

	ctx, span := tp.Tracer("test").Start(WithRequestID(context.Background(), "req-10"), "POST /contact")
	defer span.End()
	require.NoError(t, bridge.Publish(ctx, Message{Topic: "contact.rejected", Payload: []byte(`{}`)}))

	select {
	case got := <-handled:
		assert.Equal(t, "req-10", RequestIDFromContext(got))
		assert.Equal(t, span.SpanContext().TraceID(), trace.SpanContextFromContext(got).TraceID())
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestPayloadPreview(t *testing.T) {
	assert.Equal(t, `{"a":1}`, payloadPreview([]byte(`{"a":1}`)))

	long := strings.Repeat("a", 99) + "é" + "tail"
	got := payloadPreview([]byte(long))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 99)+"...", got)
}

func TestSetupOTel(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled tracing", func(t *testing.T) {
		tracer, cleanup, err := SetupOTel(ctx, TracingConfig{Enabled: false})
		require.NoError(t, err)
		require.NotNil(t, tracer)
		require.NotNil(t, cleanup)

		_, span := tracer.Start(ctx, "test")
		assert.False(t, span.SpanContext().IsValid())
		span.End()
		cleanup()
	})

	t.Run("enabled tracing with unreachable collector", func(t *testing.T) {
		tracer, cleanup, err := SetupOTel(ctx, TracingConfig{
			Enabled:     true,
			ServiceName: "studiosite-test",
			ZipkinURL:   "http://127.0.0.1:1/api/v2/spans",
		})
		require.NoError(t, err)
		require.NotNil(t, tracer)
		cleanup()
	})
}
