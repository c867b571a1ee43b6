package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingPayload struct {
	Greeting string `json:"greeting"`
	Count    int    `json:"count,omitempty"`
	Internal string `json:"-"`
}

var pingEvent = NewEvent[pingPayload]("test.ping", "Ping used by the typed event tests")

func TestNewEventRecordsPayloadFields(t *testing.T) {
	info := pingEvent.Info()
	assert.Equal(t, "test.ping", info.Name)
	assert.Equal(t, "pingPayload", info.TypeName)
	assert.Equal(t, []string{"greeting", "count"}, info.PayloadFields)

	var found bool
	for _, e := range Events() {
		if e.Name == "test.ping" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNewEventDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewEvent[pingPayload]("test.ping", "again")
	})
}

func TestTypedPublishSubscribe(t *testing.T) {
	bridge := NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type delivery struct {
		clientID string
		payload  pingPayload
	}
	got := make(chan delivery, 1)
	require.NoError(t, Subscribe(ctx, bridge, pingEvent, func(ctx context.Context, clientID string, p pingPayload) error {
		got <- delivery{clientID, p}
		return nil
	}))

	require.NoError(t, Publish(ctx, bridge, pingEvent, "abc", pingPayload{Greeting: "hi", Count: 2, Internal: "dropped"}))

	select {
	case d := <-got:
		assert.Equal(t, "abc", d.clientID)
		assert.Equal(t, "hi", d.payload.Greeting)
		assert.Equal(t, 2, d.payload.Count)
		assert.Empty(t, d.payload.Internal)
	case <-time.After(2 * time.Second):
		t.Fatal("typed event was not delivered")
	}
}
