package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_ScopesPerClient(t *testing.T) {
	r := NewRegistry(func() *Controller { return NewController(&mockDeliverer{}) }, time.Hour)
	defer r.Close()

	a := r.Get("client-a")
	assert.Same(t, a, r.Get("client-a"))
	assert.NotSame(t, a, r.Get("client-b"))
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_EvictsIdle(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }

	r := NewRegistry(func() *Controller {
		return NewController(&mockDeliverer{}, WithClock(clock))
	}, time.Minute)
	defer r.Close()
	r.now = clock

	r.Get("old")
	now = now.Add(2 * time.Minute)
	r.Get("fresh").Snapshot()

	assert.Equal(t, 1, r.Evict())
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_CloseIsIdempotent(t *testing.T) {
	r := NewRegistry(func() *Controller { return NewController(&mockDeliverer{}) }, time.Hour)
	r.Get("x")
	r.Close()
	r.Close()
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_LookupDoesNotCreate(t *testing.T) {
	r := NewRegistry(func() *Controller { return NewController(&mockDeliverer{}) }, time.Hour)
	defer r.Close()

	_, ok := r.Lookup("client-a")
	assert.False(t, ok)
	assert.Equal(t, Idle, r.view("client-a").Status().Kind)
	assert.Zero(t, r.Len())

	created := r.Get("client-a")
	got, ok := r.Lookup("client-a")
	assert.True(t, ok)
	assert.Same(t, created, got)
	assert.Same(t, created, r.view("client-a"))
}
