package websocket

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhitelist_IsAllowed(t *testing.T) {
	tests := []struct {
		name     string
		actions  []string
		action   string
		expected bool
	}{
		{name: "empty whitelist", actions: []string{}, action: ActionNext, expected: false},
		{name: "action exists", actions: []string{ActionNext, ActionPrev}, action: ActionNext, expected: true},
		{name: "action does not exist", actions: []string{ActionNext, ActionPrev}, action: "jump", expected: false},
		{name: "empty action", actions: []string{ActionNext}, action: "", expected: false},
		{name: "empty names are skipped", actions: []string{""}, action: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewWhitelist(tt.actions...).IsAllowed(tt.action))
		})
	}
}

func TestWhitelist_Add(t *testing.T) {
	wl := NewWhitelist(ActionNext)

	assert.ErrorIs(t, wl.Add(""), ErrInvalidAction)
	assert.ErrorIs(t, wl.Add(ActionNext), ErrActionAlreadyExists)
	assert.NoError(t, wl.Add(ActionPrev))
	assert.True(t, wl.IsAllowed(ActionPrev))
}

func TestWhitelist_Concurrent(t *testing.T) {
	wl := NewWhitelist()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); _ = wl.Add(ActionHover) }()
		go func() { defer wg.Done(); wl.IsAllowed(ActionHover) }()
	}
	wg.Wait()
	assert.True(t, wl.IsAllowed(ActionHover))
}

func TestCarouselWhitelist(t *testing.T) {
	wl := CarouselWhitelist()
	for _, a := range []string{ActionNext, ActionPrev, ActionGoTo, ActionHover, ActionModal} {
		assert.True(t, wl.IsAllowed(a), a)
	}
	assert.False(t, wl.IsAllowed("publish"))
}
