package websocket

import (
	"errors"
	"sync"
)

var (
	// ErrActionAlreadyExists is returned when trying to add a duplicate action
	ErrActionAlreadyExists = errors.New("action already exists in whitelist")
	// ErrInvalidAction is returned when an empty action is provided
	ErrInvalidAction = errors.New("action cannot be empty")
)

// Whitelist is the set of actions a client may send.
type Whitelist struct {
	mu      sync.RWMutex
	actions map[string]struct{}
}

// NewWhitelist creates a whitelist with the given actions. Empty names are skipped.
func NewWhitelist(actions ...string) *Whitelist {
	w := &Whitelist{actions: make(map[string]struct{}, len(actions))}
	for _, a := range actions {
		if a != "" {
			w.actions[a] = struct{}{}
		}
	}
	return w
}

// IsAllowed reports whether action may be handled.
func (w *Whitelist) IsAllowed(action string) bool {
	if action == "" {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.actions[action]
	return ok
}

// Add allows one more action.
func (w *Whitelist) Add(action string) error {
	if action == "" {
		return ErrInvalidAction
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.actions[action]; ok {
		return ErrActionAlreadyExists
	}
	w.actions[action] = struct{}{}
	return nil
}

// CarouselWhitelist allows the carousel controls.
func CarouselWhitelist() *Whitelist {
	return NewWhitelist(ActionNext, ActionPrev, ActionGoTo, ActionHover, ActionModal)
}
