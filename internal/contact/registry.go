package contact

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultIdleTTL is how long an untouched controller is kept before eviction.
const DefaultIdleTTL = 30 * time.Minute

// Registry scopes one Controller to each browser client. Controllers are
// created on first submission and closed once the client has been idle for the TTL.
type Registry struct {
	mu          sync.Mutex
	controllers map[string]*Controller
	factory     func() *Controller
	// blank answers reads for clients that have no controller yet. It is never submitted to.
	blank     *Controller
	ttl       time.Duration
	now       func() time.Time
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	logger    *slog.Logger
}

// NewRegistry creates a registry and starts its eviction loop.
func NewRegistry(factory func() *Controller, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}
	r := &Registry{
		controllers: make(map[string]*Controller),
		factory:     factory,
		blank:       factory(),
		ttl:         ttl,
		now:         time.Now,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		logger:      slog.Default().With("service", "contact"),
	}
	go r.janitor()
	return r
}

// Get returns the controller for clientID, creating it if needed.
func (r *Registry) Get(clientID string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.controllers[clientID]; ok {
		return c
	}
	c := r.factory()
	r.controllers[clientID] = c
	r.logger.Debug("Created contact controller", "client_id", clientID)
	return c
}

// Lookup returns the controller for clientID without creating one.
func (r *Registry) Lookup(clientID string) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.controllers[clientID]
	return c, ok
}

// view returns the client's controller, or the shared idle one. Callers must only read from it.
func (r *Registry) view(clientID string) *Controller {
	if c, ok := r.Lookup(clientID); ok {
		return c
	}
	return r.blank
}

// Len returns the number of live controllers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.controllers)
}

// Evict closes and removes controllers idle for longer than the TTL.
// It returns how many were removed.
func (r *Registry) Evict() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var stale []*Controller
	for id, c := range r.controllers {
		if c.LastSeen().Before(cutoff) {
			stale = append(stale, c)
			delete(r.controllers, id)
		}
	}
	r.mu.Unlock()

	for _, c := range stale {
		c.Close()
	}
	if len(stale) > 0 {
		r.logger.Debug("Evicted idle contact controllers", "count", len(stale))
	}
	return len(stale)
}

func (r *Registry) janitor() {
	defer close(r.done)

	interval := r.ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Evict()
		case <-r.stop:
			return
		}
	}
}

// Close stops the eviction loop and closes every controller.
func (r *Registry) Close() {
	r.closeOnce.Do(func() {
		close(r.stop)
		r.blank.Close()
	})
	<-r.done

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.controllers {
		c.Close()
		delete(r.controllers, id)
	}
}
