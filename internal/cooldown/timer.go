// Package cooldown implements the countdown that blocks repeat contact form
// submissions. The counter is decremented once per interval while positive;
// the ticker goroutine exits as soon as the counter reaches zero and is only
// restarted by Start.
package cooldown

import (
	"sync"
	"time"
)

// DefaultInterval is the tick period of a Timer.
const DefaultInterval = time.Second

// Timer counts a non-negative number of seconds down to zero.
type Timer struct {
	mu       sync.Mutex
	count    int
	interval time.Duration
	stop     chan struct{}
	onTick   func(remaining int)
}

// Option configures a Timer.
type Option func(*Timer)

// WithInterval overrides the tick period. Tests use this to run fast.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithOnTick registers a callback invoked after every scheduled tick with the
// remaining count. It runs on the ticker goroutine without the lock held.
func WithOnTick(fn func(remaining int)) Option {
	return func(t *Timer) {
		t.onTick = fn
	}
}

// New creates an idle Timer with a zero count.
func New(opts ...Option) *Timer {
	t := &Timer{interval: DefaultInterval}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start sets the count to n and (re)starts ticking. Negative values are
// treated as zero, which leaves the timer idle.
func (t *Timer) Start(n int) {
	if n < 0 {
		n = 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()
	t.count = n
	if n == 0 {
		return
	}

	stop := make(chan struct{})
	t.stop = stop
	go t.run(stop)
}

func (t *Timer) run(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.stop != stop {
				// Superseded by a newer Start or Stop.
				t.mu.Unlock()
				return
			}
			remaining := t.tickLocked()
			t.mu.Unlock()

			if t.onTick != nil {
				t.onTick(remaining)
			}
			if remaining == 0 {
				return
			}
		}
	}
}

// Tick decrements a positive count by one and returns the new count. Reaching
// zero cancels the running ticker.
func (t *Timer) Tick() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tickLocked()
}

func (t *Timer) tickLocked() int {
	if t.count > 0 {
		t.count--
	}
	if t.count == 0 {
		t.cancelLocked()
	}
	return t.count
}

// Remaining returns the current count.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Active reports whether the count is positive.
func (t *Timer) Active() bool {
	return t.Remaining() > 0
}

// Running reports whether a ticker goroutine is currently scheduled.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// Stop cancels the ticker without touching the count. It is safe to call
// more than once.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

func (t *Timer) cancelLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}
