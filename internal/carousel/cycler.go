// Package carousel keeps a wrapping index over a fixed number of slides and
// advances it on a timer unless the viewer is hovering or has a detail modal
// open.
package carousel

import (
	"fmt"
	"sync"
	"time"
)

// DefaultInterval is the auto-advance period.
const DefaultInterval = 5 * time.Second

// Clamp maps any integer onto [0, n). It returns 0 when n <= 0.
func Clamp(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Cycler owns the current slide index for one viewer.
type Cycler struct {
	mu       sync.Mutex
	n        int
	index    int
	interval time.Duration
	hover    bool
	modal    bool
	stopped  bool
	timer    *time.Timer
	gen      uint64
	onChange func(index int)
}

// Option configures a Cycler.
type Option func(*Cycler)

// WithInterval overrides the auto-advance period.
func WithInterval(d time.Duration) Option {
	return func(c *Cycler) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithOnChange registers a callback that receives the new index after every
// change. It is called without the lock held.
func WithOnChange(fn func(index int)) Option {
	return func(c *Cycler) {
		c.onChange = fn
	}
}

// WithStart sets the initial index, clamped into range.
func WithStart(i int) Option {
	return func(c *Cycler) {
		c.index = Clamp(i, c.n)
	}
}

// New creates a Cycler over n slides and schedules auto-advance.
func New(n int, opts ...Option) *Cycler {
	if n < 0 {
		n = 0
	}
	c := &Cycler{n: n, interval: DefaultInterval}
	for _, opt := range opts {
		opt(c)
	}

	c.mu.Lock()
	c.rescheduleLocked()
	c.mu.Unlock()
	return c
}

// Len returns the number of slides.
func (c *Cycler) Len() int { return c.n }

// Enabled reports whether navigation and auto-advance are available.
// A carousel with fewer than two slides never moves.
func (c *Cycler) Enabled() bool { return c.n > 1 }

// Index returns the current slide index.
func (c *Cycler) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Offset returns the horizontal translation, in percent, that brings the
// current slide into view.
func (c *Cycler) Offset() int {
	return c.State().Offset
}

func offsetOf(index int) int {
	return -index * 100
}

// State is a consistent view of the cycler for rendering.
type State struct {
	Index   int
	Offset  int
	Enabled bool
	Paused  bool
}

// State returns the index, offset and pause flag read under one lock.
func (c *Cycler) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Index:   c.index,
		Offset:  offsetOf(c.index),
		Enabled: c.n > 1,
		Paused:  c.hover || c.modal,
	}
}

// Paused reports whether auto-advance is suspended by hover or an open modal.
func (c *Cycler) Paused() bool {
	return c.State().Paused
}

// Next moves one slide forward, wrapping at the end.
func (c *Cycler) Next() int {
	return c.move(func(i int) int { return i + 1 })
}

// Prev moves one slide back, wrapping at the start.
func (c *Cycler) Prev() int {
	return c.move(func(i int) int { return i - 1 })
}

// GoTo jumps to slide i. Unlike Next and Prev it does not wrap: an index
// outside [0, n) is an error and leaves the cycler untouched.
func (c *Cycler) GoTo(i int) (int, error) {
	if i < 0 || i >= c.n {
		return c.Index(), fmt.Errorf("carousel index %d out of range [0, %d)", i, c.n)
	}
	return c.move(func(int) int { return i }), nil
}

func (c *Cycler) move(step func(int) int) int {
	c.mu.Lock()
	if c.stopped || (!c.Enabled() && step(c.index) != c.index) {
		idx := c.index
		c.mu.Unlock()
		return idx
	}
	changed := c.setIndexLocked(Clamp(step(c.index), c.n))
	idx := c.index
	c.mu.Unlock()

	if changed {
		c.notify(idx)
	}
	return idx
}

// setIndexLocked stores the index and rebuilds the auto-advance timer.
func (c *Cycler) setIndexLocked(i int) bool {
	changed := c.index != i
	c.index = i
	c.rescheduleLocked()
	return changed
}

// SetHover records whether the pointer is over the carousel.
func (c *Cycler) SetHover(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hover == on {
		return
	}
	c.hover = on
	c.rescheduleLocked()
}

// SetModal records whether a detail overlay is open.
func (c *Cycler) SetModal(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.modal == open {
		return
	}
	c.modal = open
	c.rescheduleLocked()
}

// Scheduled reports whether an auto-advance timer is pending.
func (c *Cycler) Scheduled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// Stop tears down the auto-advance timer. The cycler ignores further
// navigation afterwards.
func (c *Cycler) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	c.cancelLocked()
}

func (c *Cycler) cancelLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Cycler) rescheduleLocked() {
	c.cancelLocked()
	if c.stopped || !c.Enabled() || c.hover || c.modal {
		return
	}
	gen := c.gen
	c.timer = time.AfterFunc(c.interval, func() { c.advance(gen) })
}

func (c *Cycler) advance(gen uint64) {
	c.mu.Lock()
	if c.gen != gen || c.stopped {
		// A newer state change already replaced this timer.
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.setIndexLocked(Clamp(c.index+1, c.n))
	idx := c.index
	c.mu.Unlock()

	c.notify(idx)
}

func (c *Cycler) notify(idx int) {
	if c.onChange != nil {
		c.onChange(idx)
	}
}
