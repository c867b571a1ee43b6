// Package contact implements the contact form submission controller: the
// honeypot check, the post-success cooldown, the in-flight guard and the
// auto-clearing status message.
package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/studiosite/internal/cooldown"
	"github.com/nfrund/studiosite/internal/domain"
)

const (
	// DefaultCooldown is the wait, in seconds, imposed after a successful submission.
	DefaultCooldown = 30
	// DefaultStatusTTL is how long a status message stays before reverting to idle.
	DefaultStatusTTL = 5 * time.Second
)

// Controller owns the form state of one visitor.
type Controller struct {
	mu         sync.Mutex
	deliverer  domain.Deliverer
	variant    domain.Variant
	msgs       messages
	form       domain.FormState
	status     Status
	submitting bool
	cooldown   *cooldown.Timer
	cooldownN  int
	statusTTL  time.Duration
	clearTimer *time.Timer
	clearGen   uint64
	lastSeen   time.Time
	now        func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithVariant selects the form variant.
func WithVariant(v domain.Variant) Option {
	return func(c *Controller) {
		c.variant = v
	}
}

// WithCooldown sets the cooldown, in seconds, started after a success.
func WithCooldown(seconds int) Option {
	return func(c *Controller) {
		if seconds >= 0 {
			c.cooldownN = seconds
		}
	}
}

// WithStatusTTL sets the delay before a status message is cleared.
func WithStatusTTL(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.statusTTL = d
		}
	}
}

// WithTimer replaces the cooldown timer, e.g. with one ticking faster in tests.
func WithTimer(t *cooldown.Timer) Option {
	return func(c *Controller) {
		if t != nil {
			c.cooldown = t
		}
	}
}

// WithClock overrides the time source used for idle tracking.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates an idle controller with a zero cooldown.
func NewController(deliverer domain.Deliverer, opts ...Option) *Controller {
	c := &Controller{
		deliverer: deliverer,
		variant:   domain.VariantStrict,
		cooldownN: DefaultCooldown,
		statusTTL: DefaultStatusTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cooldown == nil {
		c.cooldown = cooldown.New()
	}
	c.msgs = strictMessages
	if c.variant == domain.VariantBasic {
		c.msgs = basicMessages
	}
	c.lastSeen = c.now()
	return c
}

// Snapshot is a consistent copy of the controller state for rendering.
type Snapshot struct {
	Variant    domain.Variant
	Form       domain.FormState
	Status     Status
	Cooldown   int
	Submitting bool
	CanSubmit  bool
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSeen = c.now()

	remaining := c.cooldown.Remaining()
	return Snapshot{
		Variant:    c.variant,
		Form:       c.form,
		Status:     c.status,
		Cooldown:   remaining,
		Submitting: c.submitting,
		CanSubmit:  c.canSubmitLocked(c.form, remaining),
	}
}

// CanSubmit reports whether the submit control should be enabled for form.
func (c *Controller) CanSubmit(form domain.FormState) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked(form, c.cooldown.Remaining())
}

func (c *Controller) canSubmitLocked(form domain.FormState, remaining int) bool {
	return !c.submitting && remaining == 0 && form.Validate(c.variant) == nil
}

// Cooldown returns the seconds left before another submission is accepted.
func (c *Controller) Cooldown() int {
	return c.cooldown.Remaining()
}

// Status returns the current status message.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Form returns the fields as last submitted, or empty after a success.
func (c *Controller) Form() domain.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Submit runs the submission lifecycle for form. The checks run in order:
// honeypot, cooldown, in-flight guard, field validation. Only when all pass
// is the deliverer called, exactly once. The returned Status is the one left
// on the controller; the error classifies rejections and delivery failures.
func (c *Controller) Submit(ctx context.Context, form domain.FormState) (Status, error) {
	c.mu.Lock()
	c.lastSeen = c.now()

	if form.Honeypot != "" {
		st := c.setStatusLocked(Failed, c.msgs.spam)
		c.mu.Unlock()
		return st, domain.ErrSpamBlocked
	}

	if remaining := c.cooldown.Remaining(); remaining > 0 {
		c.form = form
		st := c.setStatusLocked(Failed, fmt.Sprintf(c.msgs.waitFormat, remaining))
		c.mu.Unlock()
		return st, fmt.Errorf("%d seconds left: %w", remaining, domain.ErrRateLimited)
	}

	if c.submitting {
		st := c.status
		c.mu.Unlock()
		return st, domain.ErrInFlight
	}

	c.form = form
	if err := form.Validate(c.variant); err != nil {
		st := c.setStatusLocked(Failed, c.validationMessage(err))
		c.mu.Unlock()
		return st, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	c.submitting = true
	c.setStatusLocked(Submitting, "")
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		if c.status.Kind == Submitting {
			// Only reachable if the deliverer panicked.
			c.setStatusLocked(Failed, c.msgs.failed)
		}
		c.mu.Unlock()
	}()

	err := c.deliverer.Deliver(ctx, form.Fields())

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		st := c.setStatusLocked(Failed, c.failureMessage(err))
		if !errors.Is(err, domain.ErrDeliveryFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, err)
		}
		return st, err
	}

	c.form = domain.FormState{}
	c.cooldown.Start(c.cooldownN)
	return c.setStatusLocked(Succeeded, c.msgs.success), nil
}

func (c *Controller) validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "email" {
				return c.msgs.invalidEmail
			}
		}
	}
	return c.msgs.invalid
}

func (c *Controller) failureMessage(err error) string {
	var de *domain.DeliveryError
	if errors.As(err, &de) && de.Reason != "" {
		return fmt.Sprintf(c.msgs.failedReason, de.Reason)
	}
	return c.msgs.failed
}

// setStatusLocked replaces the status and re-arms the auto-clear timer.
// The Submitting status is never auto-cleared.
func (c *Controller) setStatusLocked(kind Kind, message string) Status {
	c.status = Status{Kind: kind, Message: message}

	c.clearGen++
	if c.clearTimer != nil {
		c.clearTimer.Stop()
		c.clearTimer = nil
	}
	if kind == Submitting || kind == Idle {
		return c.status
	}

	gen := c.clearGen
	c.clearTimer = time.AfterFunc(c.statusTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.clearGen != gen {
			return
		}
		c.status = Status{}
		c.clearTimer = nil
	})
	return c.status
}

// LastSeen returns when the visitor last interacted with the controller.
func (c *Controller) LastSeen() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

// Close cancels the cooldown and status timers.
func (c *Controller) Close() {
	c.cooldown.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearGen++
	if c.clearTimer != nil {
		c.clearTimer.Stop()
		c.clearTimer = nil
	}
}
