package websocket

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nfrund/studiosite/internal/carousel"
)

// Frame describes what the viewer should see after a change.
type Frame = carousel.State

// FrameRenderer turns a frame into the HTML fragment pushed to the browser.
type FrameRenderer func(ctx context.Context, f Frame) ([]byte, error)

// CarouselSession binds one connection to its own Cycler. It exists for the
// lifetime of the socket; Close stops auto-advance.
type CarouselSession struct {
	ctx       context.Context
	client    *Client
	render    FrameRenderer
	whitelist *Whitelist
	logger    *slog.Logger

	mu     sync.Mutex
	cycler *carousel.Cycler
	closed bool
}

// NewCarouselSession creates the session and starts auto-advance over n slides.
func NewCarouselSession(ctx context.Context, client *Client, n int, interval time.Duration, render FrameRenderer) *CarouselSession {
	s := &CarouselSession{
		ctx:       ctx,
		client:    client,
		render:    render,
		whitelist: CarouselWhitelist(),
		logger:    slog.Default().With("service", "carousel", "clientID", client.ID),
	}
	// The first auto-advance can fire before New returns to us.
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycler = carousel.New(n, carousel.WithInterval(interval), carousel.WithOnChange(func(int) { s.push() }))
	return s
}

// Cycler exposes the session's cycler.
func (s *CarouselSession) Cycler() *carousel.Cycler {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycler
}

// Handle applies one inbound frame. Invalid or unknown actions are logged and dropped.
func (s *CarouselSession) Handle(data []byte) {
	if err := s.apply(data); err != nil {
		s.logger.Debug("Ignoring carousel message", "error", err)
	}
}

func (s *CarouselSession) apply(data []byte) error {
	a, err := ParseAction(data)
	if err != nil {
		return err
	}
	if !s.whitelist.IsAllowed(a.Action) {
		return fmt.Errorf("action %q not allowed", a.Action)
	}

	cycler := s.Cycler()
	switch a.Action {
	case ActionNext:
		cycler.Next()
	case ActionPrev:
		cycler.Prev()
	case ActionGoTo:
		if _, err := cycler.GoTo(a.IndexValue()); err != nil {
			return err
		}
	case ActionHover:
		// Pause changes do not move the index, so the cycler does not notify.
		cycler.SetHover(a.OnValue())
		s.push()
	case ActionModal:
		cycler.SetModal(a.OnValue())
		s.push()
	}
	return nil
}

// push renders the cycler's current state and queues it on the connection.
func (s *CarouselSession) push() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	cycler := s.cycler
	s.mu.Unlock()

	f := cycler.State()

	html, err := s.render(s.ctx, f)
	if err != nil {
		s.logger.Error("Failed to render carousel frame", "error", err)
		return
	}
	s.client.SendMessage(html)
}

// Close stops the cycler. Further changes are not pushed.
func (s *CarouselSession) Close() {
	s.mu.Lock()
	s.closed = true
	cycler := s.cycler
	s.mu.Unlock()
	cycler.Stop()
}
