package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/nfrund/studiosite/internal/pubsub"
)

// Service routes submissions to the caller's controller and announces the
// outcome on the event bus.
type Service struct {
	registry  *Registry
	publisher pubsub.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a Service. A nil publisher disables event publishing.
func NewService(registry *Registry, publisher pubsub.Publisher) *Service {
	return &Service{
		registry:  registry,
		publisher: publisher,
		logger:    slog.Default().With("service", "contact"),
		now:       time.Now,
	}
}

// Controller returns the controller scoped to clientID, creating it if needed.
func (s *Service) Controller(clientID string) *Controller {
	return s.registry.Get(clientID)
}

// Snapshot returns the client's form state. Clients that never submitted get
// the idle state and are not given a controller.
func (s *Service) Snapshot(clientID string) Snapshot {
	return s.registry.view(clientID).Snapshot()
}

// Status returns the client's status line without creating a controller.
func (s *Service) Status(clientID string) Status {
	return s.registry.view(clientID).Status()
}

// CanSubmit reports whether the client's submit control should be enabled for form.
func (s *Service) CanSubmit(clientID string, form domain.FormState) bool {
	return s.registry.view(clientID).CanSubmit(form)
}

// Clients reports how many visitors currently hold a controller.
func (s *Service) Clients() int {
	return s.registry.Len()
}

// Submit runs form through the client's controller.
func (s *Service) Submit(ctx context.Context, clientID string, form domain.FormState) (Status, error) {
	c := s.registry.Get(clientID)
	st, err := c.Submit(ctx, form)

	logger := s.logger.With("client_id", clientID)
	if err == nil {
		sub := domain.Submission{
			ID:          uuid.NewString(),
			ClientID:    clientID,
			Fields:      form.Fields(),
			SubmittedAt: s.now().UTC(),
		}
		logger.Info("Contact message delivered", "submission_id", sub.ID)
		s.publish(ctx, logger, func() error {
			return pubsub.Publish(ctx, s.publisher, SubmittedEvent, clientID, sub)
		})
		return st, nil
	}

	reason := rejectionReason(err)
	logger.Warn("Contact submission refused", "reason", reason, "error", err)
	s.publish(ctx, logger, func() error {
		return pubsub.Publish(ctx, s.publisher, RejectedEvent, clientID, Rejection{
			ClientID: clientID,
			Reason:   reason,
			Message:  st.Message,
			At:       s.now().UTC(),
		})
	})
	return st, err
}

func (s *Service) publish(ctx context.Context, logger *slog.Logger, fn func() error) {
	if s.publisher == nil {
		return
	}
	if err := fn(); err != nil {
		logger.ErrorContext(ctx, "Failed to publish contact event", "error", err)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrSpamBlocked):
		return ReasonSpam
	case errors.Is(err, domain.ErrRateLimited):
		return ReasonRateLimited
	case errors.Is(err, domain.ErrInFlight):
		return ReasonInFlight
	case errors.Is(err, domain.ErrValidation):
		return ReasonInvalid
	default:
		return ReasonDeliveryFailed
	}
}
