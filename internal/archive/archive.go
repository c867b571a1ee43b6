// Package archive keeps a copy of every delivered contact message.
package archive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/studiosite/internal/config"
	"github.com/nfrund/studiosite/internal/contact"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/nfrund/studiosite/internal/pubsub"
)

// New opens the archive backend selected by configuration.
func New(ctx context.Context, cfg config.Provider) (domain.SubmissionArchive, error) {
	switch cfg.GetArchiveBackend() {
	case "", "memory":
		return NewMemory(), nil
	case "sqlite":
		return OpenSQLite(cfg.GetArchiveSQLitePath())
	case "surreal":
		return OpenSurreal(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown archive backend %q", cfg.GetArchiveBackend())
	}
}

// Subscribe stores every contact.submitted event in a until ctx is canceled.
func Subscribe(ctx context.Context, sub pubsub.Subscriber, a domain.SubmissionArchive) error {
	logger := slog.Default().With("service", "archive")
	return pubsub.Subscribe(ctx, sub, contact.SubmittedEvent, func(ctx context.Context, clientID string, s domain.Submission) error {
		if err := a.Save(ctx, s); err != nil {
			return fmt.Errorf("archive submission %s: %w", s.ID, err)
		}
		logger.Debug("Archived contact submission", "submission_id", s.ID, "client_id", clientID,
			"request_id", pubsub.RequestIDFromContext(ctx))
		return nil
	})
}
