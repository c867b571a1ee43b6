// Package app assembles the site's long-lived services from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/studiosite/internal/archive"
	"github.com/nfrund/studiosite/internal/config"
	"github.com/nfrund/studiosite/internal/contact"
	"github.com/nfrund/studiosite/internal/content"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/nfrund/studiosite/internal/email"
	"github.com/nfrund/studiosite/internal/pubsub"
	"github.com/nfrund/studiosite/internal/rendering"
	"github.com/nfrund/studiosite/internal/websocket"
	"github.com/spf13/afero"
)

// Dependencies holds the core services shared by the HTTP handlers.
// It is built once at startup and torn down with Close.
type Dependencies struct {
	Config   config.Provider
	Catalog  *content.Catalog
	Renderer *rendering.UniversalRenderer
	Bridge   *pubsub.WatermillBridge
	Registry *contact.Registry
	Contact  *contact.Service
	Clients  *websocket.ClientManager
	Archive  domain.SubmissionArchive

	cancel  context.CancelFunc
	cleanup []func()
}

// New wires every service. Background workers (archive subscriber, content
// watcher) run until Close is called.
func New(ctx context.Context, cfg config.Provider) (*Dependencies, error) {
	ctx, cancel := context.WithCancel(ctx)
	d := &Dependencies{Config: cfg, cancel: cancel}

	fs := afero.NewOsFs()
	catalog, err := loadCatalog(fs, cfg.GetContentDir())
	if err != nil {
		d.Close()
		return nil, err
	}
	d.Catalog = catalog
	if cfg.GetContentWatch() && cfg.GetContentDir() != "" {
		if err := content.Watch(ctx, catalog, fs, cfg.GetContentDir()); err != nil {
			slog.Warn("Content hot reload disabled", "error", err)
		}
	}

	deliverer, err := email.NewDeliverer(cfg)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to initialize email delivery: %w", err)
	}

	tracer, shutdownTracing, err := pubsub.SetupOTel(ctx, pubsub.TracingConfig{
		Enabled:     cfg.GetTracingEnabled(),
		ServiceName: cfg.GetTracingServiceName(),
		ZipkinURL:   cfg.GetTracingZipkinURL(),
	})
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}
	d.cleanup = append(d.cleanup, shutdownTracing)
	if cfg.GetTracingEnabled() {
		d.Bridge = pubsub.NewWatermillBridgeWithTracer(tracer)
	} else {
		d.Bridge = pubsub.NewWatermillBridge()
	}

	d.Registry = contact.NewRegistry(ControllerFactory(cfg, deliverer), cfg.GetContactIdleTTL())
	d.Contact = contact.NewService(d.Registry, d.Bridge)
	d.Clients = websocket.NewClientManager()
	d.Renderer = rendering.NewUniversalRenderer()

	d.Archive, err = archive.New(ctx, cfg)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to open submission archive: %w", err)
	}
	if err := archive.Subscribe(ctx, d.Bridge, d.Archive); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to subscribe archive: %w", err)
	}

	slog.Info("Services ready",
		"email_provider", cfg.GetEmailProvider(),
		"archive_backend", cfg.GetArchiveBackend(),
		"contact_variant", cfg.GetContactVariant(),
		"games", len(catalog.AllGames()),
	)
	return d, nil
}

// Close stops background workers and releases resources in reverse order of creation.
func (d *Dependencies) Close() {
	d.cancel()
	if d.Clients != nil {
		d.Clients.CloseAll()
	}
	if d.Registry != nil {
		d.Registry.Close()
	}
	if d.Bridge != nil {
		if err := d.Bridge.Close(); err != nil {
			slog.Error("Failed to close event bus", "error", err)
		}
	}
	if d.Archive != nil {
		if err := d.Archive.Close(); err != nil {
			slog.Error("Failed to close submission archive", "error", err)
		}
	}
	for i := len(d.cleanup) - 1; i >= 0; i-- {
		d.cleanup[i]()
	}
	d.cleanup = nil
}

func loadCatalog(fs afero.Fs, dir string) (*content.Catalog, error) {
	if dir == "" {
		return content.NewCatalog(content.Default()), nil
	}
	doc, err := content.Load(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return content.NewCatalog(doc), nil
}
