package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/studiosite/internal/app"
	"github.com/nfrund/studiosite/internal/config"
	"github.com/nfrund/studiosite/internal/logging"
	"github.com/nfrund/studiosite/internal/server"
)

// version can be set at build time.
// Example: go build -ldflags "-X 'main.version=1.0.0'"
var version = "dev"

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	deps, err := app.New(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	// Create a new server instance.
	s := server.New(deps, version)

	// Register all application routes.
	s.RegisterRoutes()

	// Start the server.
	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
