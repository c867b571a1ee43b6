package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until an interrupt or terminate signal arrives,
// then drains requests and closes the services.
func (s *Server) Start() error {
	addr := s.Deps.Config.GetAppAddr()
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr, "version", s.Version)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.Deps.Close()
			return err
		}
	case <-waitForShutdown():
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones and closes the services.
func (s *Server) Shutdown() error {
	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Carousel sockets are hijacked and not tracked by http.Server, so close them first.
	s.Deps.Clients.CloseAll()
	err := s.E.Shutdown(ctx)
	s.Deps.Close()
	return err
}
