package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/studiosite/internal/pubsub"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger is a middleware that injects a request-scoped logger into the context
// and writes one access line per request. The logger is pre-configured with
// the request ID from the RequestID middleware, so it must run after it.
// Static assets and health checks are logged at debug level.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)
		requestLogger := slog.Default().With("request_id", reqID)

		// Create a new context with the logger and set it on the request.
		// Events published while handling the request carry its ID.
		newCtx := context.WithValue(pubsub.WithRequestID(req.Context(), reqID), loggerKey, requestLogger)
		c.SetRequest(req.WithContext(newCtx))

		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			c.Error(err)
		}

		level := slog.LevelInfo
		if strings.HasPrefix(req.URL.Path, "/static/") || req.URL.Path == "/health" {
			level = slog.LevelDebug
		}
		requestLogger.Log(newCtx, level, "Request handled",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"latency", time.Since(start).String(),
			"htmx", req.Header.Get("HX-Request") == "true",
		)
		return nil
	}
}

// FromContext returns the request-scoped logger, or the default logger
// outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
