package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/studiosite/internal/app"
	"github.com/nfrund/studiosite/internal/handlers"
	appmw "github.com/nfrund/studiosite/internal/middleware"
	"github.com/nfrund/studiosite/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Deps    *app.Dependencies
	Version string

	siteHandler     *handlers.SiteHandler
	contactHandler  *handlers.ContactHandler
	carouselHandler *handlers.CarouselHandler
	healthHandler   *handlers.HealthHandler
}

// New creates a new Server instance around already wired services.
func New(deps *app.Dependencies, version string) *Server {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = deps.Renderer
	setupErrorHandling(e)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(appmw.Logger)

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(appmw.ClientID)

	// Serve static files from STATIC_DIR when set (live editing), else from the embedded copy.
	if dir := cfg.GetStaticDir(); dir != "" {
		e.Static("/static", dir)
	} else {
		e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	}

	return &Server{
		E:               e,
		Deps:            deps,
		Version:         version,
		siteHandler:     handlers.NewSiteHandler(deps.Catalog),
		contactHandler:  handlers.NewContactHandler(deps.Contact, deps.Catalog, cfg.GetContactStatusTTL()),
		carouselHandler: handlers.NewCarouselHandler(deps.Catalog, deps.Clients, deps.Renderer, cfg.GetCarouselInterval()),
		healthHandler:   handlers.NewHealthHandler(version, deps.Clients, deps.Contact),
	}
}

// setupErrorHandling installs an error handler that logs unhandled errors
// with a stack trace. HTTP errors raised on purpose are passed through.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := appmw.FromContext(c.Request().Context())
		he, ok := err.(*echo.HTTPError)
		if !ok {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
			he = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		} else if he.Code >= http.StatusInternalServerError {
			logger.Error("Server error", "error", he.Error(), "internal", fmt.Sprint(he.Internal))
		} else {
			logger.Debug("Request rejected", "status", he.Code, "error", he.Error())
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(he.Code)
		} else {
			sendErr = c.JSON(he.Code, handlers.ErrorResponse{
				Code:    http.StatusText(he.Code),
				Message: fmt.Sprint(he.Message),
			})
		}
		if sendErr != nil {
			slog.Error("Failed to send error response", "error", sendErr)
		}
	}
}
