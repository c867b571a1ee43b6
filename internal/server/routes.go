package server

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/studiosite/internal/middleware"
	"github.com/nfrund/studiosite/web/src/templates/pages"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(middleware.DefaultContactRate)

	s.E.GET("/", s.siteHandler.HomeGet)
	s.E.GET("/about", s.siteHandler.AboutGet)

	s.E.GET("/games", s.siteHandler.GamesGet)
	s.E.GET("/games/filter", s.siteHandler.GamesFilterGet)
	s.E.GET("/games/:slug", s.siteHandler.GameGet)

	s.E.GET("/contact", s.contactHandler.ContactGet)
	s.E.POST("/contact", s.contactHandler.ContactPost, rateLimiter)
	s.E.GET("/contact/status", s.contactHandler.StatusGet)
	s.E.GET("/contact/button", s.contactHandler.ButtonGet)

	s.E.GET(pages.CarouselSocketPath, s.carouselHandler.ServeWS)

	s.E.GET("/health", s.healthHandler.HealthGet)

	// Unknown pages get the site's 404 page rather than a JSON error.
	s.E.RouteNotFound("/*", func(c echo.Context) error {
		return s.siteHandler.NotFound(c)
	})
}
