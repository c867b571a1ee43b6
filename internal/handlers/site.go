package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/studiosite/internal/content"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/nfrund/studiosite/internal/middleware"
	"github.com/nfrund/studiosite/web/src/templates/components"
	"github.com/nfrund/studiosite/web/src/templates/pages"
)

// SiteHandler serves the content pages and the game catalogue.
type SiteHandler struct {
	catalog *content.Catalog
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(catalog *content.Catalog) *SiteHandler {
	return &SiteHandler{catalog: catalog}
}

// HomeGet renders the landing page.
func (h *SiteHandler) HomeGet(c echo.Context) error {
	doc := h.catalog.Document()
	return c.Render(http.StatusOK, "", pages.Home(doc.Studio, doc, initialCarousel(h.catalog.Featured())))
}

// AboutGet renders the about page.
func (h *SiteHandler) AboutGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", pages.About(h.catalog.Document()))
}

// GamesGet renders the catalogue, filtered by the query when the dropdowns
// were submitted without script.
func (h *SiteHandler) GamesGet(c echo.Context) error {
	var req GameFilterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return c.Render(http.StatusOK, "", pages.Games(h.gamesProps(req.Filter())))
}

// GamesFilterGet returns only the grid for the dropdown swap.
func (h *SiteHandler) GamesFilterGet(c echo.Context) error {
	var req GameFilterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return c.Render(http.StatusOK, "", components.GameGrid(h.catalog.Games(req.Filter())))
}

// GameGet returns the detail modal. Without htmx the catalogue page is
// rendered with the modal already open.
func (h *SiteHandler) GameGet(c echo.Context) error {
	var req GameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	game, err := h.catalog.Game(req.Slug)
	if errors.Is(err, domain.ErrNotFound) {
		middleware.FromContext(c.Request().Context()).Debug("Unknown game requested", "slug", req.Slug)
		if isHTMX(c) {
			return c.String(http.StatusNotFound, "Game not found")
		}
		return c.Render(http.StatusNotFound, "", pages.NotFound(h.catalog.Studio()))
	}
	if err != nil {
		return err
	}

	if isHTMX(c) {
		return c.Render(http.StatusOK, "", components.GameModal(game))
	}
	props := h.gamesProps(domain.GameFilter{})
	props.Modal = components.GameModal(game)
	return c.Render(http.StatusOK, "", pages.Games(props))
}

// NotFound renders the 404 page.
func (h *SiteHandler) NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "", pages.NotFound(h.catalog.Studio()))
}

func (h *SiteHandler) gamesProps(filter domain.GameFilter) pages.GamesProps {
	return pages.GamesProps{
		Studio:    h.catalog.Studio(),
		Genres:    h.catalog.Genres(),
		Platforms: h.catalog.Platforms(),
		Filter:    filter,
		Games:     h.catalog.Games(filter),
		Carousel:  initialCarousel(h.catalog.Featured()),
	}
}

func initialCarousel(games []domain.Game) components.CarouselState {
	return components.CarouselState{Games: games, Enabled: len(games) > 1}
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request").SetInternal(err)
	}
	return nil
}
