package handlers

import (
	"context"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/studiosite/internal/carousel"
	"github.com/nfrund/studiosite/internal/content"
	"github.com/nfrund/studiosite/internal/middleware"
	"github.com/nfrund/studiosite/internal/rendering"
	ws "github.com/nfrund/studiosite/internal/websocket"
	"github.com/nfrund/studiosite/web/src/templates/components"
)

// CarouselHandler upgrades carousel connections. Every connection gets its
// own cycler, so two tabs never drive each other.
type CarouselHandler struct {
	catalog  *content.Catalog
	manager  *ws.ClientManager
	renderer rendering.Renderer
	interval time.Duration
}

// NewCarouselHandler creates a new CarouselHandler.
func NewCarouselHandler(catalog *content.Catalog, manager *ws.ClientManager, renderer rendering.Renderer, interval time.Duration) *CarouselHandler {
	if interval <= 0 {
		interval = carousel.DefaultInterval
	}
	return &CarouselHandler{catalog: catalog, manager: manager, renderer: renderer, interval: interval}
}

// ServeWS runs one carousel session until the browser disconnects.
func (h *CarouselHandler) ServeWS(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("Failed to accept carousel websocket", "error", err)
		return nil
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	// The slide list is fixed for the life of the connection even if content reloads.
	games := h.catalog.Featured()
	client := ws.NewClient(uuid.NewString(), middleware.GetClientID(c), conn)
	h.manager.Add(client)

	render := func(ctx context.Context, f ws.Frame) ([]byte, error) {
		return h.renderer.RenderComponent(ctx, components.CarouselFrame(components.CarouselState{
			Games:   games,
			Index:   f.Index,
			Offset:  f.Offset,
			Enabled: f.Enabled,
			Paused:  f.Paused,
		}))
	}
	session := ws.NewCarouselSession(ctx, client, len(games), h.interval, render)

	logger.Debug("Carousel connected", "connection_id", client.ID, "slides", len(games))

	go client.WritePump(ctx)
	client.ReadPump(ctx, session.Handle)

	session.Close()
	h.manager.Remove(client.ID)
	conn.Close(websocket.StatusNormalClosure, "")
	logger.Debug("Carousel disconnected", "connection_id", client.ID)
	return nil
}
