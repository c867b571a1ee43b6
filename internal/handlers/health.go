package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/studiosite/internal/contact"
	ws "github.com/nfrund/studiosite/internal/websocket"
)

// HealthHandler reports liveness.
type HealthHandler struct {
	version string
	manager *ws.ClientManager
	service *contact.Service
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(version string, manager *ws.ClientManager, service *contact.Service) *HealthHandler {
	return &HealthHandler{version: version, manager: manager, service: service}
}

// HealthGet returns the health JSON.
func (h *HealthHandler) HealthGet(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:              "ok",
		Version:             h.version,
		CarouselConnections: h.manager.Count(),
		ContactControllers:  h.service.Clients(),
	})
}
