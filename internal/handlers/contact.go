package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/studiosite/internal/contact"
	"github.com/nfrund/studiosite/internal/content"
	"github.com/nfrund/studiosite/internal/middleware"
	"github.com/nfrund/studiosite/internal/view"
	"github.com/nfrund/studiosite/web/src/templates/components"
	"github.com/nfrund/studiosite/web/src/templates/pages"
)

// statusPollSlack gives the server-side clear timer time to fire before the browser asks.
const statusPollSlack = 150 * time.Millisecond

// ContactHandler serves the contact form.
type ContactHandler struct {
	service   *contact.Service
	catalog   *content.Catalog
	statusTTL time.Duration
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *contact.Service, catalog *content.Catalog, statusTTL time.Duration) *ContactHandler {
	if statusTTL <= 0 {
		statusTTL = contact.DefaultStatusTTL
	}
	return &ContactHandler{service: service, catalog: catalog, statusTTL: statusTTL}
}

// ContactGet renders the contact page.
func (h *ContactHandler) ContactGet(c echo.Context) error {
	props := h.props(h.service.Snapshot(middleware.GetClientID(c)))
	props.Flash = view.GetFlashData(c)
	return c.Render(http.StatusOK, "", pages.Contact(h.catalog.Studio(), props))
}

// ContactPost runs a submission. Rejections and delivery failures are part of
// the normal flow: they show up in the status line, never as server errors.
func (h *ContactHandler) ContactPost(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form").SetInternal(err)
	}

	clientID := middleware.GetClientID(c)
	st, err := h.service.Submit(c.Request().Context(), clientID, req.FormState())

	if !isHTMX(c) {
		if err != nil {
			view.SetFlashError(c, st.Message)
		} else {
			view.SetFlashSuccess(c, st.Message)
		}
		return c.Redirect(http.StatusSeeOther, "/contact")
	}

	snap := h.service.Snapshot(clientID)
	return c.Render(http.StatusOK, "", components.ContactPanel(h.props(snap)))
}

// StatusGet returns the current status line. The browser asks after the
// display time has passed, by which point it has usually cleared.
func (h *ContactHandler) StatusGet(c echo.Context) error {
	status := h.service.Status(middleware.GetClientID(c))
	return c.Render(http.StatusOK, "", components.ContactStatus(status, h.pollMs()))
}

// ButtonGet returns the submit button for the form values in the query.
func (h *ContactHandler) ButtonGet(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form").SetInternal(err)
	}

	clientID := middleware.GetClientID(c)
	snap := h.service.Snapshot(clientID)
	state := components.ButtonState{
		Cooldown:   snap.Cooldown,
		Submitting: snap.Submitting,
		Enabled:    h.service.CanSubmit(clientID, req.FormState()),
	}
	return c.Render(http.StatusOK, "", components.ContactButton(state, false))
}

func (h *ContactHandler) props(snap contact.Snapshot) components.ContactProps {
	return components.ContactProps{Snapshot: snap, StatusPoll: h.pollMs()}
}

func (h *ContactHandler) pollMs() int64 {
	return (h.statusTTL + statusPollSlack).Milliseconds()
}
