package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/studiosite/internal/contact"
	"github.com/nfrund/studiosite/internal/content"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/nfrund/studiosite/internal/handlers"
	"github.com/nfrund/studiosite/internal/middleware"
	"github.com/nfrund/studiosite/internal/rendering"
	"github.com/nfrund/studiosite/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// mockDeliverer records deliveries and fails with err when set.
type mockDeliverer struct {
	mu    sync.Mutex
	calls []domain.MessageFields
	err   error
}

func (m *mockDeliverer) Deliver(ctx context.Context, fields domain.MessageFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, fields)
	return m.err
}

func (m *mockDeliverer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.Use(middleware.ClientID)
	return e
}

func newContactService(t *testing.T, d domain.Deliverer, opts ...contact.Option) *contact.Service {
	t.Helper()
	registry := contact.NewRegistry(func() *contact.Controller {
		return contact.NewController(d, opts...)
	}, time.Minute)
	t.Cleanup(registry.Close)
	return contact.NewService(registry, nil)
}

// do runs one request and returns the recorder; cookies from prev are replayed.
func do(e *echo.Echo, method, target string, body url.Values, htmx bool, prev *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	if prev != nil {
		for _, c := range prev.Result().Cookies() {
			req.AddCookie(c)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"full_name": {"Ada Lovelace"},
		"email":     {"ada@example.com"},
		"subject":   {"Hello"},
		"content":   {"Hi there"},
	}
}

func TestSiteHandler_GamesFilter(t *testing.T) {
	e := newEcho()
	h := handlers.NewSiteHandler(content.NewCatalog(content.Default()))
	e.GET("/games", h.GamesGet)
	e.GET("/games/filter", h.GamesFilterGet)

	t.Run("fragment only contains matching games", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/games/filter?genre=Survival", nil, true, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Tidebound")
		assert.NotContains(t, rec.Body.String(), "Ashen Crown")
		assert.NotContains(t, rec.Body.String(), "<html")
	})

	t.Run("full page keeps the selected filter", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/games?platform=Mobile", nil, false, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<html")
		assert.Contains(t, rec.Body.String(), `href="/games/neon-relay"`)
		assert.NotContains(t, rec.Body.String(), `href="/games/hollow-pines"`)
	})

	t.Run("oversized filter is rejected", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/games/filter?genre="+strings.Repeat("x", 100), nil, true, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSiteHandler_GameGet(t *testing.T) {
	e := newEcho()
	h := handlers.NewSiteHandler(content.NewCatalog(content.Default()))
	e.GET("/games/:slug", h.GameGet)

	rec := do(e, http.MethodGet, "/games/tidebound", nil, true, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tidebound")
	assert.NotContains(t, rec.Body.String(), "<html")

	rec = do(e, http.MethodGet, "/games/tidebound", nil, false, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<html")
	assert.Contains(t, rec.Body.String(), "modal-backdrop")

	rec = do(e, http.MethodGet, "/games/missing", nil, true, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodGet, "/games/missing", nil, false, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "does not exist")
}

func TestContactHandler_Post(t *testing.T) {
	t.Run("success clears the form and starts the cooldown", func(t *testing.T) {
		d := &mockDeliverer{}
		e := newEcho()
		h := handlers.NewContactHandler(newContactService(t, d), content.NewCatalog(content.Default()), 0)
		e.GET("/contact", h.ContactGet)
		e.POST("/contact", h.ContactPost)
		e.GET("/contact/button", h.ButtonGet)

		first := do(e, http.MethodGet, "/contact", nil, false, nil)
		require.Equal(t, http.StatusOK, first.Code)

		rec := do(e, http.MethodPost, "/contact", validForm(), true, first)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Message sent successfully!")
		assert.NotContains(t, rec.Body.String(), "Ada Lovelace")
		assert.Equal(t, 1, d.count())

		rec = do(e, http.MethodPost, "/contact", validForm(), true, first)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please wait 30 seconds")
		assert.Equal(t, 1, d.count(), "cooldown must not reach the deliverer")

		rec = do(e, http.MethodGet, "/contact/button?"+validForm().Encode(), nil, true, first)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Wait 30s")
		assert.Contains(t, rec.Body.String(), "load delay:1s")
	})

	t.Run("delivery failure keeps the fields and shows the reason", func(t *testing.T) {
		d := &mockDeliverer{err: &domain.DeliveryError{StatusCode: 429, Reason: "quota exceeded"}}
		e := newEcho()
		h := handlers.NewContactHandler(newContactService(t, d), content.NewCatalog(content.Default()), 0)
		e.POST("/contact", h.ContactPost)

		rec := do(e, http.MethodPost, "/contact", validForm(), true, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "quota exceeded")
		assert.Contains(t, rec.Body.String(), `value="Ada Lovelace"`)
	})

	t.Run("honeypot never reaches the deliverer", func(t *testing.T) {
		d := &mockDeliverer{}
		e := newEcho()
		h := handlers.NewContactHandler(newContactService(t, d), content.NewCatalog(content.Default()), 0)
		e.POST("/contact", h.ContactPost)

		form := validForm()
		form.Set("website", "bot")
		rec := do(e, http.MethodPost, "/contact", form, false, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Zero(t, d.count())
	})

	t.Run("button stays disabled for an incomplete form", func(t *testing.T) {
		e := newEcho()
		h := handlers.NewContactHandler(newContactService(t, &mockDeliverer{}), content.NewCatalog(content.Default()), 0)
		e.GET("/contact/button", h.ButtonGet)

		rec := do(e, http.MethodGet, "/contact/button?full_name=Ada", nil, true, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), " disabled ")

		rec = do(e, http.MethodGet, "/contact/button?"+validForm().Encode(), nil, true, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), " disabled ")
	})
}

func TestContactHandler_ReadsDoNotCreateControllers(t *testing.T) {
	e := newEcho()
	svc := newContactService(t, &mockDeliverer{})
	h := handlers.NewContactHandler(svc, content.NewCatalog(content.Default()), 0)
	e.GET("/contact", h.ContactGet)
	e.POST("/contact", h.ContactPost)
	e.GET("/contact/status", h.StatusGet)
	e.GET("/contact/button", h.ButtonGet)

	for i := 0; i < 100; i++ {
		for _, target := range []string{"/contact", "/contact/status", "/contact/button?" + validForm().Encode()} {
			rec := do(e, http.MethodGet, target, nil, true, nil)
			require.Equal(t, http.StatusOK, rec.Code, target)
		}
	}
	assert.Zero(t, svc.Clients(), "cookieless reads must not allocate per-client state")

	page := do(e, http.MethodGet, "/contact", nil, false, nil)
	assert.Contains(t, page.Body.String(), `name="subject"`)
	assert.Contains(t, page.Body.String(), "status-idle")

	rec := do(e, http.MethodPost, "/contact", validForm(), true, page)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.Clients())

	rec = do(e, http.MethodGet, "/contact/status", nil, true, page)
	assert.Contains(t, rec.Body.String(), "Message sent successfully!")
	assert.Equal(t, 1, svc.Clients())
}

func TestContactHandler_PostWithoutSubject(t *testing.T) {
	d := &mockDeliverer{}
	e := newEcho()
	h := handlers.NewContactHandler(newContactService(t, d), content.NewCatalog(content.Default()), 0)
	e.POST("/contact", h.ContactPost)

	form := validForm()
	form.Del("subject")
	rec := do(e, http.MethodPost, "/contact", form, true, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message sent successfully!")
	assert.Equal(t, 1, d.count())
}

func TestContactHandler_StatusClears(t *testing.T) {
	e := newEcho()
	svc := newContactService(t, &mockDeliverer{}, contact.WithStatusTTL(20*time.Millisecond))
	h := handlers.NewContactHandler(svc, content.NewCatalog(content.Default()), 20*time.Millisecond)
	e.POST("/contact", h.ContactPost)
	e.GET("/contact/status", h.StatusGet)

	rec := do(e, http.MethodPost, "/contact", validForm(), true, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "load delay:170ms")

	assert.Eventually(t, func() bool {
		status := do(e, http.MethodGet, "/contact/status", nil, true, rec)
		return strings.Contains(status.Body.String(), "status-idle") &&
			!strings.Contains(status.Body.String(), "Message sent")
	}, time.Second, 10*time.Millisecond)
}

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	svc := newContactService(t, &mockDeliverer{})
	svc.Controller("visitor-1")
	h := handlers.NewHealthHandler("1.2.3", websocket.NewClientManager(), svc)
	e.GET("/health", h.HealthGet)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, 1, resp.ContactControllers)
}
