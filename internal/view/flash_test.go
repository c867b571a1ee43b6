package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/studiosite/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

var testStore = sessions.NewCookieStore([]byte(testSessionSecret))

// runWithSession executes fn inside the session middleware, replaying any cookies given.
func runWithSession(t *testing.T, cookies []*http.Cookie, fn func(c echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()

	handler := func(c echo.Context) error { fn(c); return nil }
	require.NoError(t, session.Middleware(testStore)(handler)(e.NewContext(req, rec)))
	return rec
}

// lastCookies keeps the most recent Set-Cookie per name.
func lastCookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	for _, ck := range rec.Result().Cookies() {
		byName[ck.Name] = ck
	}
	out := make([]*http.Cookie, 0, len(byName))
	for _, ck := range byName {
		out = append(out, ck)
	}
	return out
}

func TestFlashData_Empty(t *testing.T) {
	assert.True(t, view.FlashData{}.Empty())
	assert.False(t, view.FlashData{Success: []string{"sent"}}.Empty())
	assert.False(t, view.FlashData{Error: []string{"failed"}}.Empty())
}

func TestFlashMessages(t *testing.T) {
	t.Run("keeps every message in order by kind", func(t *testing.T) {
		runWithSession(t, nil, func(c echo.Context) {
			view.SetFlashSuccess(c, "Message sent")
			view.SetFlashError(c, "Archive unavailable")
			view.SetFlashSuccess(c, "Copy mailed to you")

			flashes := view.GetFlashData(c)
			assert.Equal(t, []string{"Message sent", "Copy mailed to you"}, flashes.Success)
			assert.Equal(t, []string{"Archive unavailable"}, flashes.Error)
			assert.True(t, view.GetFlashData(c).Empty(), "flashes are cleared once read")
		})
	})

	t.Run("survives a redirect and is shown once", func(t *testing.T) {
		rec := runWithSession(t, nil, func(c echo.Context) {
			view.SetFlashError(c, "Please wait before sending again")
		})
		cookies := lastCookies(rec)
		require.NotEmpty(t, cookies)

		rec = runWithSession(t, cookies, func(c echo.Context) {
			flashes := view.GetFlashData(c)
			assert.Equal(t, []string{"Please wait before sending again"}, flashes.Error)
			assert.Empty(t, flashes.Success)
		})

		runWithSession(t, lastCookies(rec), func(c echo.Context) {
			assert.True(t, view.GetFlashData(c).Empty())
		})
	})

	t.Run("nothing set", func(t *testing.T) {
		runWithSession(t, nil, func(c echo.Context) {
			flashes := view.GetFlashData(c)
			assert.Nil(t, flashes.Success)
			assert.Nil(t, flashes.Error)
		})
	})
}
