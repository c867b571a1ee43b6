package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie session shared by the client ID and flash messages.
	SessionName = "studio_session"
	// ClientIDContextKey is where ClientID stores the visitor's identifier on the echo context.
	ClientIDContextKey = "client_id"

	sessionClientIDKey  = "client_id"
	clientSessionMaxAge = 60 * 60 * 24 * 30
)

// ClientID assigns every browser a stable anonymous identifier kept in the
// session cookie. It must run after the session middleware.
func ClientID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(SessionName, c)
		if sess == nil {
			return err
		}
		if err != nil {
			// A cookie signed with an old secret is replaced rather than rejected.
			FromContext(c.Request().Context()).Debug("Discarding unreadable session", "error", err)
		}

		id, _ := sess.Values[sessionClientIDKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[sessionClientIDKey] = id
			sess.Options.Path = "/"
			sess.Options.MaxAge = clientSessionMaxAge
			sess.Options.HttpOnly = true
			sess.Options.SameSite = http.SameSiteLaxMode
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				return err
			}
		}

		c.Set(ClientIDContextKey, id)
		return next(c)
	}
}

// GetClientID returns the identifier set by ClientID, or "" outside of it.
func GetClientID(c echo.Context) string {
	id, _ := c.Get(ClientIDContextKey).(string)
	return id
}
