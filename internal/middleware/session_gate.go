package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lily-salon/internal/session"
)

const (
	ContextSession = "session"

	LoginPath = "/login"
)

// SessionGate redirects to the login page unless the request carries a
// session cookie with a stored user record.
func SessionGate(m *session.Manager, cookieName string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, _ := c.Cookie(cookieName)

		s, ok, err := m.Current(c.Request.Context(), sid)
		if err != nil {
			log.Error("session lookup failed", zap.Error(err))
		}
		if !ok {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		c.Set(ContextSession, s)
		c.Next()
	}
}

// RequireManagerSession sends users without the manager role back to the home page.
func RequireManagerSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).IsManager() {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session stored by SessionGate, or nil.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}
