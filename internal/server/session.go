package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/session"
)

const (
	cookieName = "portfolio_session"
	sessionKey = "session"
)

// sessionMiddleware attaches the visitor's session, issuing a cookie for new
// visitors or when the old session has expired.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookieName)
		sess, created := s.store.GetOrCreate(id)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sess.ID, 0, "/", "", false, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func current(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
