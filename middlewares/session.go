package middlewares

import (
	"net/http"

	"advicerater/services"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionMiddleware attaches the caller's session to the context, issuing a
// new session cookie when the request carries none or an expired one.
func SessionMiddleware(store *services.SessionStore, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *services.Session
		if id, err := c.Cookie(cookieName); err == nil {
			sess, _ = store.Get(id)
		}
		if sess == nil {
			sess = store.Create()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sess.ID, 0, "/", "", false, true)
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session set by SessionMiddleware
func CurrentSession(c *gin.Context) *services.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*services.Session)
	return sess
}
