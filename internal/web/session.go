package web

import (
	"net/http"

	"github.com/eternisai/text2mindmap/internal/credentials"
	"github.com/eternisai/text2mindmap/internal/logger"
	"github.com/eternisai/text2mindmap/internal/session"
	"github.com/gin-gonic/gin"
)

// SessionCookie carries the browser session ID.
const SessionCookie = "t2m_session"

const sessionKey = "session"

// SessionMiddleware attaches a session to every request, creating one when the
// cookie is missing or stale.
func SessionMiddleware(store *session.Store, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookie)
		sess, created := store.GetOrCreate(id)
		if created {
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   secureCookie,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(sessionKey, sess)
		c.Request = c.Request.WithContext(logger.WithSessionID(c.Request.Context(), sess.ID))
		c.Next()
	}
}

func expireSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func currentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}

// sessionCredential avoids handing the resolver a typed nil.
func sessionCredential(c *gin.Context) credentials.SessionCredential {
	if s := currentSession(c); s != nil {
		return s
	}
	return nil
}
