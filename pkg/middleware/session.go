package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionIDKey = "session_id"

// SessionMiddleware makes sure every browser carries a session id cookie and
// exposes it to handlers under SessionIDKey.
func SessionMiddleware(cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.New().String()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, sessionID, int(ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}
