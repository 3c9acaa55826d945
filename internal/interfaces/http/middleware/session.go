// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/techstore-backend/internal/config"
)

// SessionCookieName is the cookie carrying the container session id
const SessionCookieName = "session_id"

// Session ensures every request carries a session id cookie. The id
// namespaces the cart, wishlist, auth, and order-cache snapshots in
// the state store.
func Session(cfg *config.Config) gin.HandlerFunc {
	maxAge := int(cfg.Security.SessionTTL.Seconds())

	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(SessionCookieName, sessionID, maxAge, "/", "", cfg.IsProduction(), true)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}

// GetSessionID returns the request's session id
func GetSessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
