package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorHeader names the header the chat adapter uses to forward the acting
// user's platform ID. The adapter authenticates upstream; the core only
// needs to know who is acting.
const ActorHeader = "X-User-ID"

// ActorMiddleware requires the actor header and stores the ID in the
// request context.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(ActorHeader))
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing " + ActorHeader + " header"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
