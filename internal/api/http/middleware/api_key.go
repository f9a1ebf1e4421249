package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware rejects requests whose X-API-Key header does not match
// the expected key. An empty expected key disables the check.
func APIKeyMiddleware(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}

		key := c.GetHeader("X-API-Key")
		if key == "" || key != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "invalid API key",
			})
			return
		}

		c.Next()
	}
}
