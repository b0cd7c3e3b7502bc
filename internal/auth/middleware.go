package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// contextUserKey is where RequireAuth stores the verified user ID.
const contextUserKey = "userID"

// RequireAuth rejects any request without a valid bearer token and records
// the verified user ID in the gin context for downstream handlers.
func RequireAuth(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		userID, err := issuer.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(contextUserKey, userID)
		c.Next()
	}
}

// UserID returns the acting user recorded by RequireAuth.
func UserID(c *gin.Context) uint {
	return c.GetUint(contextUserKey)
}
