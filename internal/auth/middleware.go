package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects requests without a valid admin token.
func RequireAdmin(admin *Admin) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := admin.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("adminEmail", claims.Email)
		c.Next()
	}
}
