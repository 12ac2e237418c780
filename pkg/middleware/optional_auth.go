package middleware

import (
	"strings"

	"cinevault/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware sets user_id when a valid bearer token is present
// but never rejects the request. Used on routes that serve public resources
// with extra detail for their owner (e.g. private playlists).
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateToken(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("Role", claims.Role)
			}
		}
		c.Next()
	}
}
