package middleware

import (
	"net/http"
	"strings"

	"kurator/config"
	"kurator/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token and requires the ADMIN role.
// Rejections never reveal whether any data exists behind the endpoint.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			// Websocket clients cannot set headers from a browser; accept
			// the token as a query parameter there.
			header = "Bearer " + c.Query("token")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, err := auth.ParseToken(cfg, parts[1])
		if err != nil || claims.Role != auth.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set("role", claims.Role)
		c.Next()
	}
}
