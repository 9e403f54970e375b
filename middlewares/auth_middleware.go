package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"makeyou-digital/backend/utils"
)

const AdminClaimsKey = "admin_claims"

// AdminAuth admits requests carrying a valid admin bearer token. When admin
// access is not configured every request gets 503, matching the login route.
func AdminAuth(secret string, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled || secret == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin disabled"})
			return
		}
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := utils.ParseJWT(secret, strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if claims.Role != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Set(AdminClaimsKey, claims)
		c.Next()
	}
}
