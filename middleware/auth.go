package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// EmailKey is the gin context key under which the authenticated caller's
// email claim is stored.
const EmailKey = "email"

// JWTAuthMiddleware verifies the Bearer token on every protected route.
// A missing header is an authentication failure (401); a header that is
// present but carries a malformed, forged, or expired token is a 403.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized access"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden access"})
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// CallerEmail returns the email claim set by JWTAuthMiddleware.
func CallerEmail(c *gin.Context) string {
	return c.GetString(EmailKey)
}
