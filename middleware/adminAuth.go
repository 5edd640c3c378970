package middleware

import (
	"net/http"

	userRepo "doctorsportal/database/repository/user"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates admin routes on the caller's stored role.
// The lookup runs on every request so a revoked role takes effect on the
// next call; nothing is cached. Must run after JWTAuthMiddleware.
func AdminOnlyMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := CallerEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized access"})
			return
		}

		user, err := users.GetByEmail(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized access"})
			return
		}

		c.Next()
	}
}
