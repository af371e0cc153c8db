package middleware

import (
	"net/http" // HTTP status codes

	"adboard/internal/apperr" // Error taxonomy
	"adboard/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware gates a route group on the admin role. It relies on
// TokenAuthMiddleware having already resolved the identity, so the role check
// costs no extra storage round trip.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.Message(apperr.ErrUnauthenticated)})
			return
		}
		if user.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperr.Message(apperr.ErrForbidden)})
			return
		}
		c.Next() // If admin, proceed to the next handler
	}
}
