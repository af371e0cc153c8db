package middleware

import (
	"errors"   // Error classification
	"net/http" // HTTP status codes
	"time"     // Current time for the TTL check

	"adboard/internal/apperr" // Error taxonomy
	"adboard/internal/auth"   // Identity resolution
	"adboard/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// TokenHeader carries the opaque token identifier on every protected request
const TokenHeader = "X-Token"

// contextUserKey stores the resolved user in the gin context
const contextUserKey = "currentUser"

// TokenAuthMiddleware resolves the X-Token header into a user identity.
// Absent, malformed, unknown and expired tokens all abort with the same 401.
func TokenAuthMiddleware(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(TokenHeader) // Get token header
		if presented == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.Message(apperr.ErrUnauthenticated)})
			return
		}
		user, err := resolver.Resolve(c.Request.Context(), presented, time.Now())
		if err != nil {
			if errors.Is(err, apperr.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.Message(err)})
				return
			}
			// Storage fault, not an auth decision
			logrus.WithError(err).Error("token resolution failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apperr.Message(err)})
			return
		}
		c.Set(contextUserKey, user) // Store resolved user in context
		c.Next()                    // Proceed to the next handler
	}
}

// CurrentUser returns the identity resolved by TokenAuthMiddleware, or nil
// when the request did not pass through it.
func CurrentUser(c *gin.Context) *domain.User {
	v, exists := c.Get(contextUserKey)
	if !exists {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}
