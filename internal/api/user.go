package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"adboard/internal/apperr"     // Error taxonomy
	"adboard/internal/auth"       // Ownership rule and password hashing
	"adboard/internal/cache"      // Redis cache helpers
	"adboard/internal/domain"     // Importing domain models
	"adboard/internal/middleware" // Resolved identity access

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
	"gorm.io/gorm/clause"          // Association cascade on delete
)

// UserResponse is the public view of a user; the password digest never leaves
// the storage layer.
type UserResponse struct {
	ID   uint   `json:"id"`   // User ID
	Name string `json:"name"` // User name
	Role string `json:"role"` // User role
}

// UpdateUserRequest carries only the fields present in the request body.
// Role is deliberately absent: it cannot be changed through this endpoint.
type UpdateUserRequest struct {
	Name     *string `json:"name"`     // New name, if provided
	Password *string `json:"password"` // New password, if provided
}

// parseID parses a numeric path parameter, answering 404 on garbage so that
// /user/abc and /user/999999 are indistinguishable.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, apperr.ErrNotFound)
		return 0, false
	}
	return uint(id), true
}

// GetUserHandler returns the public view of a single user
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var user domain.User
		if err := db.WithContext(c.Request.Context()).First(&user, id).Error; err != nil {
			respondError(c, apperr.Translate(err))
			return
		}
		c.JSON(http.StatusOK, UserResponse{ID: user.ID, Name: user.Name, Role: user.Role})
	}
}

// UpdateUserHandler applies a partial update to a user. Lookup runs before
// the ownership check, so a missing user answers 404 even to strangers.
func UpdateUserHandler(db *gorm.DB, bcryptCost int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User
		if err := db.WithContext(c.Request.Context()).First(&user, id).Error; err != nil {
			respondError(c, apperr.Translate(err))
			return
		}
		if !auth.MayMutate(middleware.CurrentUser(c), user.ID) {
			respondError(c, apperr.ErrForbidden)
			return
		}
		// Apply only the fields the caller actually sent
		updates := map[string]any{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Password != nil {
			if !isValidPassword(*req.Password) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-72 characters"})
				return
			}
			digest, err := auth.HashPassword(*req.Password, bcryptCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
				return
			}
			updates["password"] = digest
		}
		if len(updates) > 0 {
			if err := db.WithContext(c.Request.Context()).Model(&user).Updates(updates).Error; err != nil {
				respondError(c, apperr.Translate(err))
				return
			}
		}
		c.JSON(http.StatusOK, successResponse)
	}
}

// DeleteUserHandler removes a user together with all owned tokens and
// advertisements.
func DeleteUserHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var user domain.User
		if err := db.WithContext(c.Request.Context()).First(&user, id).Error; err != nil {
			respondError(c, apperr.Translate(err))
			return
		}
		if !auth.MayMutate(middleware.CurrentUser(c), user.ID) {
			respondError(c, apperr.ErrForbidden)
			return
		}
		// Cascade to tokens and advertisements in the same transaction
		if err := db.WithContext(c.Request.Context()).Select(clause.Associations).Delete(&user).Error; err != nil {
			respondError(c, apperr.Translate(err))
			return
		}
		// The cascade just removed advertisements; drop their cached reads too
		_ = cache.InvalidatePrefix(c.Request.Context(), rdb, cache.AdPrefix)
		c.JSON(http.StatusOK, successResponse)
	}
}
