package api

import (
	"errors"   // Error classification
	"net/http" // HTTP status codes

	"adboard/internal/apperr" // Error taxonomy
	"adboard/internal/auth"   // Password hashing and token issuance
	"adboard/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// Request struct for registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`     // Name must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`     // Name must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for login
type AuthResponse struct {
	Token string `json:"token"` // Opaque bearer token
}

// isValidPassword bounds the password length; bcrypt ignores input past 72 bytes
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 72
}

// RegisterHandler creates a new user with a hashed password
func RegisterHandler(db *gorm.DB, bcryptCost int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if !isValidPassword(req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-72 characters"})
			return
		}
		// Hash the password and create the user
		digest, err := auth.HashPassword(req.Password, bcryptCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{Name: req.Name, Password: digest, Role: domain.RoleUser}
		// Two concurrent registrations with the same name race on the unique
		// index; exactly one commits, the other surfaces as a conflict here.
		if err := db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
			respondError(c, apperr.Translate(err))
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": user.ID})
	}
}

// LoginHandler verifies credentials and issues a fresh token. Unknown name
// and wrong password answer identically.
func LoginHandler(db *gorm.DB, tokens *auth.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.WithContext(c.Request.Context()).Where("name = ?", req.Name).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(c, apperr.ErrInvalidCredentials)
				return
			}
			respondError(c, err)
			return
		}
		// Compare provided password with stored digest
		if !auth.CheckPassword(req.Password, user.Password) {
			respondError(c, apperr.ErrInvalidCredentials)
			return
		}
		token, err := tokens.Issue(c.Request.Context(), user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token.Token})
	}
}
