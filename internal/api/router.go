package api

import (
	"adboard/internal/auth"       // Token issuance and identity resolution
	"adboard/internal/middleware" // Auth middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// RegisterRoutes wires every endpoint onto the given engine. Public reads and
// account creation need no token; everything mutating goes through the token
// middleware, and the admin listing additionally through the role gate.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, resolver *auth.Resolver, tokens *auth.TokenStore, bcryptCost int) {
	v1 := r.Group("/api/v1")

	// Public routes
	v1.POST("/user", RegisterHandler(db, bcryptCost))                     // Registration endpoint
	v1.POST("/login", LoginHandler(db, tokens))                           // Login endpoint
	v1.GET("/user/:id", GetUserHandler(db))                               // Public user read
	v1.GET("/advertisement/:id", GetAdvertisementHandler(db, rdb))        // Public advertisement read
	v1.GET("/advertisement", SearchAdvertisementsHandler(db, rdb))        // Advertisement search

	// Token-protected routes
	protected := v1.Group("")
	protected.Use(middleware.TokenAuthMiddleware(resolver))
	protected.POST("/advertisement", CreateAdvertisementHandler(db, rdb))       // Create advertisement endpoint
	protected.PATCH("/advertisement/:id", UpdateAdvertisementHandler(db, rdb))  // Update advertisement endpoint
	protected.DELETE("/advertisement/:id", DeleteAdvertisementHandler(db, rdb)) // Delete advertisement endpoint
	protected.PATCH("/user/:id", UpdateUserHandler(db, bcryptCost))             // Update user endpoint
	protected.DELETE("/user/:id", DeleteUserHandler(db, rdb))                   // Delete user endpoint

	// Admin routes (protected, admin only)
	admin := v1.Group("/admin")
	admin.Use(middleware.TokenAuthMiddleware(resolver), middleware.AdminOnlyMiddleware())
	admin.GET("/users", ListUsersHandler(db, rdb)) // List users endpoint
}
