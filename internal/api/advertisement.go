package api

import (
	"net/http" // HTTP status codes
	"net/url"  // Escaping filter values for cache keys
	"time"     // Cache TTL

	"adboard/internal/apperr"     // Error taxonomy
	"adboard/internal/auth"       // Ownership rule
	"adboard/internal/cache"      // Redis cache helpers
	"adboard/internal/domain"     // Importing domain models
	"adboard/internal/middleware" // Resolved identity access

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// adCacheTTL bounds staleness of cached advertisement reads
const adCacheTTL = 60 * time.Second

// Request struct for advertisement creation. The owner is never part of the
// payload; it is fixed from the resolved identity.
type CreateAdvertisementRequest struct {
	Title       string   `json:"title" binding:"required"`  // Unique title
	Description string   `json:"description"`               // Optional description
	Price       *float64 `json:"price" binding:"required"`  // Asking price; pointer so a free listing (0) still passes presence validation
	Author      string   `json:"author" binding:"required"` // Display name of the poster
}

// UpdateAdvertisementRequest carries only the fields present in the body
type UpdateAdvertisementRequest struct {
	Title       *string  `json:"title"`       // New title, if provided
	Description *string  `json:"description"` // New description, if provided
	Price       *float64 `json:"price"`       // New price, if provided
	Author      *string  `json:"author"`      // New author, if provided
}

// CreateAdvertisementHandler creates an advertisement owned by the caller
func CreateAdvertisementHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAdvertisementRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		actor := middleware.CurrentUser(c)
		if actor == nil {
			respondError(c, apperr.ErrUnauthenticated)
			return
		}
		ad := domain.Advertisement{
			Title:       req.Title,
			Description: req.Description,
			Price:       *req.Price,
			Author:      req.Author,
			UserID:      actor.ID, // Owner fixed at creation, never reassigned
		}
		if err := db.WithContext(c.Request.Context()).Create(&ad).Error; err != nil {
			respondError(c, apperr.Translate(err))
			return
		}
		// Drop cached reads that no longer reflect the store
		_ = cache.InvalidatePrefix(c.Request.Context(), rdb, cache.AdPrefix)
		c.JSON(http.StatusCreated, gin.H{"id": ad.ID})
	}
}

// GetAdvertisementHandler returns a single advertisement, cached for a minute
func GetAdvertisementHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		cacheKey := cache.Key(cache.AdPrefix, "id", c.Param("id"))
		var cached domain.Advertisement
		if found, err := cache.Get(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		var ad domain.Advertisement
		if err := db.WithContext(ctx).First(&ad, id).Error; err != nil {
			respondError(c, apperr.Translate(err))
			return
		}
		_ = cache.Set(ctx, rdb, cacheKey, ad, adCacheTTL)
		c.JSON(http.StatusOK, ad)
	}
}

// SearchAdvertisementsHandler lists advertisements matching the exact-match
// filters given as query parameters. Results are cached per filter set.
func SearchAdvertisementsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		title := c.Query("title")   // Optional title filter
		author := c.Query("author") // Optional author filter
		price := c.Query("price")   // Optional price filter
		// Escape the values so a crafted filter cannot collide with the key
		// of a different filter set
		cacheKey := cache.Key(cache.AdPrefix, "search",
			"title="+url.QueryEscape(title),
			"author="+url.QueryEscape(author),
			"price="+url.QueryEscape(price))

		var cached struct {
			Results []domain.Advertisement `json:"results"` // Matching advertisements
		}
		if found, err := cache.Get(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"results": cached.Results, "cached": true})
			return
		}

		query := db.WithContext(ctx).Model(&domain.Advertisement{})
		if title != "" {
			query = query.Where("title = ?", title)
		}
		if author != "" {
			query = query.Where("author = ?", author)
		}
		if price != "" {
			query = query.Where("price = ?", price)
		}
		var ads []domain.Advertisement
		if err := query.Order("created_at desc").Find(&ads).Error; err != nil {
			respondError(c, apperr.Translate(err))
			return
		}
		respData := gin.H{"results": ads, "cached": false}
		_ = cache.Set(ctx, rdb, cacheKey, respData, adCacheTTL)
		c.JSON(http.StatusOK, respData)
	}
}

// UpdateAdvertisementHandler applies a partial update. The row is loaded
// first, so a missing advertisement answers 404 before any ownership check;
// only then does the admin-or-owner rule run.
func UpdateAdvertisementHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req UpdateAdvertisementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		ctx := c.Request.Context()
		var ad domain.Advertisement
		if err := db.WithContext(ctx).First(&ad, id).Error; err != nil {
			respondError(c, apperr.Translate(err))
			return
		}
		if !auth.MayMutate(middleware.CurrentUser(c), ad.UserID) {
			respondError(c, apperr.ErrForbidden)
			return
		}
		// Apply only the fields the caller actually sent; ownership is not
		// among them and cannot change after creation.
		updates := map[string]any{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Author != nil {
			updates["author"] = *req.Author
		}
		if len(updates) > 0 {
			if err := db.WithContext(ctx).Model(&ad).Updates(updates).Error; err != nil {
				respondError(c, apperr.Translate(err))
				return
			}
			_ = cache.InvalidatePrefix(ctx, rdb, cache.AdPrefix)
		}
		c.JSON(http.StatusOK, successResponse)
	}
}

// DeleteAdvertisementHandler removes an advertisement after the same lookup
// and ownership sequence as update.
func DeleteAdvertisementHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		var ad domain.Advertisement
		if err := db.WithContext(ctx).First(&ad, id).Error; err != nil {
			respondError(c, apperr.Translate(err))
			return
		}
		if !auth.MayMutate(middleware.CurrentUser(c), ad.UserID) {
			respondError(c, apperr.ErrForbidden)
			return
		}
		if err := db.WithContext(ctx).Delete(&ad).Error; err != nil {
			respondError(c, apperr.Translate(err))
			return
		}
		_ = cache.InvalidatePrefix(ctx, rdb, cache.AdPrefix)
		c.JSON(http.StatusOK, successResponse)
	}
}
