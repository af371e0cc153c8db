package auth

import (
	"context"
	"errors"
	"time"

	"adboard/internal/apperr" // Error taxonomy
	"adboard/internal/domain" // Importing domain models

	"github.com/google/uuid" // Canonical token identifier format
	"gorm.io/gorm"           // GORM ORM library
)

// Resolver turns a presented token into a live user identity. The TTL is
// fixed at construction and anchored to the token's creation time; there is
// no sliding renewal.
type Resolver struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewResolver creates a Resolver with the given storage handle and TTL
func NewResolver(db *gorm.DB, ttl time.Duration) *Resolver {
	return &Resolver{db: db, ttl: ttl}
}

// Resolve looks up the presented token and returns its owning user, with the
// role already loaded. A malformed identifier, an unknown identifier and an
// expired token all fail with the same apperr.ErrUnauthenticated, so a caller
// cannot tell whether a token ever existed.
func (r *Resolver) Resolve(ctx context.Context, presented string, now time.Time) (*domain.User, error) {
	id, err := uuid.Parse(presented)
	if err != nil {
		return nil, apperr.ErrUnauthenticated
	}

	// Single indexed lookup joined with the owner, one round trip.
	// The window is inclusive: a token created exactly TTL ago still resolves.
	var token domain.Token
	err = r.db.WithContext(ctx).
		Joins("User").
		Where("token = ? AND creation_time >= ?", id.String(), now.Add(-r.ttl)).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUnauthenticated
		}
		return nil, err
	}
	return &token.User, nil
}
