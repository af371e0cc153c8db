package auth

import (
	"context"

	"adboard/internal/apperr" // Error taxonomy
	"adboard/internal/domain" // Importing domain models

	"github.com/google/uuid" // Random token identifiers
	"gorm.io/gorm"           // GORM ORM library
)

// TokenStore issues and revokes opaque bearer tokens. Token rows are
// immutable: they are only ever created here or deleted, never updated.
type TokenStore struct {
	db *gorm.DB
}

// NewTokenStore creates a TokenStore on top of the given storage handle
func NewTokenStore(db *gorm.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Issue creates a new token for userID with a freshly generated random
// 128-bit identifier. Issuing against a missing user surfaces
// apperr.ErrOwnerNotFound via the foreign-key constraint.
func (s *TokenStore) Issue(ctx context.Context, userID uint) (*domain.Token, error) {
	token := &domain.Token{
		Token:  uuid.NewString(),
		UserID: userID,
	}
	if err := s.db.WithContext(ctx).Create(token).Error; err != nil {
		return nil, apperr.Translate(err)
	}
	return token, nil
}

// RevokeAll deletes every token owned by userID. Not routed as an endpoint;
// it exists for the user-deletion cascade collaborator.
func (s *TokenStore) RevokeAll(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Token{}).Error
}
