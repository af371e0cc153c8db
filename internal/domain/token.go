package domain

import "time"

// Token Model
//
// A token row is immutable once created. Validity is computed from
// CreationTime against the configured TTL, never stored.
type Token struct {
	ID           uint      `gorm:"primaryKey"`                         // Primary key
	Token        string    `gorm:"type:char(36);uniqueIndex;not null"` // Opaque 128-bit identifier, canonical UUID text
	CreationTime time.Time `gorm:"autoCreateTime"`                     // Anchor of the validity window
	UserID       uint      `gorm:"not null"`                           // Foreign key to the owning User
	User         User      // Owning user, joined eagerly at resolution
}
