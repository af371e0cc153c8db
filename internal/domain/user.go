package domain

// Role values stored on User
const (
	RoleUser  = "user"  // Default role for registered users
	RoleAdmin = "admin" // Admin role overrides ownership checks
)

// User Model
type User struct {
	ID             uint            `gorm:"primaryKey" json:"id"`                                   // Primary key
	Name           string          `gorm:"unique;not null" json:"name"`                            // Unique user name
	Password       string          `gorm:"not null" json:"-"`                                      // Hashed password, never serialized
	Role           string          `gorm:"default:user" json:"role"`                               // Role: user or admin
	Tokens         []Token         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Owned tokens, deleted with the user
	Advertisements []Advertisement `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Owned advertisements, deleted with the user
}
