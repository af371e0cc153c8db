package domain

import "time"

// Advertisement Model
type Advertisement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`         // Primary key
	Title       string    `gorm:"unique;not null" json:"title"` // Unique title
	Description string    `gorm:"type:text" json:"description"` // Free-text description
	Price       float64   `gorm:"not null" json:"price"`        // Asking price
	Author      string    `gorm:"not null" json:"author"`       // Display name of the poster
	CreatedAt   time.Time `json:"created_at"`                   // Timestamp of creation
	UserID      uint      `gorm:"not null" json:"user_id"`      // Owning user, fixed at creation
}
