package models

import "time"

// Account holds one login identity. Token is the single active session
// token; nil means logged out. A new login overwrites it, so at most one
// session per account is valid at a time.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:191;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Token        *string   `gorm:"size:128;index" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
