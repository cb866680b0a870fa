package models

import (
	"time"
)

// User model
type User struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Name           string        `gorm:"size:255;not null" json:"name"`
	Email          string        `gorm:"size:255;not null;unique" json:"email"`
	HashedPassword []byte        `gorm:"not null" json:"-"`
	Currency       string        `gorm:"size:3;not null;default:USD" json:"currency"`
	Transactions   []Transaction `json:"-"`
}
