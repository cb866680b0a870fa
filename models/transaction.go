package models

import "time"

// Transaction types.
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

// ValidType reports whether t is one of the transaction types.
func ValidType(t string) bool {
	return t == TypeExpense || t == TypeIncome
}

// Transaction represents a single income or expense entry belonging to a user.
// Currency is stamped from the owner's preference at write time.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Currency    string    `gorm:"size:3;not null" json:"currency"`
	Category    string    `gorm:"size:255;not null" json:"category"`
	Type        string    `gorm:"size:16;not null" json:"type"`
	Date        time.Time `gorm:"index;not null" json:"date"`
}
