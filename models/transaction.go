package models

import (
	"time"

	"gorm.io/gorm"
)

// DateLayout is the calendar-date format used on the wire for transaction
// dates and range filters. Dates carry no timezone arithmetic.
const DateLayout = "2006-01-02"

// Transaction is a dated monetary movement tied to one category and one
// user. Type always equals the type of the referenced category; the handlers
// re-validate that on every create and update.
type Transaction struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Description string         `json:"description" gorm:"size:255;not null"`
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date        time.Time      `json:"date" gorm:"type:date;not null;index"`
	Type        string         `json:"type" gorm:"size:10;not null;index"`
	CategoryID  uint           `json:"category_id" gorm:"index;not null"`
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	Category    Category       `json:"category" gorm:"foreignKey:CategoryID"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (Transaction) TableName() string {
	return "transactions"
}

// Summary aggregates a user's transactions over a date range.
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}
