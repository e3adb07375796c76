package models

import (
	"time"

	"gorm.io/gorm"
)

// Entry types shared by categories and transactions.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// IsValidType reports whether t is one of the known entry types.
func IsValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// Category is an income/expense bucket owned by exactly one user. Every
// query against it must filter by UserID.
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Type      string         `json:"type" gorm:"size:10;not null;index"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
