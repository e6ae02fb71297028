package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string  `gorm:"uniqueIndex;not null" json:"username"`
	Password string  `json:"-"` // bcrypt hash, never serialized
	Phone    string  `json:"phone"`
	Email    *string `gorm:"uniqueIndex" json:"email,omitempty"` // nil when not supplied; unique otherwise
	Name     string  `json:"name"`

	Orders []Order `json:"-"`
}
