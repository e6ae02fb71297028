package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Address string  `gorm:"not null" json:"address"`
	Total   float64 `gorm:"not null" json:"total"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
