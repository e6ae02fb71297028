package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
	Address     string `json:"address"`

	Products []Product `json:"-"`
}
