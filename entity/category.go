package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name       string `gorm:"not null" json:"name"`
	Slug       string `gorm:"uniqueIndex;not null" json:"slug"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`
	IsFeatured bool   `gorm:"default:false" json:"isFeatured"`

	Products []Product `json:"-"`
}
