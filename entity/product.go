package entity

import (
	"gorm.io/gorm"
)

// Product price is stored in minor currency units.
type Product struct {
	gorm.Model
	Title      string `gorm:"not null" json:"title"`
	Slug       string `gorm:"uniqueIndex;not null" json:"slug"`
	Price      int64  `gorm:"not null;check:price >= 0" json:"price"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`
	IsFeatured bool   `gorm:"default:false" json:"isFeatured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`
}
