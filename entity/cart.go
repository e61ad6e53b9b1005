package entity

import (
	"gorm.io/gorm"
)

// One cart per user; emptied on checkout, never deleted.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
