package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	Locality string `gorm:"not null" json:"locality"`
	City     string `gorm:"not null" json:"city"`
	State    string `gorm:"not null" json:"state"`
}
