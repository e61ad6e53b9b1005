package entity

import (
	"gorm.io/gorm"
)

// A product line inside a cart. One row per (cart, product); adding the
// same product again increments Quantity instead of inserting a new row.
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"uniqueIndex:idx_cart_product;not null" json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `gorm:"uniqueIndex:idx_cart_product;not null" json:"productId"`
	Product   Product `json:"product"`

	Quantity int `gorm:"not null;default:1;check:quantity >= 1" json:"quantity"`
}
