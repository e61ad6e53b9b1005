package entity

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusAccepted  OrderStatus = "Accepted"
	OrderStatusPacked    OrderStatus = "Packed"
	OrderStatusOnTheWay  OrderStatus = "On The Way"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the known lifecycle states.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusPacked,
		OrderStatusOnTheWay, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is line-item granular: checkout writes one row per distinct
// product that was in the cart, not one aggregate row per cart.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	// Nullable: checkout proceeds without a shipping address (see checkout service).
	AddressID *uint    `json:"addressId"`
	Address   *Address `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"product"`

	Quantity    int         `gorm:"not null" json:"quantity"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:Pending" json:"status"`
	OrderedDate time.Time   `gorm:"index" json:"orderedDate"`
}
