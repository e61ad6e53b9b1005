package repository

import (
	"gorm.io/gorm"

	"storefront/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// ListForUser returns the user's orders, newest first.
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Product").
		Order("ordered_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(orderID uint, status entity.OrderStatus) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}
