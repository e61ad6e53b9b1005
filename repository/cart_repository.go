package repository

import (
	"errors"

	"gorm.io/gorm"

	"storefront/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart with items and products loaded.
// A user with no cart yet gets an empty, unsaved cart back, not an error.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateCart reads the user's single cart, creating it on first use.
func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertItem merges a product into the cart: an existing (cart, product)
// row gets quantity+1, otherwise a new row starts at quantity 1.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, productID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if err == nil {
		item.Quantity++
		if err := tx.Save(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item = entity.CartItem{CartID: cartID, ProductID: productID, Quantity: 1}
	if err := tx.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ItemsForUpdate loads the cart's items inside the caller's transaction.
func (r *CartRepository) ItemsForUpdate(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("cart_id = ?", cartID).Find(&items).Error
	return items, err
}

// ClearItems deletes every item of the cart; the cart row itself stays.
// Hard delete: soft-deleted rows would still occupy the (cart_id,
// product_id) unique index and block re-adding the product.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
