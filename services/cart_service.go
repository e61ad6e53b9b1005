package services

import (
	"errors"

	"gorm.io/gorm"

	"storefront/entity"
	"storefront/repository"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: cat}
}

// Add puts one unit of the product into the user's cart. Repeating the
// call bumps the existing line's quantity, never duplicates the row.
func (s *CartService) Add(userID uint, productSlug string) (*entity.CartItem, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	product, err := s.CatalogRepo.ProductBySlug(productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var item *entity.CartItem
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		item, err = s.CartRepo.UpsertItem(tx, cart.ID, product.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// View returns the cart's items, empty when the user has no cart yet.
func (s *CartService) View(userID uint) ([]entity.CartItem, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		return []entity.CartItem{}, nil
	}
	return cart.Items, nil
}
