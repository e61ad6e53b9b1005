package services

import (
	"errors"

	"gorm.io/gorm"

	"storefront/entity"
	"storefront/repository"
)

type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(r *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: r}
}

// ListForUser returns the user's orders, most recent first.
func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	return s.Repo.ListForUser(userID)
}

// UpdateStatus moves an order to a new lifecycle state (admin only,
// enforced at the route).
func (s *OrderService) UpdateStatus(orderID uint, status entity.OrderStatus) error {
	if !entity.ValidOrderStatus(status) {
		return &ValidationError{Fields: []string{"status"}}
	}
	if _, err := s.Repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.UpdateStatus(orderID, status)
}
