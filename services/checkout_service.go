package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"storefront/entity"
	"storefront/repository"
)

// CheckoutService converts the current cart contents into order rows and
// empties the cart. This is the only multi-row state transition in the
// system, so it runs per-user serialized and inside one transaction.
type CheckoutService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	OrderRepo   *repository.OrderRepository
	AddressRepo *repository.AddressRepository

	locks *userLocks
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo *repository.CartRepository,
	orderRepo *repository.OrderRepository,
	addressRepo *repository.AddressRepository,
) *CheckoutService {
	return &CheckoutService{
		DB:          db,
		CartRepo:    cartRepo,
		OrderRepo:   orderRepo,
		AddressRepo: addressRepo,
		locks:       newUserLocks(),
	}
}

// WarnNoAddress is surfaced when checkout proceeds without a shipping
// address. Address selection is deliberately soft: product has not yet
// decided whether it should block (see DESIGN.md).
const WarnNoAddress = "no shipping address selected"

type CheckoutResult struct {
	Orders  []entity.Order `json:"orders"`
	Warning string         `json:"warning,omitempty"`
}

// Checkout places one Pending order per cart item and clears the cart,
// all or nothing. addressID is optional; when present it must belong to
// the user or the whole operation fails before any mutation. Re-invoking
// on the now-empty cart creates zero orders.
func (s *CheckoutService) Checkout(userID uint, addressID *uint) (*CheckoutResult, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	res := &CheckoutResult{Orders: []entity.Order{}}
	if addressID == nil {
		res.Warning = WarnNoAddress
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var addrID *uint
		if addressID != nil {
			a, err := s.AddressRepo.FindOwned(tx, userID, *addressID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			addrID = &a.ID
		}

		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		items, err := s.CartRepo.ItemsForUpdate(tx, cart.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, it := range items {
			o := entity.Order{
				UserID:      userID,
				AddressID:   addrID,
				ProductID:   it.ProductID,
				Quantity:    it.Quantity,
				Status:      entity.OrderStatusPending,
				OrderedDate: now,
			}
			if err := s.OrderRepo.Create(tx, &o); err != nil {
				return err
			}
			res.Orders = append(res.Orders, o)
		}

		return s.CartRepo.ClearItems(tx, cart.ID)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnauthenticated) {
			return nil, err
		}
		return nil, &TransactionError{Op: "checkout", Err: err}
	}
	return res, nil
}
