package repository

import (
	"gorm.io/gorm"

	"storefront/entity"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Create(a).Error
}

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var addrs []entity.Address
	err := r.DB.Where("user_id = ?", userID).Find(&addrs).Error
	return addrs, err
}

// FindOwned looks up an address scoped to its owner; a foreign or missing
// id is indistinguishable from not found.
func (r *AddressRepository) FindOwned(tx *gorm.DB, userID, addressID uint) (*entity.Address, error) {
	var a entity.Address
	if err := tx.Where("user_id = ? AND id = ?", userID, addressID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteOwned removes the user's address. Returns rows affected so the
// caller can distinguish "deleted" from "was never theirs".
func (r *AddressRepository) DeleteOwned(userID, addressID uint) (int64, error) {
	res := r.DB.Where("user_id = ? AND id = ?", userID, addressID).Delete(&entity.Address{})
	return res.RowsAffected, res.Error
}
