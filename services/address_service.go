package services

import (
	"strings"

	"storefront/entity"
	"storefront/repository"
)

type AddressService struct {
	Repo *repository.AddressRepository
}

func NewAddressService(r *repository.AddressRepository) *AddressService {
	return &AddressService{Repo: r}
}

type AddressIn struct {
	Locality string `json:"locality"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// Validate is a pure check returning the names of missing fields.
func (in *AddressIn) Validate() []string {
	var missing []string
	if strings.TrimSpace(in.Locality) == "" {
		missing = append(missing, "locality")
	}
	if strings.TrimSpace(in.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(in.State) == "" {
		missing = append(missing, "state")
	}
	return missing
}

func (s *AddressService) Add(userID uint, in *AddressIn) (*entity.Address, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if missing := in.Validate(); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	a := &entity.Address{
		UserID:   userID,
		Locality: strings.TrimSpace(in.Locality),
		City:     strings.TrimSpace(in.City),
		State:    strings.TrimSpace(in.State),
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) List(userID uint) ([]entity.Address, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	return s.Repo.ListForUser(userID)
}

// Remove deletes the user's address. A missing id and someone else's id
// both come back as ErrNotFound.
func (s *AddressService) Remove(userID, addressID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	affected, err := s.Repo.DeleteOwned(userID, addressID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
