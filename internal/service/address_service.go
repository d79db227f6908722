package service

import (
	"context"

	"github.com/d60-Lab/shop-admin/internal/model"
	"github.com/d60-Lab/shop-admin/internal/repository"
	"github.com/d60-Lab/shop-admin/pkg/validate"
)

// AddressService 收货地址
type AddressService interface {
	Create(ctx context.Context, address *model.Address) (uint, error)
}

type addressService struct {
	addresses repository.AddressRepository
	users     repository.UserRepository
}

func NewAddressService(addresses repository.AddressRepository, users repository.UserRepository) AddressService {
	return &addressService{addresses: addresses, users: users}
}

func (s *addressService) Create(ctx context.Context, address *model.Address) (uint, error) {
	if address.UserID != nil {
		ok, err := s.users.Exists(ctx, *address.UserID)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, validate.Selected("user_id")
		}
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		return 0, err
	}
	return address.ID, nil
}
