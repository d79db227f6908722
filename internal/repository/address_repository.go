package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/shop-admin/internal/model"
)

// AddressRepository 地址仓储接口
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository { return &addressRepository{db: db} }

func (r *addressRepository) Create(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *addressRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Address{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
