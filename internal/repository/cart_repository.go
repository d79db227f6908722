package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/shop-admin/internal/model"
)

// CartRepository 购物车仓储接口
type CartRepository interface {
	Create(ctx context.Context, cart *model.Cart) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository { return &cartRepository{db: db} }

func (r *cartRepository) Create(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Cart{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
