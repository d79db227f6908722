package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/shop-admin/internal/model"
)

// CartItemRepository 购物车条目仓储接口
type CartItemRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
}

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepository { return &cartItemRepository{db: db} }

func (r *cartItemRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
