package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/shop-admin/internal/model"
)

// OrderItemRepository 订单明细仓储接口
type OrderItemRepository interface {
	Create(ctx context.Context, item *model.OrderItem) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository { return &orderItemRepository{db: db} }

func (r *orderItemRepository) Create(ctx context.Context, item *model.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
