package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/shop-admin/internal/model"
)

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// Create 插入一条订单并回填自增 ID
	Create(ctx context.Context, order *model.Order) error

	// Exists 订单是否存在
	Exists(ctx context.Context, id uint) (bool, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepository{db: db} }

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
