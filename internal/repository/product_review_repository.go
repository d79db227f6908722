package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/shop-admin/internal/model"
)

// ProductReviewRepository 商品评价仓储接口
type ProductReviewRepository interface {
	Create(ctx context.Context, review *model.ProductReview) error
}

type productReviewRepository struct {
	db *gorm.DB
}

func NewProductReviewRepository(db *gorm.DB) ProductReviewRepository {
	return &productReviewRepository{db: db}
}

func (r *productReviewRepository) Create(ctx context.Context, review *model.ProductReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}
