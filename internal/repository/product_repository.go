package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/shop-admin/internal/model"
)

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error

	// List 全量返回，按主键升序保证输出确定
	List(ctx context.Context) ([]model.Product, error)

	Exists(ctx context.Context, id uint) (bool, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepository{db: db} }

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
