package service

import (
	"context"

	"github.com/d60-Lab/shop-admin/internal/model"
	"github.com/d60-Lab/shop-admin/internal/repository"
	"github.com/d60-Lab/shop-admin/pkg/validate"
)

// CatalogService 分类、商品及其图片/评价
type CatalogService interface {
	CreateCategory(ctx context.Context, category *model.Category) (uint, error)
	CreateProduct(ctx context.Context, product *model.Product) (uint, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	AddProductImage(ctx context.Context, image *model.ProductImage) (uint, error)
	AddProductReview(ctx context.Context, review *model.ProductReview) (uint, error)
}

type catalogService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	images     repository.ProductImageRepository
	reviews    repository.ProductReviewRepository
	users      repository.UserRepository
}

func NewCatalogService(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	images repository.ProductImageRepository,
	reviews repository.ProductReviewRepository,
	users repository.UserRepository,
) CatalogService {
	return &catalogService{
		categories: categories,
		products:   products,
		images:     images,
		reviews:    reviews,
		users:      users,
	}
}

func (s *catalogService) CreateCategory(ctx context.Context, category *model.Category) (uint, error) {
	if err := s.categories.Create(ctx, category); err != nil {
		return 0, err
	}
	return category.ID, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product *model.Product) (uint, error) {
	if err := s.products.Create(ctx, product); err != nil {
		return 0, err
	}
	return product.ID, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}

func (s *catalogService) AddProductImage(ctx context.Context, image *model.ProductImage) (uint, error) {
	ok, err := s.products.Exists(ctx, image.ProductID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, validate.Selected("product_id")
	}
	if err := s.images.Create(ctx, image); err != nil {
		return 0, err
	}
	return image.ID, nil
}

func (s *catalogService) AddProductReview(ctx context.Context, review *model.ProductReview) (uint, error) {
	errs := validate.Errors{}
	if ok, err := s.users.Exists(ctx, review.UserID); err != nil {
		return 0, err
	} else if !ok {
		errs.Add("user_id", "The selected user_id is invalid.")
	}
	if ok, err := s.products.Exists(ctx, review.ProductID); err != nil {
		return 0, err
	} else if !ok {
		errs.Add("product_id", "The selected product_id is invalid.")
	}
	if len(errs) > 0 {
		return 0, errs
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return 0, err
	}
	return review.ID, nil
}
