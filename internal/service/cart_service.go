package service

import (
	"context"

	"github.com/d60-Lab/shop-admin/internal/model"
	"github.com/d60-Lab/shop-admin/internal/repository"
	"github.com/d60-Lab/shop-admin/pkg/validate"
)

// CartService 购物车及条目
type CartService interface {
	CreateCart(ctx context.Context, cart *model.Cart) (uint, error)
	AddItem(ctx context.Context, item *model.CartItem) (uint, error)
}

type cartService struct {
	carts    repository.CartRepository
	items    repository.CartItemRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

func NewCartService(
	carts repository.CartRepository,
	items repository.CartItemRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
) CartService {
	return &cartService{carts: carts, items: items, products: products, users: users}
}

func (s *cartService) CreateCart(ctx context.Context, cart *model.Cart) (uint, error) {
	if cart.UserID != nil {
		ok, err := s.users.Exists(ctx, *cart.UserID)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, validate.Selected("user_id")
		}
	}
	if err := s.carts.Create(ctx, cart); err != nil {
		return 0, err
	}
	return cart.ID, nil
}

func (s *cartService) AddItem(ctx context.Context, item *model.CartItem) (uint, error) {
	errs := validate.Errors{}
	if ok, err := s.carts.Exists(ctx, item.CartID); err != nil {
		return 0, err
	} else if !ok {
		errs.Add("cart_id", "The selected cart_id is invalid.")
	}
	if ok, err := s.products.Exists(ctx, item.ProductID); err != nil {
		return 0, err
	} else if !ok {
		errs.Add("product_id", "The selected product_id is invalid.")
	}
	if len(errs) > 0 {
		return 0, errs
	}
	if err := s.items.Create(ctx, item); err != nil {
		return 0, err
	}
	return item.ID, nil
}
