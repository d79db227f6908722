package service

import (
	"context"

	"github.com/d60-Lab/shop-admin/internal/model"
	"github.com/d60-Lab/shop-admin/internal/repository"
	"github.com/d60-Lab/shop-admin/pkg/validate"
)

// OrderService 订单、明细与支付记录
// 每次调用只写一行，重复提交会生成重复行（上游契约如此，非缺陷）
type OrderService interface {
	CreateOrder(ctx context.Context, order *model.Order) (uint, error)
	AddItem(ctx context.Context, item *model.OrderItem) (uint, error)
	RecordPayment(ctx context.Context, payment *model.Payment) (uint, error)
}

type orderService struct {
	orders    repository.OrderRepository
	items     repository.OrderItemRepository
	payments  repository.PaymentRepository
	users     repository.UserRepository
	addresses repository.AddressRepository
	products  repository.ProductRepository
}

func NewOrderService(
	orders repository.OrderRepository,
	items repository.OrderItemRepository,
	payments repository.PaymentRepository,
	users repository.UserRepository,
	addresses repository.AddressRepository,
	products repository.ProductRepository,
) OrderService {
	return &orderService{
		orders:    orders,
		items:     items,
		payments:  payments,
		users:     users,
		addresses: addresses,
		products:  products,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, order *model.Order) (uint, error) {
	errs := validate.Errors{}
	if ok, err := s.users.Exists(ctx, order.UserID); err != nil {
		return 0, err
	} else if !ok {
		errs.Add("user_id", "The selected user_id is invalid.")
	}
	if order.AddressID != nil {
		if ok, err := s.addresses.Exists(ctx, *order.AddressID); err != nil {
			return 0, err
		} else if !ok {
			errs.Add("address_id", "The selected address_id is invalid.")
		}
	}
	if len(errs) > 0 {
		return 0, errs
	}

	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (s *orderService) AddItem(ctx context.Context, item *model.OrderItem) (uint, error) {
	errs := validate.Errors{}
	if ok, err := s.orders.Exists(ctx, item.OrderID); err != nil {
		return 0, err
	} else if !ok {
		errs.Add("order_id", "The selected order_id is invalid.")
	}
	if item.ProductID != nil {
		if ok, err := s.products.Exists(ctx, *item.ProductID); err != nil {
			return 0, err
		} else if !ok {
			errs.Add("product_id", "The selected product_id is invalid.")
		}
	}
	if len(errs) > 0 {
		return 0, errs
	}

	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if err := s.items.Create(ctx, item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (s *orderService) RecordPayment(ctx context.Context, payment *model.Payment) (uint, error) {
	ok, err := s.orders.Exists(ctx, payment.OrderID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, validate.Selected("order_id")
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return 0, err
	}
	return payment.ID, nil
}
