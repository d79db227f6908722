package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/shop-admin/internal/model"
)

type orderRequest struct {
	UserID           *uint    `json:"user_id" binding:"required"`
	AddressID        *uint    `json:"address_id"`
	TotalAmount      *float64 `json:"total_amount" binding:"required"`
	Status           string   `json:"status" binding:"omitempty,oneof=pending paid shipped delivered cancelled"`
	PaymentMethod    *string  `json:"payment_method"`
	PaymentReference *string  `json:"payment_reference"`
}

type orderItemRequest struct {
	OrderID   *uint    `json:"order_id" binding:"required"`
	ProductID *uint    `json:"product_id"`
	Price     *float64 `json:"price" binding:"required"`
	Quantity  *int     `json:"quantity" binding:"omitempty,min=1"`
}

// CreateOrder 创建订单
// @Summary 创建订单
// @Tags 订单
// @Accept json
// @Produce json
// @Param request body orderRequest true "订单信息"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req orderRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.orders.CreateOrder(c.Request.Context(), &model.Order{
		UserID:           *req.UserID,
		AddressID:        req.AddressID,
		TotalAmount:      *req.TotalAmount,
		Status:           model.OrderStatus(req.Status),
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
	})
	respondCreate(c, id, err)
}

// CreateOrderItem 追加订单明细
// @Summary 新建订单明细
// @Tags 订单
// @Accept json
// @Produce json
// @Param request body orderItemRequest true "明细信息"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/order-items [post]
func (h *Handler) CreateOrderItem(c *gin.Context) {
	var req orderItemRequest
	if !bind(c, &req) {
		return
	}
	item := &model.OrderItem{
		OrderID:   *req.OrderID,
		ProductID: req.ProductID,
		Price:     *req.Price,
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	id, err := h.orders.AddItem(c.Request.Context(), item)
	respondCreate(c, id, err)
}
