package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/shop-admin/internal/model"
)

type cartRequest struct {
	UserID *uint `json:"user_id"`
}

type cartItemRequest struct {
	CartID    *uint `json:"cart_id" binding:"required"`
	ProductID *uint `json:"product_id" binding:"required"`
	Quantity  *int  `json:"quantity" binding:"required,min=1"`
}

// CreateCart 新建购物车（可匿名）
// @Summary 新建购物车
// @Tags 购物车
// @Accept json
// @Produce json
// @Param request body cartRequest true "购物车信息"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/carts [post]
func (h *Handler) CreateCart(c *gin.Context) {
	var req cartRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.carts.CreateCart(c.Request.Context(), &model.Cart{UserID: req.UserID})
	respondCreate(c, id, err)
}

// CreateCartItem 加入购物车
// @Summary 新建购物车条目
// @Tags 购物车
// @Accept json
// @Produce json
// @Param request body cartItemRequest true "条目信息"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/cart-items [post]
func (h *Handler) CreateCartItem(c *gin.Context) {
	var req cartItemRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.carts.AddItem(c.Request.Context(), &model.CartItem{
		CartID:    *req.CartID,
		ProductID: *req.ProductID,
		Quantity:  *req.Quantity,
	})
	respondCreate(c, id, err)
}
