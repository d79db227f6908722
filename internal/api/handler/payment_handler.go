package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/shop-admin/internal/model"
)

type paymentRequest struct {
	OrderID       *uint    `json:"order_id" binding:"required"`
	Amount        *float64 `json:"amount" binding:"required"`
	Provider      *string  `json:"provider"`
	Status        *string  `json:"status"`
	TransactionID *string  `json:"transaction_id"`
}

// CreatePayment 记录一笔支付
// @Summary 新建支付记录
// @Tags 订单
// @Accept json
// @Produce json
// @Param request body paymentRequest true "支付信息"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/payments [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	var req paymentRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.orders.RecordPayment(c.Request.Context(), &model.Payment{
		OrderID:       *req.OrderID,
		Amount:        *req.Amount,
		Provider:      req.Provider,
		Status:        req.Status,
		TransactionID: req.TransactionID,
	})
	respondCreate(c, id, err)
}
