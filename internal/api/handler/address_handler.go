package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/shop-admin/internal/model"
)

type addressRequest struct {
	UserID       *uint   `json:"user_id"`
	FullName     string  `json:"full_name" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	AddressLine1 string  `json:"address_line1" binding:"required"`
	AddressLine2 *string `json:"address_line2"`
	City         string  `json:"city" binding:"required"`
	State        string  `json:"state" binding:"required"`
	Pincode      string  `json:"pincode" binding:"required"`
	Country      *string `json:"country"`
}

// CreateAddress 新建收货地址
// @Summary 新建收货地址
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body addressRequest true "地址信息"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/addresses [post]
func (h *Handler) CreateAddress(c *gin.Context) {
	var req addressRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.addresses.Create(c.Request.Context(), &model.Address{
		UserID:       req.UserID,
		FullName:     req.FullName,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		Country:      req.Country,
	})
	respondCreate(c, id, err)
}
