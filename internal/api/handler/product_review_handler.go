package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/shop-admin/internal/model"
)

type productReviewRequest struct {
	UserID    *uint   `json:"user_id" binding:"required"`
	ProductID *uint   `json:"product_id" binding:"required"`
	Rating    *int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   *string `json:"comment"`
}

// CreateProductReview 新建商品评价
// @Summary 新建商品评价
// @Tags 商品目录
// @Accept json
// @Produce json
// @Param request body productReviewRequest true "评价信息"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/product-reviews [post]
func (h *Handler) CreateProductReview(c *gin.Context) {
	var req productReviewRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.catalog.AddProductReview(c.Request.Context(), &model.ProductReview{
		UserID:    *req.UserID,
		ProductID: *req.ProductID,
		Rating:    *req.Rating,
		Comment:   req.Comment,
	})
	respondCreate(c, id, err)
}
