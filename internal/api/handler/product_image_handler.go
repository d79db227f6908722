package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/shop-admin/internal/model"
)

type productImageRequest struct {
	ProductID *uint  `json:"product_id" binding:"required"`
	ImageURL  string `json:"image_url" binding:"required,url"`
	IsPrimary *bool  `json:"is_primary"`
}

// CreateProductImage 新建商品图片
// @Summary 新建商品图片
// @Tags 商品目录
// @Accept json
// @Produce json
// @Param request body productImageRequest true "图片信息"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/product-images [post]
func (h *Handler) CreateProductImage(c *gin.Context) {
	var req productImageRequest
	if !bind(c, &req) {
		return
	}
	image := &model.ProductImage{
		ProductID: *req.ProductID,
		ImageURL:  req.ImageURL,
	}
	if req.IsPrimary != nil {
		image.IsPrimary = *req.IsPrimary
	}
	id, err := h.catalog.AddProductImage(c.Request.Context(), image)
	respondCreate(c, id, err)
}
