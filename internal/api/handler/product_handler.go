package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/shop-admin/internal/model"
	"github.com/d60-Lab/shop-admin/pkg/response"
)

type productRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Stock       *int     `json:"stock" binding:"required"`
	ImageURL    string   `json:"image_url" binding:"required"`
}

// CreateProduct 新建商品
// @Summary 新建商品
// @Tags 商品目录
// @Accept json
// @Produce json
// @Param request body productRequest true "商品信息"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.catalog.CreateProduct(c.Request.Context(), &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		ImageURL:    req.ImageURL,
	})
	respondCreate(c, id, err)
}

// ListProducts 商品全量列表（店面页用）
// @Summary 商品列表
// @Tags 商品目录
// @Produce json
// @Success 200 {array} model.Product
// @Router /api/getproducts [get]
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, products)
}
