package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/shop-admin/internal/model"
)

type categoryRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
}

// CreateCategory 新建分类
// @Summary 新建商品分类
// @Tags 商品目录
// @Accept json
// @Produce json
// @Param request body categoryRequest true "分类信息"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.catalog.CreateCategory(c.Request.Context(), &model.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	respondCreate(c, id, err)
}
