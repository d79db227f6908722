package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/shop-admin/internal/service"
	"github.com/d60-Lab/shop-admin/pkg/response"
	"github.com/d60-Lab/shop-admin/pkg/validate"
)

// Handler 聚合全部 HTTP 入口
type Handler struct {
	catalog   service.CatalogService
	carts     service.CartService
	orders    service.OrderService
	addresses service.AddressService
	auth      service.AuthService
}

func New(
	catalog service.CatalogService,
	carts service.CartService,
	orders service.OrderService,
	addresses service.AddressService,
	auth service.AuthService,
) *Handler {
	return &Handler{
		catalog:   catalog,
		carts:     carts,
		orders:    orders,
		addresses: addresses,
		auth:      auth,
	}
}

// bind 绑定并校验 JSON；失败时已写响应（字段错误 422，其余 400）
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if errs, ok := validate.Translate(err); ok {
			response.ValidationError(c, errs)
		} else {
			response.BadRequest(c, err.Error())
		}
		return false
	}
	return true
}

// respondCreate 统一插入响应：字段级错误 422，其余 500，成功 201
func respondCreate(c *gin.Context, id uint, err error) {
	if err != nil {
		var errs validate.Errors
		if errors.As(err, &errs) {
			response.ValidationError(c, errs)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, id)
}
