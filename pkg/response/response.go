package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/shop-admin/pkg/logger"
	"github.com/d60-Lab/shop-admin/pkg/validate"
)

// Created 插入成功：201 {"status":"success","id":N}
func Created(c *gin.Context, id uint) {
	c.JSON(http.StatusCreated, gin.H{"status": "success", "id": id})
}

// Success 读接口：200 原样返回数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ValidationError 422 {"errors":{field:[msg,...]}}
func ValidationError(c *gin.Context, errs validate.Errors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}

// BadRequest 请求本身不合法（如非法 JSON）
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": msg})
}

func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
}

// InternalError 基础设施失败：记日志，对外不回显细节
func InternalError(c *gin.Context, err error) {
	logger.Error("internal error",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
