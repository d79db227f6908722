package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/shop-admin/internal/middleware"
	"github.com/d60-Lab/shop-admin/pkg/response"
	"github.com/d60-Lab/shop-admin/pkg/validate"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register 注册后台账号
// @Summary 注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	respondCreate(c, id, err)
}

// Login 登录，签发会话 token
// @Summary 登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !bind(c, &req) {
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var errs validate.Errors
		if errors.As(err, &errs) {
			response.ValidationError(c, errs)
			return
		}
		response.InternalError(c, err)
		return
	}
	// 会话 cookie + body 双通道返回
	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "success", "token": token})
}

// Logout 注销当前会话
// @Summary 注销
// @Tags 认证
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	sid := c.GetString(middleware.ContextSessionID)
	if sid != "" {
		if err := h.auth.Logout(c.Request.Context(), sid); err != nil {
			response.InternalError(c, err)
			return
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Dashboard 后台首页，仅登录可见
// @Summary 后台首页
// @Tags 认证
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)
	user, err := h.auth.Profile(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
