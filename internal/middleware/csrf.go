package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/d60-Lab/shop-admin/pkg/response"
)

// CSRF 双提交 cookie 防伪
// 安全方法下发 XSRF-TOKEN cookie；写请求须以 X-XSRF-TOKEN 头回显同值
const (
	CSRFCookie = "XSRF-TOKEN"
	CSRFHeader = "X-XSRF-TOKEN"
)

func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CSRFCookie)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if err != nil || token == "" {
				// cookie 需对 JS 可读（非 HttpOnly），前端从中取值回显
				c.SetCookie(CSRFCookie, uuid.New().String(), 0, "/", "", false, false)
			}
			c.Next()
			return
		}

		header := c.GetHeader(CSRFHeader)
		if err != nil || token == "" || header == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(header)) != 1 {
			response.Forbidden(c, "CSRF token mismatch.")
			c.Abort()
			return
		}
		c.Next()
	}
}
