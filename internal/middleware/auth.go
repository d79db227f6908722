package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/shop-admin/internal/service"
	"github.com/d60-Lab/shop-admin/pkg/response"
)

// SessionCookie 登录签发的会话 cookie
const SessionCookie = "session"

// context keys
const (
	ContextUserID    = "user_id"
	ContextSessionID = "session_id"
)

// Auth 会话鉴权：JWT 校验 + redis 会话存在性检查
func Auth(secret string, sessions *service.SessionStore) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		raw := tokenFrom(c)
		if raw == "" {
			response.Unauthorized(c, "Unauthenticated.")
			c.Abort()
			return
		}

		claims := &service.SessionClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid || claims.SessionID == "" {
			response.Unauthorized(c, "Unauthenticated.")
			c.Abort()
			return
		}

		userID, ok, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			response.InternalError(c, err)
			c.Abort()
			return
		}
		if !ok {
			// 会话已注销或过期
			response.Unauthorized(c, "Unauthenticated.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextSessionID, claims.SessionID)
		c.Next()
	}
}

func tokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
