package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Hello 连通性自检
// @Summary Hello
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/hello [get]
func (h *Handler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello this is jeffrey"})
}

// Healthz 存活探针
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
