package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 统一响应格式：{"code":0,"data":...} / {"code":404,"error":"..."}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "data": data})
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"code": status, "error": msg})
}
