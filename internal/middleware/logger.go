package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggerMiddleware 使用 Zap 记录结构化日志
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		// 处理请求
		c.Next()

		cost := time.Since(start)

		// 根据状态码决定日志级别
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.Duration("latency", cost),
		}

		// 鉴权过的请求带上用户 ID，排查下载/收藏问题好用
		if uid, exists := c.Get("user_id"); exists {
			fields = append(fields, zap.Any("user_id", uid))
		}

		// 如果有错误，记录错误信息
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if status >= 500 {
			zap.L().Error("Request failed", fields...)
		} else {
			zap.L().Info("Request success", fields...)
		}
	}
}
