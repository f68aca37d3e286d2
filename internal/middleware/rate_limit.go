package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Shreyash123-code/AICTE-project1/internal/infra/cache"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimitMiddleware 按用户+动作限流，上传/下载接口用。
// rdb 为 nil 或 Redis 出错时直接放行，限流是保护不是功能。
func RateLimitMiddleware(rdb *cache.RedisCache, action string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		userID, err := utils.GetUserID(c)
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}
		key := fmt.Sprintf("rate:limit:%v:%s", userID, action)

		allowed, err := rdb.AllowRequest(c, key, limit, window)
		if err != nil {
			zap.L().Warn("rate limiter redis error", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			utils.Error(c, http.StatusTooManyRequests, "too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
