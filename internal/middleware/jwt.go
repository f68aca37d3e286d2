package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Shreyash123-code/AICTE-project1/config"
	"github.com/Shreyash123-code/AICTE-project1/internal/infra/cache"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware 解析 Bearer token，把 user_id / username 写进 context。
// rdb 可以为 nil（Redis 挂了就跳过黑名单检查，降级放行）。
func JWTAuthMiddleware(cfg *config.Config, rdb *cache.RedisCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, username, ok := authenticate(c, cfg, rdb)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("username", username)
		c.Next()
	}
}

// OptionalJWT 和 JWTAuthMiddleware 一样解析 token，但没带或无效时不拦截，
// 匿名用户照样能浏览，只是拿不到收藏状态
func OptionalJWT(cfg *config.Config, rdb *cache.RedisCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, username, ok := authenticate(c, cfg, rdb); ok {
			c.Set("user_id", userID)
			c.Set("username", username)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, cfg *config.Config, rdb *cache.RedisCache) (uint, string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, "", false
	}
	tokenString := parts[1]

	if rdb != nil {
		blacklisted, err := utils.IsTokenBlacklisted(rdb, tokenString)
		if err != nil {
			// Redis 故障不阻塞请求，签名校验还在
			zap.L().Warn("blacklist check failed, skipping", zap.Error(err))
		} else if blacklisted {
			return 0, "", false
		}
	}

	token, err := utils.ValidateToken(cfg, tokenString)
	if err != nil {
		return 0, "", false
	}

	claims, err := utils.ExtractClaims(token)
	if err != nil {
		return 0, "", false
	}

	uidStr, _ := claims["user_id"].(string)
	uid, err := strconv.ParseUint(uidStr, 10, 32)
	if err != nil {
		return 0, "", false
	}

	username, _ := claims["username"].(string)
	return uint(uid), username, true
}
