package user

import (
	"net/http"
	"strings"

	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.Error(c, http.StatusBadRequest, "missing token")
		return
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		utils.Error(c, http.StatusBadRequest, "invalid token format")
		return
	}
	tokenString := parts[1]

	// Redis 不在就没有黑名单可写，token 只能等自然过期
	if h.svc.Cache == nil {
		utils.Success(c, gin.H{"message": "logged out"})
		return
	}

	err := utils.AddTokenToBlacklist(h.svc.Cache, tokenString, h.svc.Config.JWTExpirationTime)
	if err != nil {
		zap.L().Error("failed to add token to blacklist",
			zap.Error(err), zap.String("token_part", utils.GetTokenHash(tokenString)))
		utils.Error(c, http.StatusInternalServerError, "failed to logout")
		return
	}

	utils.Success(c, gin.H{"message": "logged out successfully"})
}
