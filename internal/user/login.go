package user

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"
	"github.com/Shreyash123-code/AICTE-project1/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (h *UserHandler) Login(c *gin.Context) {
	var req validators.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	var user models.User
	if h.svc.DB.Where("username = ?", req.Username).First(&user).RowsAffected == 0 {
		utils.Error(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.Error(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(h.svc.Config, user.ID, user.Username)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	// 会话快照塞进 Redis，过期时间跟 JWT 对齐；Redis 不在就算了
	if h.svc.Cache != nil {
		userData := map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
		}
		if userDataJSON, err := json.Marshal(userData); err == nil {
			cacheKey := fmt.Sprintf("user:session:%d", user.ID)
			if err := h.svc.Cache.SetWithRandomTTL(c, cacheKey, string(userDataJSON), h.svc.Config.JWTExpirationTime); err != nil {
				zap.L().Warn("failed to cache user session", zap.Error(err), zap.Uint("user_id", user.ID))
			}
		}
	}

	utils.Success(c, gin.H{"token": token, "user": gin.H{
		"id":       user.ID,
		"username": user.Username,
	}})
}
