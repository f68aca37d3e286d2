package user

import (
	"net/http"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"
	"github.com/Shreyash123-code/AICTE-project1/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (h *UserHandler) Register(c *gin.Context) {
	var req validators.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	var exists models.User
	if h.svc.DB.Where("username = ?", req.Username).First(&exists).RowsAffected > 0 {
		utils.Error(c, http.StatusConflict, "username already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to register")
		return
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashed),
	}
	if err := h.svc.DB.Create(&user).Error; err != nil {
		zap.L().Error("register db error", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "failed to register")
		return
	}

	// 建完账号马上补 Profile，同步显式创建，不搞隐藏的钩子
	if err := ensureProfile(h.svc.DB, user.ID); err != nil {
		zap.L().Error("ensure profile failed", zap.Error(err), zap.Uint("user_id", user.ID))
	}

	utils.Success(c, gin.H{"message": "user registered", "user": gin.H{
		"id":       user.ID,
		"username": user.Username,
	}})
}

// ensureProfile 保证用户有一条 Profile 记录，幂等
func ensureProfile(db *gorm.DB, userID uint) error {
	profile := models.Profile{UserID: userID}
	return db.Where("user_id = ?", userID).FirstOrCreate(&profile).Error
}
