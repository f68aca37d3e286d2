package user

import (
	"net/http"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"
	"github.com/Shreyash123-code/AICTE-project1/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dashboard 个人主页：资料 + 自己传的笔记 + 收藏 + 下载历史
func (h *UserHandler) Dashboard(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	var user models.User
	if err := h.svc.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found")
		return
	}

	// 老账号可能还没有 Profile，这里顺手补上
	if err := ensureProfile(h.svc.DB, userID); err != nil {
		zap.L().Error("ensure profile failed", zap.Error(err), zap.Uint("user_id", userID))
	}
	var profile models.Profile
	h.svc.DB.Where("user_id = ?", userID).First(&profile)

	var myNotes []models.Note
	h.svc.DB.Preload("Subject.Branch").
		Where("uploaded_by_id = ?", userID).
		Order("created_at DESC").
		Find(&myNotes)

	var bookmarks []models.Bookmark
	h.svc.DB.Preload("Note.Subject").Preload("Note.UploadedBy").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks)

	var downloads []models.Download
	h.svc.DB.Preload("Note.Subject").
		Where("user_id = ?", userID).
		Order("downloaded_at DESC").
		Find(&downloads)

	utils.Success(c, gin.H{
		"user":            user,
		"profile":         profile,
		"notes":           myNotes,
		"bookmarks":       bookmarks,
		"downloads":       downloads,
		"total_downloads": len(downloads),
	})
}

// UpdateProfile 更新账号资料和 Profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req validators.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request")
		return
	}

	var user models.User
	if err := h.svc.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found")
		return
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if err := h.svc.DB.Save(&user).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	if err := ensureProfile(h.svc.DB, userID); err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update profile")
		return
	}
	if err := h.svc.DB.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"bio": req.Bio, "avatar": req.Avatar}).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	utils.Success(c, gin.H{"message": "profile updated"})
}
