package note

import (
	"errors"
	"net/http"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ToggleBookmark 收藏/取消收藏。
// 先插、冲突了再删：靠 (user_id, note_id) 唯一索引当裁判，
// 两个并发 toggle 也不会插出两行。连按两次等于没按。
func (h *NoteHandler) ToggleBookmark(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	note, ok := h.findNote(c)
	if !ok {
		return
	}

	// 跳转目标由前端显式传 next 参数，不信 Referer
	next := c.DefaultQuery("next", "/notes")

	bm := models.Bookmark{UserID: userID, NoteID: note.ID}
	err = h.svc.DB.Create(&bm).Error
	if err == nil {
		utils.Success(c, gin.H{"status": "bookmarked", "next": next})
		return
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if err := h.svc.DB.
			Where("user_id = ? AND note_id = ?", userID, note.ID).
			Delete(&models.Bookmark{}).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "failed to remove bookmark")
			return
		}
		utils.Success(c, gin.H{"status": "removed", "next": next})
		return
	}

	utils.Error(c, http.StatusInternalServerError, "failed to bookmark")
}
