package note

import (
	"net/http"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeleteNote 删除笔记，只有上传者本人能删。
// 先清对象存储再删记录；文件早就丢了也照样把记录删掉，
// 元数据清理不被存储故障卡住。关联的收藏/评论/下载流水走外键级联。
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	note, ok := h.findNote(c)
	if !ok {
		return
	}

	if note.UploadedByID != userID {
		utils.Error(c, http.StatusForbidden, "you can only delete your own notes")
		return
	}

	if note.FilePath != "" {
		if err := h.svc.Storage.Remove(c, note.FilePath); err != nil {
			zap.L().Warn("blob removal failed, deleting record anyway",
				zap.Error(err), zap.Uint("note_id", note.ID))
		}
	}

	if err := h.svc.DB.Delete(&models.Note{}, note.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete note")
		return
	}

	h.invalidateRecentCache(c)

	utils.Success(c, gin.H{"message": "note deleted"})
}
