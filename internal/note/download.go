package note

import (
	"fmt"
	"net/http"
	"path"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DownloadNote 强制附件下载并记账。
// 先确认文件句柄能打开，再做两个落库动作：
// 计数器原子 +1（数据库侧 increment，不走读改写）+ 追加一条下载流水。
// 之后才开始传字节，传输中断不回滚，计数统计的是发起的下载。
func (h *NoteHandler) DownloadNote(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	note, ok := h.findNote(c)
	if !ok {
		return
	}

	if note.FilePath == "" {
		utils.Error(c, http.StatusNotFound, "this note has no file attached")
		return
	}

	obj, err := h.svc.Storage.Open(c, note.FilePath)
	if err != nil {
		h.fileUnavailable(c, err)
		return
	}
	defer obj.Close()

	if err := h.svc.DB.Model(&models.Note{}).
		Where("id = ?", note.ID).
		UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error; err != nil {
		zap.L().Error("download counter increment failed", zap.Error(err), zap.Uint("note_id", note.ID))
	}
	if err := h.svc.DB.Create(&models.Download{UserID: userID, NoteID: note.ID}).Error; err != nil {
		zap.L().Error("download record insert failed", zap.Error(err), zap.Uint("note_id", note.ID))
	}

	// 只暴露原始文件名，不泄漏存储路径
	filename := path.Base(note.FileName)
	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filename),
	}
	c.DataFromReader(http.StatusOK, obj.Size, rawContentType(note), obj, extraHeaders)
}
