package note

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateNote 上传笔记（multipart 表单: title, description, subject, file）
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		utils.Error(c, http.StatusBadRequest, "title must be at least 3 characters")
		return
	}
	description := strings.TrimSpace(c.PostForm("description"))

	subjectID, err := strconv.Atoi(c.PostForm("subject"))
	if err != nil || subjectID <= 0 {
		utils.Error(c, http.StatusBadRequest, "please select a subject")
		return
	}

	var subject models.Subject
	if err := h.svc.DB.First(&subject, subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "subject not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "database error")
		}
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "please attach a file")
		return
	}
	defer file.Close()

	// 上限来自配置，默认 10MB
	if header.Size > h.svc.Config.MaxUploadSize {
		utils.Error(c, http.StatusBadRequest,
			fmt.Sprintf("file too large, max size is %d MB", h.svc.Config.MaxUploadSize/(1<<20)))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := h.svc.Storage.Put(c, header.Filename, header.Size, file, contentType)
	if err != nil {
		zap.L().Error("file upload to storage failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "file upload failed, try again later")
		return
	}

	note := models.Note{
		Title:        title,
		Description:  description,
		SubjectID:    subject.ID,
		UploadedByID: userID,
		FilePath:     key,
		FileName:     header.Filename,
		FileSize:     header.Size,
		ContentType:  contentType,
	}

	if err := h.svc.DB.Create(&note).Error; err != nil {
		zap.L().Error("create note db error", zap.Error(err))
		// 记录没写进去就把刚传的文件清掉，不留孤儿对象
		_ = h.svc.Storage.Remove(c, key)
		utils.Error(c, http.StatusInternalServerError, "failed to save note")
		return
	}

	h.invalidateRecentCache(c)

	utils.Success(c, note)
}
