package note

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"
	"github.com/Shreyash123-code/AICTE-project1/internal/validators"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetNote 笔记详情：科目、大类、上传者、评论一起带出来
func (h *NoteHandler) GetNote(c *gin.Context) {
	id := c.Param("id")

	var note models.Note
	err := h.svc.DB.
		Preload("Subject.Branch").
		Preload("UploadedBy").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.User").
		First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "note not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "database error")
		}
		return
	}

	utils.Success(c, gin.H{
		"note":          note,
		"subject_label": note.Subject.DisplayName(),
	})
}

// AddComment 追加评论，最长 500 字符
func (h *NoteHandler) AddComment(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	note, ok := h.findNote(c)
	if !ok {
		return
	}

	var req validators.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "comment must be 1-500 characters")
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		utils.Error(c, http.StatusBadRequest, "comment must be 1-500 characters")
		return
	}

	comment := models.Comment{NoteID: note.ID, UserID: userID, Text: text}
	if err := h.svc.DB.Create(&comment).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to add comment")
		return
	}

	utils.Success(c, comment)
}

// DeleteComment 只有评论作者或笔记所有者能删
func (h *NoteHandler) DeleteComment(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	id := c.Param("id")

	var comment models.Comment
	if err := h.svc.DB.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "comment not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "database error")
		}
		return
	}

	if comment.UserID != userID {
		var note models.Note
		if err := h.svc.DB.First(&note, comment.NoteID).Error; err != nil ||
			note.UploadedByID != userID {
			utils.Error(c, http.StatusForbidden, "you cannot delete this comment")
			return
		}
	}

	if err := h.svc.DB.Delete(&models.Comment{}, comment.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete comment")
		return
	}

	utils.Success(c, gin.H{"message": "comment deleted"})
}
