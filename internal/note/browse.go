package note

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 一页固定 12 条，不开放给前端调
const browsePageSize = 12

const recentNotesCacheKey = "notes:recent"

// BrowseNotes 浏览/搜索笔记。
// 过滤条件 branch / subject / q 全部可选，同时给则取交集；
// q 是大小写不敏感的子串匹配，命中标题、描述、科目名、大类名任意一个即算。
// 排序固定为最新在前。页码越界时收敛到第一页/最后一页，不报错。
func (h *NoteHandler) BrowseNotes(c *gin.Context) {
	// Count 和 Find 各走一条新链，避免 gorm 语句复用的坑
	filtered := func() *gorm.DB {
		q := h.svc.DB.Model(&models.Note{}).
			Joins("JOIN subjects ON subjects.id = notes.subject_id").
			Joins("LEFT JOIN branches ON branches.id = subjects.branch_id")

		// 非数字的 id 当没传处理
		if branchID, err := strconv.Atoi(c.Query("branch")); err == nil {
			q = q.Where("subjects.branch_id = ?", branchID)
		}
		if subjectID, err := strconv.Atoi(c.Query("subject")); err == nil {
			q = q.Where("notes.subject_id = ?", subjectID)
		}

		query := strings.TrimSpace(c.Query("q"))
		if query != "" {
			like := "%" + strings.ToLower(query) + "%"
			q = q.Where(
				"LOWER(notes.title) LIKE ? OR LOWER(notes.description) LIKE ? OR LOWER(subjects.name) LIKE ? OR LOWER(branches.name) LIKE ?",
				like, like, like, like,
			)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		zap.L().Error("browse count failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	// 页码夹到合法区间，0 或负数回到第一页，超出末页停在末页
	totalPages := int((total + browsePageSize - 1) / browsePageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	var notes []models.Note
	err = filtered().Select("notes.*").
		Order("notes.created_at DESC").
		Limit(browsePageSize).
		Offset((page - 1) * browsePageSize).
		Preload("Subject.Branch").
		Preload("UploadedBy").
		Find(&notes).Error
	if err != nil {
		zap.L().Error("browse query failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	resp := gin.H{
		"notes":       notes,
		"page":        page,
		"total_pages": totalPages,
		"total":       total,
	}

	// 登录用户顺带返回已收藏的笔记 ID，前端渲染书签状态用（只读，不改任何东西）
	if userID, err := utils.GetUserID(c); err == nil {
		var bookmarkedIDs []uint
		h.svc.DB.Model(&models.Bookmark{}).
			Where("user_id = ?", userID).
			Pluck("note_id", &bookmarkedIDs)
		resp["bookmarked_ids"] = bookmarkedIDs
	}

	utils.Success(c, resp)
}

// RecentNotes 首页数据：最新 6 条 + 总量统计
func (h *NoteHandler) RecentNotes(c *gin.Context) {
	if h.svc.Cache != nil {
		if cached, err := h.svc.Cache.Get(c, recentNotesCacheKey); err == nil {
			var resp gin.H
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				utils.Success(c, resp)
				return
			}
		}
	}

	var notes []models.Note
	err := h.svc.DB.Order("created_at DESC").
		Limit(6).
		Preload("Subject.Branch").
		Preload("UploadedBy").
		Find(&notes).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	var totalNotes, totalBranches int64
	h.svc.DB.Model(&models.Note{}).Count(&totalNotes)
	h.svc.DB.Model(&models.Branch{}).Count(&totalBranches)

	resp := gin.H{
		"recent_notes":   notes,
		"total_notes":    totalNotes,
		"total_branches": totalBranches,
	}

	if h.svc.Cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = h.svc.Cache.SetWithRandomTTL(c, recentNotesCacheKey, string(data), 10*time.Minute)
		}
	}

	utils.Success(c, resp)
}

// 新增/删除笔记后把首页缓存打掉
func (h *NoteHandler) invalidateRecentCache(c *gin.Context) {
	if h.svc.Cache != nil {
		_ = h.svc.Cache.Del(c, recentNotesCacheKey)
	}
}
