package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/svc"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CatalogHandler struct {
	svc *svc.ServiceContext
}

func NewCatalogHandler(svc *svc.ServiceContext) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListBranches 所有大类，带各自的笔记数（首页/页脚用）
func (h *CatalogHandler) ListBranches(c *gin.Context) {
	type branchRow struct {
		ID        uint   `json:"id"`
		Name      string `json:"name"`
		Icon      string `json:"icon"`
		NoteCount int64  `json:"note_count"`
	}

	var rows []branchRow
	err := h.svc.DB.Model(&models.Branch{}).
		Select("branches.id, branches.name, branches.icon, COUNT(notes.id) AS note_count").
		Joins("LEFT JOIN subjects ON subjects.branch_id = branches.id").
		Joins("LEFT JOIN notes ON notes.subject_id = subjects.id").
		Group("branches.id").
		Order("branches.name").
		Scan(&rows).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	utils.Success(c, rows)
}

// ListSubjects 指定大类下的科目，给上传表单的联动下拉框用
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	branchID, err := strconv.Atoi(c.Param("id"))
	if err != nil || branchID <= 0 {
		utils.Error(c, http.StatusBadRequest, "invalid branch id")
		return
	}

	var branch models.Branch
	if err := h.svc.DB.First(&branch, branchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "branch not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "database error")
		}
		return
	}

	type subjectRow struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Icon string `json:"icon"`
	}

	var rows []subjectRow
	err = h.svc.DB.Model(&models.Subject{}).
		Select("id, name, icon").
		Where("branch_id = ?", branch.ID).
		Order("name").
		Scan(&rows).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	utils.Success(c, rows)
}
