package note

import (
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/Shreyash123-code/AICTE-project1/internal/infra/storage"
	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var imageExts = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true,
}

var textExts = map[string]bool{
	"txt": true, "py": true, "js": true, "html": true, "css": true,
}

// PreviewNote 在浏览器里内嵌预览，按扩展名分流：
// 图片/文本/PDF 各包一层 HTML（禁右键、禁选中、藏工具栏），
// 其它类型直接原样回传，让浏览器自己处理。
// 预览不算下载，不动计数器。
func (h *NoteHandler) PreviewNote(c *gin.Context) {
	note, ok := h.findNote(c)
	if !ok {
		return
	}

	if note.FilePath == "" {
		utils.Error(c, http.StatusNotFound, "this note has no file attached")
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(note.FileName), "."))

	switch {
	case imageExts[ext]:
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte(imagePreviewHTML(h.svc.Storage.URL(note.FilePath))))

	case textExts[ext]:
		obj, err := h.svc.Storage.Open(c, note.FilePath)
		if err != nil {
			h.fileUnavailable(c, err)
			return
		}
		defer obj.Close()

		content, err := io.ReadAll(obj)
		if err != nil {
			zap.L().Error("read text preview failed", zap.Error(err))
			utils.Error(c, http.StatusInternalServerError, "failed to read file")
			return
		}

		// 不是合法 UTF-8 就退回原样回传，解码失败不算错误
		if !utf8.Valid(content) {
			c.Data(http.StatusOK, rawContentType(note), content)
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte(textPreviewHTML(string(content))))

	case ext == "pdf":
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte(pdfPreviewHTML(h.svc.Storage.URL(note.FilePath))))

	default:
		// 兜底：原样流给浏览器，inline 不强制下载
		obj, err := h.svc.Storage.Open(c, note.FilePath)
		if err != nil {
			h.fileUnavailable(c, err)
			return
		}
		defer obj.Close()
		c.DataFromReader(http.StatusOK, obj.Size, rawContentType(note), obj, nil)
	}
}

// findNote 按路径参数取笔记，处理掉 400/404
func (h *NoteHandler) findNote(c *gin.Context) (*models.Note, bool) {
	id := c.Param("id")

	var note models.Note
	if err := h.svc.DB.First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "note not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "database error")
		}
		return nil, false
	}
	return &note, true
}

// fileUnavailable 文件没了是可恢复状况，不是服务错误
func (h *NoteHandler) fileUnavailable(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrObjectNotFound) {
		utils.Error(c, http.StatusNotFound, "the requested file could not be found on the server")
		return
	}
	zap.L().Error("storage open failed", zap.Error(err))
	utils.Error(c, http.StatusInternalServerError, "storage error")
}

func rawContentType(note *models.Note) string {
	if note.ContentType != "" {
		return note.ContentType
	}
	return "application/octet-stream"
}

func imagePreviewHTML(fileURL string) string {
	return fmt.Sprintf(`<html>
    <head>
        <style>
            body { margin:0; display:flex; justify-content:center; align-items:center; background:#0f172a; height:100vh; overflow:hidden; user-select:none; -webkit-user-select:none; }
            img { max-width:100%%; max-height:100%%; object-fit:contain; pointer-events:none; -webkit-user-drag:none; }
        </style>
    </head>
    <body oncontextmenu="return false;">
        <img src="%s">
    </body>
</html>`, html.EscapeString(fileURL))
}

func textPreviewHTML(content string) string {
	return fmt.Sprintf(`<html>
    <head>
        <style>
            body { margin:0; padding:20px; background:#0f172a; color:#f8fafc; font-family:monospace; line-height:1.5; user-select:none; -webkit-user-select:none; }
            pre { white-space:pre-wrap; word-break:break-all; pointer-events:none; }
        </style>
    </head>
    <body oncontextmenu="return false;">
        <pre>%s</pre>
    </body>
</html>`, html.EscapeString(content))
}

func pdfPreviewHTML(fileURL string) string {
	return fmt.Sprintf(`<html>
    <head>
        <style>
            body { margin:0; padding:0; background:#0f172a; overflow:hidden; }
            .pdf-container { position:relative; width:100%%; height:100vh; background:#0f172a; }
            /* iframe 往上顶 50px，把浏览器自带的 PDF 工具栏藏出视口 */
            iframe { position:absolute; top:-50px; left:0; width:100%%; height:calc(100vh + 50px); border:none; }
            /* 透明遮罩盖住顶部，防止点到被藏起来的工具栏 */
            .top-blocker { position:absolute; top:0; left:0; width:100%%; height:60px; background:transparent; z-index:10; }
        </style>
    </head>
    <body oncontextmenu="return false;">
        <div class="pdf-container">
            <div class="top-blocker"></div>
            <iframe src="%s#toolbar=0&navpanes=0"></iframe>
        </div>
    </body>
</html>`, html.EscapeString(fileURL))
}
