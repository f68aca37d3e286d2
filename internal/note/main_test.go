package note

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Shreyash123-code/AICTE-project1/config"
	"github.com/Shreyash123-code/AICTE-project1/internal/infra/storage"
	"github.com/Shreyash123-code/AICTE-project1/internal/middleware"
	"github.com/Shreyash123-code/AICTE-project1/internal/models"
	"github.com/Shreyash123-code/AICTE-project1/internal/svc"
	"github.com/Shreyash123-code/AICTE-project1/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB 创建测试数据库（SQLite 内存库，单连接 + 外键开启）
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// 内存库多个连接是多个库，收住只用一条连接
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// 级联删除靠外键，SQLite 默认是关的
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{}, &models.Profile{},
		&models.Branch{}, &models.Subject{},
		&models.Note{}, &models.Bookmark{}, &models.Download{}, &models.Comment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// memoryStore 测试用的内存 BlobStore
type memoryStore struct {
	mu      sync.Mutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string]memoryObject{}}
}

func (m *memoryStore) Put(_ context.Context, fileName string, _ int64, reader io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	key := fmt.Sprintf("notes/%s/%s%s", time.Now().Format("2006/01/02"), uuid.New().String(), ext)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = memoryObject{data: data, contentType: contentType}
	return key, nil
}

func (m *memoryStore) Open(_ context.Context, key string) (*storage.Object, error) {
	m.mu.Lock()
	obj, ok := m.objects[key]
	m.mu.Unlock()
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return &storage.Object{
		ReadCloser:  io.NopCloser(bytes.NewReader(obj.data)),
		Size:        int64(len(obj.data)),
		ContentType: obj.contentType,
	}, nil
}

func (m *memoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memoryStore) URL(key string) string {
	return "/files/" + key
}

func (m *memoryStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

type testEnv struct {
	db     *gorm.DB
	store  *memoryStore
	cfg    *config.Config
	router *gin.Engine
}

// newTestEnv 起一个完整的测试环境，路由表和 main.go 保持一致
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		JWTSecretKey:      "test-secret-key",
		JWTIssuer:         "studnotes-test",
		JWTExpirationTime: time.Hour,
		MaxUploadSize:     10 << 20,
	}

	db := setupTestDB(t)
	store := newMemoryStore()

	svcCtx := &svc.ServiceContext{Config: cfg, DB: db, Storage: store}
	h := NewNoteHandler(svcCtx)

	r := gin.New()

	browse := r.Group("/")
	browse.Use(middleware.OptionalJWT(cfg, nil))
	{
		browse.GET("/notes", h.BrowseNotes)
		browse.GET("/notes/recent", h.RecentNotes)
	}

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(cfg, nil))
	{
		auth.POST("/notes", h.CreateNote)
		auth.GET("/notes/:id", h.GetNote)
		auth.GET("/notes/:id/preview", h.PreviewNote)
		auth.GET("/notes/:id/download", h.DownloadNote)
		auth.POST("/notes/:id/bookmark", h.ToggleBookmark)
		auth.POST("/notes/:id/comments", h.AddComment)
		auth.DELETE("/notes/:id", h.DeleteNote)
		auth.DELETE("/comments/:id", h.DeleteComment)
	}

	return &testEnv{db: db, store: store, cfg: cfg, router: r}
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@test.edu", Password: "x"}
	if err := e.db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (e *testEnv) authHeader(t *testing.T, u *models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(e.cfg, u.ID, u.Username)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func (e *testEnv) createBranch(t *testing.T, name string) *models.Branch {
	t.Helper()
	b := &models.Branch{Name: name, Icon: "🎓"}
	if err := e.db.Create(b).Error; err != nil {
		t.Fatalf("create branch: %v", err)
	}
	return b
}

func (e *testEnv) createSubject(t *testing.T, name string, branch *models.Branch) *models.Subject {
	t.Helper()
	s := &models.Subject{Name: name, Icon: "📘"}
	if branch != nil {
		s.BranchID = &branch.ID
	}
	if err := e.db.Create(s).Error; err != nil {
		t.Fatalf("create subject: %v", err)
	}
	return s
}

// createNote 直接造一条带文件的笔记，内容先写进内存存储
func (e *testEnv) createNote(t *testing.T, title string, subject *models.Subject, uploader *models.User, fileName string, content []byte, contentType string) *models.Note {
	t.Helper()

	key, err := e.store.Put(context.Background(), fileName, int64(len(content)), bytes.NewReader(content), contentType)
	if err != nil {
		t.Fatalf("store put: %v", err)
	}

	n := &models.Note{
		Title:        title,
		SubjectID:    subject.ID,
		UploadedByID: uploader.ID,
		FilePath:     key,
		FileName:     fileName,
		FileSize:     int64(len(content)),
		ContentType:  contentType,
	}
	if err := e.db.Create(n).Error; err != nil {
		t.Fatalf("create note: %v", err)
	}
	return n
}

func (e *testEnv) do(t *testing.T, method, target, auth string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeData 解开 {"code":0,"data":...} 信封
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("decode data: %v (body: %s)", err, w.Body.String())
		}
	}
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
