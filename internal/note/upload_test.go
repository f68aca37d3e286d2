package note

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"testing"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
)

// multipartNote 组装一个上传表单，fileContent 为 nil 时不带文件字段
func multipartNote(t *testing.T, fields map[string]string, fileName string, fileContent []byte, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if fileContent != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
		h.Set("Content-Type", contentType)
		fw, err := mw.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(fileContent); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf, mw.FormDataContentType()
}

func (e *testEnv) upload(t *testing.T, auth string, fields map[string]string, fileName string, fileContent []byte, fileType string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartNote(t, fields, fileName, fileContent, fileType)
	req := httptest.NewRequest("POST", "/notes", body)
	req.Header.Set("Content-Type", contentType)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestCreateNote(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "uploader")
	branch := env.createBranch(t, "CSE")
	subject := env.createSubject(t, "Networks", branch)
	auth := env.authHeader(t, user)

	content := []byte("tcp handshake notes")
	w := env.upload(t, auth, map[string]string{
		"title":       "TCP in one page",
		"description": "handshake and teardown",
		"subject":     strconv.Itoa(int(subject.ID)),
	}, "tcp.txt", content, "text/plain")
	wantStatus(t, w, 200)

	var created models.Note
	decodeData(t, w, &created)
	if created.Title != "TCP in one page" {
		t.Errorf("title = %q", created.Title)
	}
	if created.FileName != "tcp.txt" || created.FileSize != int64(len(content)) {
		t.Errorf("file meta = %q/%d", created.FileName, created.FileSize)
	}

	// 行和对象都要落地
	var stored models.Note
	if err := env.db.First(&stored, created.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.UploadedByID != user.ID || stored.SubjectID != subject.ID {
		t.Errorf("ownership = user %d subject %d", stored.UploadedByID, stored.SubjectID)
	}
	if !env.store.has(stored.FilePath) {
		t.Errorf("blob not stored at %q", stored.FilePath)
	}
	if stored.Downloads != 0 {
		t.Errorf("fresh note downloads = %d", stored.Downloads)
	}
}

func TestCreateNoteValidation(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "uploader")
	branch := env.createBranch(t, "CSE")
	subject := env.createSubject(t, "Networks", branch)
	auth := env.authHeader(t, user)
	sid := strconv.Itoa(int(subject.ID))

	tests := []struct {
		name   string
		fields map[string]string
		file   []byte
		want   int
	}{
		{"title too short", map[string]string{"title": "ab", "subject": sid}, []byte("x"), 400},
		{"missing subject", map[string]string{"title": "valid title"}, []byte("x"), 400},
		{"non-numeric subject", map[string]string{"title": "valid title", "subject": "abc"}, []byte("x"), 400},
		{"unknown subject", map[string]string{"title": "valid title", "subject": "424242"}, []byte("x"), 404},
		{"missing file", map[string]string{"title": "valid title", "subject": sid}, nil, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.upload(t, auth, tt.fields, "f.txt", tt.file, "text/plain")
			wantStatus(t, w, tt.want)
		})
	}

	// 全部被拒，库里不能有行，存储里不能有对象
	var count int64
	env.db.Model(&models.Note{}).Count(&count)
	if count != 0 {
		t.Errorf("notes created by rejected uploads: %d", count)
	}
}

func TestCreateNoteSizeLimit(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "uploader")
	branch := env.createBranch(t, "CSE")
	subject := env.createSubject(t, "Networks", branch)
	auth := env.authHeader(t, user)

	// 把上限调小，避免真造 10MB 的测试负载
	env.cfg.MaxUploadSize = 1 << 10

	w := env.upload(t, auth, map[string]string{
		"title":   "oversized dump",
		"subject": strconv.Itoa(int(subject.ID)),
	}, "big.bin", bytes.Repeat([]byte("a"), (1<<10)+1), "application/octet-stream")
	wantStatus(t, w, 400)

	w = env.upload(t, auth, map[string]string{
		"title":   "fits exactly",
		"subject": strconv.Itoa(int(subject.ID)),
	}, "ok.bin", bytes.Repeat([]byte("a"), 1<<10), "application/octet-stream")
	wantStatus(t, w, 200)
}

func TestCreateNoteRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.upload(t, "", map[string]string{"title": "anon upload", "subject": "1"}, "f.txt", []byte("x"), "text/plain")
	wantStatus(t, w, 401)
}
