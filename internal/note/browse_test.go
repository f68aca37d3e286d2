package note

import (
	"fmt"
	"testing"
	"time"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
)

type browseResponse struct {
	Notes         []models.Note `json:"notes"`
	Page          int           `json:"page"`
	TotalPages    int           `json:"total_pages"`
	Total         int64         `json:"total"`
	BookmarkedIDs []uint        `json:"bookmarked_ids"`
}

func TestBrowseConjunctivity(t *testing.T) {
	env := newTestEnv(t)

	uploader := env.createUser(t, "uploader")
	cse := env.createBranch(t, "Computer Science & Engineering (CSE)")
	me := env.createBranch(t, "Mechanical Engineering (ME)")
	os := env.createSubject(t, "Operating Systems", cse)
	net := env.createSubject(t, "Computer Networks", cse)
	thermo := env.createSubject(t, "Thermodynamics", me)

	env.createNote(t, "Process Scheduling", os, uploader, "sched.pdf", []byte("a"), "application/pdf")
	env.createNote(t, "Memory Management", os, uploader, "mem.pdf", []byte("b"), "application/pdf")
	env.createNote(t, "TCP Deep Dive", net, uploader, "tcp.pdf", []byte("c"), "application/pdf")
	env.createNote(t, "Heat Cycles", thermo, uploader, "heat.pdf", []byte("d"), "application/pdf")

	tests := []struct {
		name       string
		query      string
		wantTitles map[string]bool
	}{
		{
			name:  "no filters returns everything",
			query: "",
			wantTitles: map[string]bool{
				"Process Scheduling": true, "Memory Management": true,
				"TCP Deep Dive": true, "Heat Cycles": true,
			},
		},
		{
			name:  "branch filter",
			query: fmt.Sprintf("branch=%d", cse.ID),
			wantTitles: map[string]bool{
				"Process Scheduling": true, "Memory Management": true, "TCP Deep Dive": true,
			},
		},
		{
			name:       "branch and subject are conjunctive",
			query:      fmt.Sprintf("branch=%d&subject=%d", cse.ID, os.ID),
			wantTitles: map[string]bool{"Process Scheduling": true, "Memory Management": true},
		},
		{
			name:       "all three filters intersect",
			query:      fmt.Sprintf("branch=%d&subject=%d&q=memory", cse.ID, os.ID),
			wantTitles: map[string]bool{"Memory Management": true},
		},
		{
			name:       "text match on subject name, case-insensitive",
			query:      "q=OPERATING",
			wantTitles: map[string]bool{"Process Scheduling": true, "Memory Management": true},
		},
		{
			name:       "text match on branch name",
			query:      "q=mechanical",
			wantTitles: map[string]bool{"Heat Cycles": true},
		},
		{
			name:  "non-numeric filter values are ignored",
			query: "branch=abc&subject=-",
			wantTitles: map[string]bool{
				"Process Scheduling": true, "Memory Management": true,
				"TCP Deep Dive": true, "Heat Cycles": true,
			},
		},
		{
			name:       "no match",
			query:      "q=quantum",
			wantTitles: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, "GET", "/notes?"+tt.query, "", nil)
			wantStatus(t, w, 200)

			var resp browseResponse
			decodeData(t, w, &resp)

			if len(resp.Notes) != len(tt.wantTitles) {
				t.Fatalf("got %d notes, want %d (query %q)", len(resp.Notes), len(tt.wantTitles), tt.query)
			}
			for _, n := range resp.Notes {
				if !tt.wantTitles[n.Title] {
					t.Errorf("unexpected note %q for query %q", n.Title, tt.query)
				}
			}
			if resp.Total != int64(len(tt.wantTitles)) {
				t.Errorf("total = %d, want %d", resp.Total, len(tt.wantTitles))
			}
		})
	}
}

func TestBrowseOrderingNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	uploader := env.createUser(t, "uploader")
	branch := env.createBranch(t, "CSE")
	subject := env.createSubject(t, "Algorithms", branch)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		n := env.createNote(t, fmt.Sprintf("note-%d", i), subject, uploader, "a.pdf", []byte("x"), "application/pdf")
		env.db.Model(n).UpdateColumn("created_at", base.Add(time.Duration(i)*time.Hour))
	}

	w := env.do(t, "GET", "/notes", "", nil)
	wantStatus(t, w, 200)

	var resp browseResponse
	decodeData(t, w, &resp)

	want := []string{"note-2", "note-1", "note-0"}
	for i, title := range want {
		if resp.Notes[i].Title != title {
			t.Fatalf("position %d = %q, want %q", i, resp.Notes[i].Title, title)
		}
	}
}

func TestBrowsePaginationClamping(t *testing.T) {
	env := newTestEnv(t)

	uploader := env.createUser(t, "uploader")
	branch := env.createBranch(t, "CSE")
	subject := env.createSubject(t, "Algorithms", branch)

	const totalNotes = 30 // 12 + 12 + 6
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < totalNotes; i++ {
		n := env.createNote(t, fmt.Sprintf("note-%02d", i), subject, uploader, "a.pdf", []byte("x"), "application/pdf")
		env.db.Model(n).UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute))
	}

	tests := []struct {
		name      string
		page      string
		wantPage  int
		wantCount int
	}{
		{"first page", "1", 1, 12},
		{"middle page", "2", 2, 12},
		{"last page", "3", 3, 6},
		{"page zero clamps to first", "0", 1, 12},
		{"negative clamps to first", "-5", 1, 12},
		{"beyond last clamps to last", "99", 3, 6},
		{"garbage clamps to first", "xyz", 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, "GET", "/notes?page="+tt.page, "", nil)
			wantStatus(t, w, 200)

			var resp browseResponse
			decodeData(t, w, &resp)

			if resp.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", resp.Page, tt.wantPage)
			}
			if len(resp.Notes) != tt.wantCount {
				t.Errorf("got %d notes, want %d", len(resp.Notes), tt.wantCount)
			}
			// 总数在任何页都不变
			if resp.Total != totalNotes {
				t.Errorf("total = %d, want %d", resp.Total, totalNotes)
			}
			if resp.TotalPages != 3 {
				t.Errorf("total_pages = %d, want 3", resp.TotalPages)
			}
		})
	}
}

func TestBrowseEmptyDatasetStillPageOne(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/notes?page=7", "", nil)
	wantStatus(t, w, 200)

	var resp browseResponse
	decodeData(t, w, &resp)
	if resp.Page != 1 || resp.Total != 0 || len(resp.Notes) != 0 {
		t.Fatalf("empty dataset: page=%d total=%d notes=%d", resp.Page, resp.Total, len(resp.Notes))
	}
}

func TestBrowseBookmarkSideData(t *testing.T) {
	env := newTestEnv(t)

	uploader := env.createUser(t, "uploader")
	reader := env.createUser(t, "reader")
	branch := env.createBranch(t, "CSE")
	subject := env.createSubject(t, "Algorithms", branch)

	n1 := env.createNote(t, "first", subject, uploader, "a.pdf", []byte("x"), "application/pdf")
	env.createNote(t, "second", subject, uploader, "b.pdf", []byte("y"), "application/pdf")

	if err := env.db.Create(&models.Bookmark{UserID: reader.ID, NoteID: n1.ID}).Error; err != nil {
		t.Fatal(err)
	}

	// 匿名请求没有收藏数据
	w := env.do(t, "GET", "/notes", "", nil)
	var anon browseResponse
	decodeData(t, w, &anon)
	if anon.BookmarkedIDs != nil {
		t.Errorf("anonymous browse should not carry bookmarked_ids, got %v", anon.BookmarkedIDs)
	}

	// 登录用户能拿到自己的收藏 ID
	w = env.do(t, "GET", "/notes", env.authHeader(t, reader), nil)
	var authed browseResponse
	decodeData(t, w, &authed)
	if len(authed.BookmarkedIDs) != 1 || authed.BookmarkedIDs[0] != n1.ID {
		t.Errorf("bookmarked_ids = %v, want [%d]", authed.BookmarkedIDs, n1.ID)
	}
}
