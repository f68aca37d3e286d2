package models

import "time"

// 唯一索引保证同一用户对同一笔记最多收藏一次，
// toggle 靠数据库约束判重，不做先查后写
type Bookmark struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"uniqueIndex:idx_bookmark_user_note"`
	NoteID uint `json:"note_id" gorm:"uniqueIndex:idx_bookmark_user_note"`

	User User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Note Note `json:"note,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
