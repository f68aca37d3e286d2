package models

import "time"

// Download 下载流水，一次下载一行，独立于 Note.Downloads 计数
type Download struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"index"`
	NoteID uint `json:"note_id" gorm:"index"`

	User User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Note Note `json:"note,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	DownloadedAt time.Time `json:"downloaded_at" gorm:"autoCreateTime"`
}
