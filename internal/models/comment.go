package models

import "time"

type Comment struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	NoteID uint `json:"note_id" gorm:"index"`
	UserID uint `json:"user_id" gorm:"index"`

	User User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	Text string `json:"text" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
