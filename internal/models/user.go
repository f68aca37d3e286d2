package models

import "time"

type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Username  string `json:"username" gorm:"size:150;uniqueIndex"`
	Email     string `json:"email" gorm:"size:254"`
	FirstName string `json:"first_name" gorm:"size:30"`
	LastName  string `json:"last_name" gorm:"size:30"`
	Password  string `json:"-" gorm:"size:128"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Profile 用户扩展信息，注册时显式创建（不走隐式 hook）
type Profile struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"uniqueIndex"`

	User User `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	Bio    string `json:"bio" gorm:"type:text"`
	Avatar string `json:"avatar" gorm:"size:512"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
