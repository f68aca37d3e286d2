package models

import "time"

type Note struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:200"`
	Description string `json:"description" gorm:"type:text"`

	SubjectID uint    `json:"subject_id" gorm:"index"`
	Subject   Subject `json:"subject,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	UploadedByID uint `json:"uploaded_by_id" gorm:"index"`
	UploadedBy   User `json:"uploaded_by,omitempty" gorm:"foreignKey:UploadedByID;constraint:OnDelete:CASCADE"`

	// 对象存储里的 key，形如 notes/2025/11/03/<uuid>.pdf
	FilePath    string `json:"-" gorm:"size:512"`
	FileName    string `json:"file_name" gorm:"size:255"` // 用户上传时的原始文件名
	FileSize    int64  `json:"file_size"`
	ContentType string `json:"content_type" gorm:"size:100"`

	// 只增不减，下载成功一次 +1
	Downloads uint `json:"downloads" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Comments []Comment `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
