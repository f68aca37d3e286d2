package models

import "time"

// Branch 工程学科大类 (CSE, ECE...)
type Branch struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:150;uniqueIndex"`
	Icon string `json:"icon" gorm:"size:50;default:🎓"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type Subject struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:100"`
	BranchID    *uint   `json:"branch_id" gorm:"index"`
	Branch      *Branch `json:"branch,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Icon        string  `json:"icon" gorm:"size:50;default:📘"`
	Description string  `json:"description" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// DisplayName 带大类名的展示名，比如 "Operating Systems (CSE)"
func (s Subject) DisplayName() string {
	if s.Branch != nil {
		return s.Name + " (" + s.Branch.Name + ")"
	}
	return s.Name
}
