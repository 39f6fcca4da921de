package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	InterviewStatusDraft     = "Draft"
	InterviewStatusPublished = "Published"
)

type Interview struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	JobRole     string         `json:"job_role" gorm:"not null"`
	Status      string         `json:"status" gorm:"not null;default:'Draft'"` // "Draft", "Published"
	Description string         `json:"description,omitempty" gorm:"type:text"`
	CreatedBy   string         `json:"created_by,omitempty"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE"`
	Applicants  []Applicant    `json:"applicants,omitempty" gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
