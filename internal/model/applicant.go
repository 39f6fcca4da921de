package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ApplicantStatusNotStarted = "Not Started"
	ApplicantStatusCompleted  = "Completed"
)

type Applicant struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	InterviewID uint   `json:"interview_id" gorm:"not null;index"`
	Title       string `json:"title"`
	Firstname   string `json:"firstname" gorm:"not null"`
	Surname     string `json:"surname" gorm:"not null"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email" gorm:"not null"`
	// InterviewStatus only ever moves forward: "Not Started" -> "Completed".
	InterviewStatus string `json:"interview_status" gorm:"not null;default:'Not Started'"`
	// AccessKey is the opaque credential embedded in the applicant's
	// interview link; sessions are addressed by it instead of the row ID.
	AccessKey string         `json:"access_key" gorm:"uniqueIndex;not null"`
	CreatedBy string         `json:"created_by,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
