package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is written exactly once per (interview, question, applicant) when the
// session walker advances past a question. An empty AnswerText is a valid
// skipped answer, not an error.
type Answer struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	InterviewID uint           `json:"interview_id" gorm:"not null;index;uniqueIndex:idx_answer_identity"`
	QuestionID  uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_identity"`
	ApplicantID uint           `json:"applicant_id" gorm:"not null;index;uniqueIndex:idx_answer_identity"`
	Question    Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerText  string         `json:"answer_text" gorm:"type:text"`
	CreatedBy   string         `json:"created_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
