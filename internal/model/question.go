package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	DifficultyEasy         = "Easy"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// ValidDifficulty reports whether d is one of the three allowed levels.
func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyIntermediate || d == DifficultyAdvanced
}

type Question struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	InterviewID uint   `json:"interview_id" gorm:"not null;index"`
	Text        string `json:"text" gorm:"type:text;not null"`
	Difficulty  string `json:"difficulty" gorm:"not null"` // "Easy", "Intermediate", "Advanced"
	// OrderInInterview is the walk order used by applicant sessions. It is
	// persisted explicitly so the session walk does not depend on whatever
	// order the store happens to return rows in.
	OrderInInterview int            `json:"order_in_interview" gorm:"not null"`
	CreatedBy        string         `json:"created_by,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
