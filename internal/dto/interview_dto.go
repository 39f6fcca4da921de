package dto

import "time"

type InterviewCreateDTO struct {
	Title       string `json:"title" binding:"required"`
	JobRole     string `json:"job_role" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=Draft Published"`
	Description string `json:"description,omitempty"`
}

type InterviewUpdateDTO struct {
	Title       string `json:"title" binding:"required"`
	JobRole     string `json:"job_role" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=Draft Published"`
	Description string `json:"description,omitempty"`
}

// InterviewSummaryDTO is used for the recruiter's interview list. The counts
// are informational; a failed count read degrades to zero rather than failing
// the whole listing.
type InterviewSummaryDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	JobRole        string    `json:"job_role"`
	Status         string    `json:"status"`
	Description    string    `json:"description,omitempty"`
	QuestionCount  int       `json:"question_count"`
	ApplicantCount int       `json:"applicant_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type InterviewResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	JobRole     string                `json:"job_role"`
	Status      string                `json:"status"`
	Description string                `json:"description,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}
