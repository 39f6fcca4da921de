package dto

import "time"

type ApplicantCreateDTO struct {
	Title     string `json:"title"`
	Firstname string `json:"firstname" binding:"required"`
	Surname   string `json:"surname" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"required,email"`
}

type ApplicantResponseDTO struct {
	ID              uint      `json:"id"`
	InterviewID     uint      `json:"interview_id"`
	Title           string    `json:"title,omitempty"`
	Firstname       string    `json:"firstname"`
	Surname         string    `json:"surname"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email"`
	InterviewStatus string    `json:"interview_status"`
	AccessKey       string    `json:"access_key"`
	CreatedAt       time.Time `json:"created_at"`
}

// AnswerResponseDTO is used when a recruiter reviews a completed interview.
type AnswerResponseDTO struct {
	ID          uint                `json:"id"`
	QuestionID  uint                `json:"question_id"`
	Question    QuestionResponseDTO `json:"question,omitempty"`
	AnswerText  string              `json:"answer_text"`
	SubmittedAt time.Time           `json:"submitted_at"`
}
