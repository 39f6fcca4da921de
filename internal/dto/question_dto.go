package dto

import "time"

type QuestionCreateDTO struct {
	Text       string `json:"text" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required,oneof=Easy Intermediate Advanced"`
}

type QuestionUpdateDTO struct {
	Text       string `json:"text" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required,oneof=Easy Intermediate Advanced"`
}

type QuestionResponseDTO struct {
	ID               uint      `json:"id"`
	InterviewID      uint      `json:"interview_id"`
	Text             string    `json:"text"`
	Difficulty       string    `json:"difficulty"`
	OrderInInterview int       `json:"order_in_interview"`
	CreatedAt        time.Time `json:"created_at"`
}
