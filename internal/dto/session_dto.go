package dto

// SessionQuestionDTO is what an applicant sees for the current question.
// Difficulty is deliberately not exposed to the applicant.
type SessionQuestionDTO struct {
	QuestionID    uint   `json:"question_id"`
	Text          string `json:"text"`
	Index         int    `json:"index"`
	TotalQuestion int    `json:"total_questions"`
	CaptureState  string `json:"capture_state"`
}

// CaptureActionDTO drives the per-question recording state machine. The
// browser performs the actual speech-to-text and streams transcript fragments
// with "append" actions while recording.
type CaptureActionDTO struct {
	Action     string `json:"action" binding:"required,oneof=start append pause resume device_denied device_granted"`
	Transcript string `json:"transcript,omitempty"`
}

type CaptureStateDTO struct {
	State      string `json:"state"`
	Transcript string `json:"transcript"`
}

// AdvanceResultDTO is the outcome of submitting the current answer.
// Exactly one of NextQuestion or SessionComplete is meaningful.
type AdvanceResultDTO struct {
	SessionComplete bool                `json:"session_complete"`
	NextQuestion    *SessionQuestionDTO `json:"next_question,omitempty"`
}
