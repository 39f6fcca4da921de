package dto

// QuestionSuggestion is a generated question candidate. It is never persisted;
// promoting one creates a real Question and removes it from the offered set.
type QuestionSuggestion struct {
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
}

type SuggestionListDTO struct {
	JobRole     string               `json:"job_role"`
	Suggestions []QuestionSuggestion `json:"suggestions"`
}

// PromoteSuggestionDTO adds an accepted suggestion to the interview's
// question set at the next order slot.
type PromoteSuggestionDTO struct {
	Text       string `json:"text" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required,oneof=Easy Intermediate Advanced"`
}
