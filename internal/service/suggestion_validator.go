package service

import (
	"encoding/json"
	"fmt"

	"github.com/hireloop/hireloop/internal/dto"
	"github.com/hireloop/hireloop/internal/model"
)

// ValidateSuggestions is the single trust boundary between raw language-model
// output and the rest of the system. It accepts a JSON document iff it is a
// non-empty array whose every element carries a string "text" and a
// "difficulty" that is exactly one of the three allowed levels. Anything else
// is rejected wholesale with a SchemaValidationError; callers never see
// partially validated data.
//
// Item count is deliberately not checked. The model is asked for ten items,
// but a shorter shape-valid list is still usable.
func ValidateSuggestions(raw []byte) ([]dto.QuestionSuggestion, error) {
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &SchemaValidationError{Reason: fmt.Sprintf("not a JSON array of objects: %v", err)}
	}
	if len(items) == 0 {
		return nil, &SchemaValidationError{Reason: "suggestion list is empty"}
	}

	suggestions := make([]dto.QuestionSuggestion, 0, len(items))
	for i, item := range items {
		textVal, ok := item["text"]
		if !ok {
			return nil, &SchemaValidationError{Reason: fmt.Sprintf("item %d is missing the text field", i)}
		}
		text, ok := textVal.(string)
		if !ok || text == "" {
			return nil, &SchemaValidationError{Reason: fmt.Sprintf("item %d has a non-string or empty text field", i)}
		}

		diffVal, ok := item["difficulty"]
		if !ok {
			return nil, &SchemaValidationError{Reason: fmt.Sprintf("item %d is missing the difficulty field", i)}
		}
		difficulty, ok := diffVal.(string)
		if !ok || !model.ValidDifficulty(difficulty) {
			return nil, &SchemaValidationError{Reason: fmt.Sprintf("item %d has difficulty %q, want Easy, Intermediate or Advanced", i, diffVal)}
		}

		suggestions = append(suggestions, dto.QuestionSuggestion{Text: text, Difficulty: difficulty})
	}
	return suggestions, nil
}
