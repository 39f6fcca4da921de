package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hireloop/hireloop/internal/dto"
	"github.com/rs/zerolog/log"
)

// jsonArrayExpr extracts the JSON array from model output that may be wrapped
// in markdown fences or surrounding prose.
const jsonArrayExpr = `(?s)\[.*\]`

var jsonArrayRegexp = regexp.MustCompile(jsonArrayExpr)

// SuggestionService produces validated question suggestions for a job role.
type SuggestionService interface {
	RequestSuggestions(ctx context.Context, jobRole string) ([]dto.QuestionSuggestion, error)
}

type suggestionService struct {
	llm   GeminiLLMService
	cache *GenerationCache
}

func NewSuggestionService(llm GeminiLLMService, cache *GenerationCache) SuggestionService {
	return &suggestionService{llm: llm, cache: cache}
}

func (s *suggestionService) RequestSuggestions(ctx context.Context, jobRole string) ([]dto.QuestionSuggestion, error) {
	return s.cache.GetOrStart(ctx, jobRole, func(ctx context.Context) ([]dto.QuestionSuggestion, error) {
		raw, err := s.llm.GenerateQuestions(ctx, jobRole)
		if err != nil {
			log.Error().Err(err).Str("jobRole", jobRole).Msg("Question generation request failed")
			return nil, fmt.Errorf("question generation failed: %w", err)
		}

		payload := jsonArrayRegexp.FindString(raw)
		if payload == "" {
			log.Warn().Str("jobRole", jobRole).Str("raw", raw).Msg("Model output contained no JSON array")
			return nil, &SchemaValidationError{Reason: "model output contained no JSON array"}
		}

		suggestions, err := ValidateSuggestions([]byte(payload))
		if err != nil {
			log.Warn().Err(err).Str("jobRole", jobRole).Msg("Model output rejected by schema validation")
			return nil, err
		}
		return suggestions, nil
	})
}
