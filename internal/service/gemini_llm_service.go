package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/hireloop/hireloop/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiLLMService is the language-model boundary. It returns the raw model
// text; callers must run the output through ValidateSuggestions before use,
// because the model is untrusted input regardless of what the prompt asks for.
type GeminiLLMService interface {
	GenerateQuestions(ctx context.Context, jobRole string) (string, error)
}

type geminiLLMService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiLLMService{client: model, cfg: cfg}, nil
}

func (s *geminiLLMService) GenerateQuestions(ctx context.Context, jobRole string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	var prompt strings.Builder
	prompt.WriteString("You are an experienced technical recruiter preparing interview questions.\n")
	prompt.WriteString(fmt.Sprintf("Generate exactly 10 interview questions for the following job role: %q.\n", jobRole))
	prompt.WriteString("Exactly 3 questions must have difficulty \"Easy\", 3 \"Intermediate\" and 4 \"Advanced\".\n\n")
	prompt.WriteString("Respond with ONLY a JSON array, no prose, in this exact shape:\n")
	prompt.WriteString(`[{"text": "question text here", "difficulty": "Easy"}]` + "\n")
	prompt.WriteString("The difficulty field must be exactly one of: Easy, Intermediate, Advanced.\n")

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Str("jobRole", jobRole).Msg("Gemini API error during question generation")
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Str("jobRole", jobRole).Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return fullResponseText, nil
}
