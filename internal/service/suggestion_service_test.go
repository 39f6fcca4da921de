package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	response string
	err      error
	calls    int32
}

func (s *stubLLM) GenerateQuestions(_ context.Context, _ string) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestRequestSuggestionsExtractsFencedJSON(t *testing.T) {
	llm := &stubLLM{response: "Here are your questions:\n```json\n[{\"text\": \"What is a slice?\", \"difficulty\": \"Easy\"}, {\"text\": \"Explain the scheduler.\", \"difficulty\": \"Advanced\"}]\n```\nGood luck!"}
	svc := NewSuggestionService(llm, NewGenerationCache())

	suggestions, err := svc.RequestSuggestions(context.Background(), "Go Developer")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "What is a slice?", suggestions[0].Text)
	assert.Equal(t, "Advanced", suggestions[1].Difficulty)
}

func TestRequestSuggestionsShapeValidShortListPasses(t *testing.T) {
	// The model-side contract is ten items, but the validator checks shape,
	// not count: a two-item list must still pass.
	llm := &stubLLM{response: `[{"text": "Q1", "difficulty": "Easy"}, {"text": "Q2", "difficulty": "Intermediate"}]`}
	svc := NewSuggestionService(llm, NewGenerationCache())

	suggestions, err := svc.RequestSuggestions(context.Background(), "Nurse")
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)
}

func TestRequestSuggestionsRejectsMalformedOutput(t *testing.T) {
	testCases := []struct {
		name     string
		response string
	}{
		{name: "no JSON at all", response: "I cannot help with that."},
		{name: "wrong difficulty enum", response: `[{"text": "Q", "difficulty": "Hard"}]`},
		{name: "empty array", response: `[]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewSuggestionService(&stubLLM{response: tc.response}, NewGenerationCache())

			_, err := svc.RequestSuggestions(context.Background(), "Nurse")
			var schemaErr *SchemaValidationError
			assert.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestRequestSuggestionsCachesPerJobRole(t *testing.T) {
	llm := &stubLLM{response: `[{"text": "Q", "difficulty": "Easy"}]`}
	svc := NewSuggestionService(llm, NewGenerationCache())

	ctx := context.Background()
	_, err := svc.RequestSuggestions(ctx, "Nurse")
	require.NoError(t, err)
	_, err = svc.RequestSuggestions(ctx, "Nurse")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&llm.calls))

	_, err = svc.RequestSuggestions(ctx, "Surgeon")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&llm.calls))
}

func TestRequestSuggestionsRetriesAfterModelFailure(t *testing.T) {
	llm := &stubLLM{err: errors.New("upstream unreachable")}
	svc := NewSuggestionService(llm, NewGenerationCache())

	ctx := context.Background()
	_, err := svc.RequestSuggestions(ctx, "Nurse")
	require.Error(t, err)

	// A failure is not cached: the reclick reaches the model again.
	llm.err = nil
	llm.response = `[{"text": "Q", "difficulty": "Easy"}]`
	suggestions, err := svc.RequestSuggestions(ctx, "Nurse")
	require.NoError(t, err)
	assert.Len(t, suggestions, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&llm.calls))
}
