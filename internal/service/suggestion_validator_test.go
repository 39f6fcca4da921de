package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSuggestions(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
		wantLen int
	}{
		{
			name:    "well formed list",
			input:   `[{"text": "What is a goroutine?", "difficulty": "Easy"}, {"text": "Explain memory barriers.", "difficulty": "Advanced"}]`,
			wantLen: 2,
		},
		{
			name:    "count is not enforced",
			input:   `[{"text": "Tell me about yourself.", "difficulty": "Easy"}, {"text": "Why this role?", "difficulty": "Intermediate"}]`,
			wantLen: 2,
		},
		{
			name:    "extra fields are tolerated",
			input:   `[{"text": "Q", "difficulty": "Intermediate", "rationale": "ignored"}]`,
			wantLen: 1,
		},
		{
			name:    "empty list",
			input:   `[]`,
			wantErr: "empty",
		},
		{
			name:    "not an array",
			input:   `{"text": "Q", "difficulty": "Easy"}`,
			wantErr: "not a JSON array",
		},
		{
			name:    "missing text",
			input:   `[{"difficulty": "Easy"}]`,
			wantErr: "missing the text field",
		},
		{
			name:    "non-string text",
			input:   `[{"text": 42, "difficulty": "Easy"}]`,
			wantErr: "non-string or empty text",
		},
		{
			name:    "missing difficulty",
			input:   `[{"text": "Q"}]`,
			wantErr: "missing the difficulty field",
		},
		{
			name:    "unknown difficulty",
			input:   `[{"text": "Q", "difficulty": "Expert"}]`,
			wantErr: "difficulty",
		},
		{
			name:    "difficulty is case sensitive",
			input:   `[{"text": "Q", "difficulty": "easy"}]`,
			wantErr: "difficulty",
		},
		{
			name:    "one bad item rejects the whole list",
			input:   `[{"text": "Q1", "difficulty": "Easy"}, {"text": "Q2", "difficulty": "Impossible"}]`,
			wantErr: "item 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			suggestions, err := ValidateSuggestions([]byte(tc.input))
			if tc.wantErr != "" {
				require.Error(t, err)
				var schemaErr *SchemaValidationError
				require.ErrorAs(t, err, &schemaErr)
				assert.Contains(t, schemaErr.Error(), tc.wantErr)
				assert.Nil(t, suggestions)
				return
			}
			require.NoError(t, err)
			assert.Len(t, suggestions, tc.wantLen)
		})
	}
}

func TestValidateSuggestionsPreservesOrderAndContent(t *testing.T) {
	input := `[
		{"text": "Describe your last project.", "difficulty": "Easy"},
		{"text": "How do you design an index?", "difficulty": "Advanced"}
	]`

	suggestions, err := ValidateSuggestions([]byte(input))
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Describe your last project.", suggestions[0].Text)
	assert.Equal(t, "Easy", suggestions[0].Difficulty)
	assert.Equal(t, "How do you design an index?", suggestions[1].Text)
	assert.Equal(t, "Advanced", suggestions[1].Difficulty)
}
