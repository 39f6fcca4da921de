package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hireloop/hireloop/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationCacheDeduplicatesConcurrentCalls(t *testing.T) {
	cache := NewGenerationCache()
	want := []dto.QuestionSuggestion{{Text: "Q", Difficulty: "Easy"}}

	var calls int32
	fetch := func(ctx context.Context) ([]dto.QuestionSuggestion, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(20 * time.Millisecond)
		return want, nil
	}

	const waiters = 8
	var wg sync.WaitGroup
	results := make([][]dto.QuestionSuggestion, waiters)
	errs := make([]error, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.GetOrStart(context.Background(), "Nurse", fetch)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent callers for one role must share a single underlying call")
	for i := 0; i < waiters; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}

func TestGenerationCacheKeepsSuccessfulResults(t *testing.T) {
	cache := NewGenerationCache()
	want := []dto.QuestionSuggestion{{Text: "Q", Difficulty: "Advanced"}}

	var calls int32
	fetch := func(ctx context.Context) ([]dto.QuestionSuggestion, error) {
		atomic.AddInt32(&calls, 1)
		return want, nil
	}

	for i := 0; i < 3; i++ {
		got, err := cache.GetOrStart(context.Background(), "Go Developer", fetch)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, int32(1), calls, "a completed result is reused for the life of the process")
}

func TestGenerationCacheSeparateKeysSeparateCalls(t *testing.T) {
	cache := NewGenerationCache()

	var calls int32
	fetch := func(ctx context.Context) ([]dto.QuestionSuggestion, error) {
		atomic.AddInt32(&calls, 1)
		return []dto.QuestionSuggestion{{Text: "Q", Difficulty: "Easy"}}, nil
	}

	_, err := cache.GetOrStart(context.Background(), "Nurse", fetch)
	require.NoError(t, err)
	_, err = cache.GetOrStart(context.Background(), "Surgeon", fetch)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls)
}

func TestGenerationCacheEvictsFailuresSoRetryIssuesNewCall(t *testing.T) {
	cache := NewGenerationCache()
	want := []dto.QuestionSuggestion{{Text: "Q", Difficulty: "Intermediate"}}

	var calls int32
	fetch := func(ctx context.Context) ([]dto.QuestionSuggestion, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, errors.New("model unreachable")
		}
		return want, nil
	}

	_, err := cache.GetOrStart(context.Background(), "Nurse", fetch)
	require.Error(t, err)

	got, err := cache.GetOrStart(context.Background(), "Nurse", fetch)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, int32(2), calls, "a failed attempt must not be cached")
}
