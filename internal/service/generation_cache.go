package service

import (
	"context"
	"sync"

	"github.com/hireloop/hireloop/internal/dto"
	"golang.org/x/sync/singleflight"
)

// GenerationCache ensures at most one in-flight generation request per
// job-role key. Concurrent callers for the same role share the pending
// result; successful results are kept for the life of the process so a
// repeatedly viewed role never pays for a second model call. Failed attempts
// are not cached: the singleflight entry is forgotten once the call returns,
// so a retry-by-reclick issues a fresh request.
//
// The cache is an explicit, constructor-injected instance rather than
// package-level state, which keeps its lifetime visible and testable.
type GenerationCache struct {
	group singleflight.Group

	mu      sync.RWMutex
	results map[string][]dto.QuestionSuggestion
}

func NewGenerationCache() *GenerationCache {
	return &GenerationCache{results: make(map[string][]dto.QuestionSuggestion)}
}

// GetOrStart returns the cached suggestion list for jobRole, or runs fetch
// exactly once across all concurrent callers and caches its successful result.
func (c *GenerationCache) GetOrStart(
	ctx context.Context,
	jobRole string,
	fetch func(ctx context.Context) ([]dto.QuestionSuggestion, error),
) ([]dto.QuestionSuggestion, error) {
	c.mu.RLock()
	cached, ok := c.results[jobRole]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := c.group.Do(jobRole, func() (any, error) {
		// Re-check under the flight: a previous flight may have finished
		// between the read above and this call being coalesced.
		c.mu.RLock()
		existing, ok := c.results[jobRole]
		c.mu.RUnlock()
		if ok {
			return existing, nil
		}

		suggestions, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.results[jobRole] = suggestions
		c.mu.Unlock()
		return suggestions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]dto.QuestionSuggestion), nil
}
