package round

import (
	"context"
	"sync"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu      sync.RWMutex
	results []*entities.RoundResult
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		results: make([]*entities.RoundResult, 0),
	}
}

// SaveRoundResult stores a round result
func (r *MemoryRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append(r.results, copyResult(result))
	return nil
}

// GetRecentResults retrieves the most recent round results
func (r *MemoryRepository) GetRecentResults(ctx context.Context, limit int) ([]*entities.RoundResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.results
	if limit > 0 && len(results) > limit {
		results = results[len(results)-limit:]
	}

	out := make([]*entities.RoundResult, 0, len(results))
	for _, result := range results {
		out = append(out, copyResult(result))
	}
	return out, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
