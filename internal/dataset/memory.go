package dataset

import (
	"context"
	"slices"

	"github.com/UnknownOlympus/haversine/internal/models"
)

// MemoryStore keeps the dataset in process memory. It serves tests and in-process
// pipelines that skip the file round trip.
type MemoryStore struct {
	pairs []models.Pair
}

// NewMemoryStore creates a store preloaded with a copy of pairs.
func NewMemoryStore(pairs []models.Pair) *MemoryStore {
	return &MemoryStore{pairs: slices.Clone(pairs)}
}

func (ms *MemoryStore) String() string {
	return "memory"
}

func (ms *MemoryStore) Close() error {
	return nil
}

func (ms *MemoryStore) Save(_ context.Context, pairs []models.Pair) error {
	ms.pairs = slices.Clone(pairs)

	return nil
}

func (ms *MemoryStore) Load(_ context.Context) ([]models.Pair, error) {
	if ms.pairs == nil {
		return []models.Pair{}, nil
	}

	return slices.Clone(ms.pairs), nil
}
