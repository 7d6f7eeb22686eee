package dataset

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/haversine/internal/models"
	"github.com/UnknownOlympus/haversine/internal/repository"
)

// PostgresStore adapts the pairs repository to the Store interface.
type PostgresStore struct {
	repo  repository.Interface
	close func()
}

// NewPostgresStore wraps repo; closeFn releases the underlying connection pool and may be nil.
func NewPostgresStore(repo repository.Interface, closeFn func()) *PostgresStore {
	return &PostgresStore{repo: repo, close: closeFn}
}

func (ps *PostgresStore) String() string {
	return "postgres table coordinate_pairs"
}

func (ps *PostgresStore) Close() error {
	if ps.close != nil {
		ps.close()
	}

	return nil
}

func (ps *PostgresStore) Save(ctx context.Context, pairs []models.Pair) error {
	if err := ps.repo.SavePairs(ctx, pairs); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

func (ps *PostgresStore) Load(ctx context.Context) ([]models.Pair, error) {
	pairs, err := ps.repo.LoadPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return pairs, nil
}
