package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/haversine/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	createTableQuery = `
		CREATE TABLE IF NOT EXISTS coordinate_pairs (
			id BIGSERIAL PRIMARY KEY,
			x0 DOUBLE PRECISION NOT NULL,
			y0 DOUBLE PRECISION NOT NULL,
			x1 DOUBLE PRECISION NOT NULL,
			y1 DOUBLE PRECISION NOT NULL
		);
	`
	truncateQuery = `TRUNCATE TABLE coordinate_pairs RESTART IDENTITY;`
	loadQuery     = `
		SELECT x0, y0, x1, y1
		FROM coordinate_pairs
		ORDER BY id ASC;
	`
)

// pairsTable and pairColumns describe the COPY target.
var (
	pairsTable  = pgx.Identifier{"coordinate_pairs"}
	pairColumns = []string{"x0", "y0", "x1", "y1"}
)

// SavePairs replaces the contents of the pairs table with the given pairs.
// Rows are copied in slice order and the serial id keeps that order for LoadPairs.
func (r *Repository) SavePairs(ctx context.Context, pairs []models.Pair) error {
	if _, err := r.db.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create pairs table: %w", err)
	}

	if _, err := r.db.Exec(ctx, truncateQuery); err != nil {
		return fmt.Errorf("failed to truncate pairs table: %w", err)
	}

	copied, err := r.db.CopyFrom(ctx, pairsTable, pairColumns, pgx.CopyFromSlice(len(pairs), func(i int) ([]any, error) {
		p := pairs[i]
		return []any{p.X0, p.Y0, p.X1, p.Y1}, nil
	}))
	if err != nil {
		return fmt.Errorf("failed to copy pairs: %w", err)
	}
	if copied != int64(len(pairs)) {
		return fmt.Errorf("failed to copy pairs: copied %d of %d rows", copied, len(pairs))
	}

	r.log.DebugContext(ctx, "Pairs stored in database", "count", copied)

	return nil
}

// LoadPairs returns every stored pair in insertion order.
func (r *Repository) LoadPairs(ctx context.Context) ([]models.Pair, error) {
	rows, err := r.db.Query(ctx, loadQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query pairs: %w", err)
	}
	defer rows.Close()

	pairs := []models.Pair{}
	for rows.Next() {
		var pair models.Pair
		if errScan := rows.Scan(&pair.X0, &pair.Y0, &pair.X1, &pair.Y1); errScan != nil {
			return nil, fmt.Errorf("failed to scan pair: %w", errScan)
		}
		pairs = append(pairs, pair)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Pairs loaded from database", "count", len(pairs))

	return pairs, nil
}
