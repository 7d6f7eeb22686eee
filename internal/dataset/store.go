// Package dataset loads and saves the ordered list of coordinate pairs shared by
// the generate and benchmark commands.
package dataset

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/haversine/internal/models"
)

// Common errors for dataset stores.
var (
	ErrIO    = errors.New("dataset I/O failed")
	ErrParse = errors.New("malformed dataset")
)

// Source is an interface that defines a method for loading every pair of a dataset
// in the order it was saved.
type Source interface {
	Load(ctx context.Context) ([]models.Pair, error)
}

// Sink replaces the contents of a dataset with the given pairs.
// String names the destination for status messages.
type Sink interface {
	Save(ctx context.Context, pairs []models.Pair) error
	String() string
}

// Store is a dataset that can be both written and read back.
type Store interface {
	Source
	Sink
	Close() error
}
