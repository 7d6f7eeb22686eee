package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/haversine/internal/repository"
)

// StoreType represents the kind of dataset store.
type StoreType string

const (
	// StoreTypeFile keeps the dataset in a JSON file.
	StoreTypeFile StoreType = "file"
	// StoreTypeMemory keeps the dataset in process memory.
	StoreTypeMemory StoreType = "memory"
	// StoreTypePostgres keeps the dataset in a PostgreSQL table.
	StoreTypePostgres StoreType = "postgres"
)

// StoreConfig holds configuration for creating a dataset store.
type StoreConfig struct {
	Type   StoreType    // Type of store to create
	Path   string       // Path of the JSON file (file store)
	DSN    string       // Connection string (postgres store)
	Logger *slog.Logger // Logger for the store
}

// NewStore creates a dataset store based on the provided configuration.
//
// Supported store types:
// - "file": JSON file at Path (DefaultFilename when empty)
// - "memory": empty in-process store
// - "postgres": coordinate_pairs table reachable through DSN
//
// Returns an error if the store type is unsupported or if the store cannot be opened.
func NewStore(ctx context.Context, config StoreConfig) (Store, error) {
	switch config.Type {
	case StoreTypeFile:
		return newFileStore(config), nil
	case StoreTypeMemory:
		return NewMemoryStore(nil), nil
	case StoreTypePostgres:
		return newPostgresStore(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}

func newFileStore(config StoreConfig) Store {
	path := config.Path
	if path == "" {
		path = DefaultFilename
	}

	return NewFileStore(path, config.Logger)
}

func newPostgresStore(ctx context.Context, config StoreConfig) (Store, error) {
	if config.DSN == "" {
		return nil, errors.New("connection string is required for postgres store")
	}

	pool, err := repository.NewDatabase(ctx, config.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return NewPostgresStore(repository.NewRepository(pool, config.Logger), pool.Close), nil
}
