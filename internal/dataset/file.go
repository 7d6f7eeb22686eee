package dataset

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/UnknownOlympus/haversine/internal/models"
	"github.com/buger/jsonparser"
)

// DefaultFilename is the dataset file shared by the generate and benchmark commands.
const DefaultFilename = "pairs.json"

// pairFields are the keys read from every record, in models.Pair field order.
var pairFields = []string{"x0", "y0", "x1", "y1"}

// FileStore keeps the dataset as a JSON array of {"x0","y0","x1","y1"} objects.
type FileStore struct {
	path string       // Path of the JSON file
	log  *slog.Logger // Logger for logging operations
}

// NewFileStore creates a store backed by the JSON file at path.
func NewFileStore(path string, log *slog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (fs *FileStore) String() string {
	return fs.path
}

// Close is a no-op; the file is only held open during Load and Save.
func (fs *FileStore) Close() error {
	return nil
}

// Save writes pairs to the file, truncating whatever was there before.
func (fs *FileStore) Save(ctx context.Context, pairs []models.Pair) error {
	file, err := os.Create(fs.path)
	if err != nil {
		return fmt.Errorf("%w: failed to open %s for writing: %w", ErrIO, fs.path, err)
	}

	if err = writePairs(file, pairs); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: failed to write %s: %w", ErrIO, fs.path, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %w", ErrIO, fs.path, err)
	}

	fs.log.DebugContext(ctx, "Dataset written", "path", fs.path, "count", len(pairs))

	return nil
}

// Load reads and decodes the whole file.
func (fs *FileStore) Load(ctx context.Context) ([]models.Pair, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrIO, fs.path, err)
	}

	pairs, err := decodePairs(data)
	if err != nil {
		fs.log.ErrorContext(ctx, "Failed to parse dataset", "path", fs.path, "error", err)
		return nil, fmt.Errorf("failed to decode %s: %w", fs.path, err)
	}

	fs.log.DebugContext(ctx, "Dataset read", "path", fs.path, "bytes", len(data), "count", len(pairs))

	return pairs, nil
}

// writePairs streams the array one record at a time so large datasets never exist
// twice in memory.
func writePairs(file *os.File, pairs []models.Pair) error {
	writer := bufio.NewWriter(file)

	if err := writer.WriteByte('['); err != nil {
		return err
	}
	for i := range pairs {
		if i > 0 {
			if _, err := writer.WriteString(", "); err != nil {
				return err
			}
		}
		record, err := json.Marshal(&pairs[i])
		if err != nil {
			return fmt.Errorf("failed to encode record %d: %w", i, err)
		}
		if _, err = writer.Write(record); err != nil {
			return err
		}
	}
	if err := writer.WriteByte(']'); err != nil {
		return err
	}

	return writer.Flush()
}

// decodePairs parses a JSON array of pair objects. Keys are matched by name, unknown
// keys are ignored, and every record must carry each of the four numeric fields once.
func decodePairs(data []byte) ([]models.Pair, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not a valid JSON document", ErrParse)
	}

	pairs := []models.Pair{}

	var recordErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if recordErr != nil {
			return
		}
		if err != nil {
			recordErr = fmt.Errorf("record %d: %w", len(pairs), err)
			return
		}

		pair, err := decodePair(value, dataType)
		if err != nil {
			recordErr = fmt.Errorf("record %d: %w", len(pairs), err)
			return
		}
		pairs = append(pairs, pair)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if recordErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, recordErr)
	}

	return pairs, nil
}

func decodePair(value []byte, dataType jsonparser.ValueType) (models.Pair, error) {
	if dataType != jsonparser.Object {
		return models.Pair{}, fmt.Errorf("expected an object, got %v", dataType)
	}

	var (
		fields [4]float64
		seen   [4]bool
	)
	err := jsonparser.ObjectEach(value, func(key, raw []byte, valueType jsonparser.ValueType, _ int) error {
		idx := slices.Index(pairFields, string(key))
		if idx < 0 {
			return nil
		}
		if seen[idx] {
			return fmt.Errorf("duplicate field %q", pairFields[idx])
		}
		if valueType != jsonparser.Number {
			return fmt.Errorf("field %q is %v, not a number", pairFields[idx], valueType)
		}

		number, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", pairFields[idx], err)
		}
		fields[idx] = number
		seen[idx] = true

		return nil
	})
	if err != nil {
		return models.Pair{}, err
	}

	for idx, ok := range seen {
		if !ok {
			return models.Pair{}, fmt.Errorf("missing field %q", pairFields[idx])
		}
	}

	return models.Pair{X0: fields[0], Y0: fields[1], X1: fields[2], Y1: fields[3]}, nil
}
