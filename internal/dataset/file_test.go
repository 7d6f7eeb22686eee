package dataset_test

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/haversine/internal/dataset"
	"github.com/UnknownOlympus/haversine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	defer filet.CleanUp(t)
	ctx := t.Context()
	logger := discardLogger()
	dir := filet.TmpDir(t, "")

	t.Run("random pairs survive unchanged and in order", func(t *testing.T) {
		rnd := rand.New(rand.NewPCG(3, 5))
		want := make([]models.Pair, 1000)
		for i := range want {
			want[i] = models.Pair{
				X0: (rnd.Float64() - 0.5) * 180,
				Y0: (rnd.Float64() - 0.5) * 360,
				X1: (rnd.Float64() - 0.5) * 180,
				Y1: (rnd.Float64() - 0.5) * 360,
			}
		}
		store := dataset.NewFileStore(filepath.Join(dir, "random.json"), logger)

		require.NoError(t, store.Save(ctx, want))
		got, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty dataset is an empty array", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		store := dataset.NewFileStore(path, logger)

		require.NoError(t, store.Save(ctx, nil))
		assert.True(t, filet.FileSays(t, path, []byte("[]")))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("save overwrites previous content", func(t *testing.T) {
		store := dataset.NewFileStore(filepath.Join(dir, "overwrite.json"), logger)
		first := []models.Pair{{X0: 1, Y0: 2, X1: 3, Y1: 4}, {X0: 5, Y0: 6, X1: 7, Y1: 8}}
		second := []models.Pair{{X0: -1, Y0: -2, X1: -3, Y1: -4}}

		require.NoError(t, store.Save(ctx, first))
		require.NoError(t, store.Save(ctx, second))
		got, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, second, got)
	})

	t.Run("string names the file", func(t *testing.T) {
		path := filepath.Join(dir, "named.json")

		assert.Equal(t, path, dataset.NewFileStore(path, logger).String())
	})
}

func TestFileStore_Load(t *testing.T) {
	defer filet.CleanUp(t)
	ctx := t.Context()
	logger := discardLogger()
	dir := filet.TmpDir(t, "")

	t.Run("success - fields matched by name", func(t *testing.T) {
		file := filet.TmpFile(t, dir, `[
			{"y1": 4, "extra": "ignored", "x1": 3, "y0": 2.5e0, "x0": -1.25},
			{"x0": 0, "y0": 0, "x1": 0, "y1": 1}
		]`)

		got, err := dataset.NewFileStore(file.Name(), logger).Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, []models.Pair{
			{X0: -1.25, Y0: 2.5, X1: 3, Y1: 4},
			{X0: 0, Y0: 0, X1: 0, Y1: 1},
		}, got)
	})

	t.Run("error - missing file", func(t *testing.T) {
		got, err := dataset.NewFileStore(filepath.Join(dir, "absent.json"), logger).Load(ctx)

		require.Nil(t, got)
		require.ErrorIs(t, err, dataset.ErrIO)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	malformed := map[string]string{
		"empty file":         ``,
		"not an array":       `{"x0": 1, "y0": 2, "x1": 3, "y1": 4}`,
		"truncated":          `[{"x0": 1, "y0": 2, "x1": 3`,
		"element not object": `[1, 2, 3]`,
		"missing field":      `[{"x0": 1, "y0": 2, "x1": 3}]`,
		"string value":       `[{"x0": "1", "y0": 2, "x1": 3, "y1": 4}]`,
		"null value":         `[{"x0": null, "y0": 2, "x1": 3, "y1": 4}]`,
		"second record bad":  `[{"x0": 1, "y0": 2, "x1": 3, "y1": 4}, {"x0": 1}]`,
		"missing commas":     `[{"x0": 0 "y0": 0 "x1": 0 "y1": 1}]`,
		"trailing comma":     `[{"x0": 0, "y0": 0, "x1": 0, "y1": 1,}]`,
		"leading zero":       `[{"x0": 01, "y0": 0, "x1": 0, "y1": 1}]`,
		"duplicate field":    `[{"x0": 0, "x0": 5, "y0": 0, "x1": 0, "y1": 1}]`,
		"trailing junk":      `[{"x0": 0, "y0": 0, "x1": 0, "y1": 1}] trailing junk`,
		"two arrays":         `[][{"x0": 0, "y0": 0, "x1": 0, "y1": 1}]`,
	}
	for name, content := range malformed {
		t.Run("error - "+name, func(t *testing.T) {
			file := filet.TmpFile(t, dir, content)

			got, err := dataset.NewFileStore(file.Name(), logger).Load(ctx)

			require.Nil(t, got)
			require.ErrorIs(t, err, dataset.ErrParse)
		})
	}
}

func TestFileStore_Save(t *testing.T) {
	defer filet.CleanUp(t)
	ctx := t.Context()
	dir := filet.TmpDir(t, "")

	t.Run("error - destination directory missing", func(t *testing.T) {
		store := dataset.NewFileStore(filepath.Join(dir, "missing", "pairs.json"), discardLogger())

		err := store.Save(ctx, []models.Pair{{X0: 1}})

		require.ErrorIs(t, err, dataset.ErrIO)
		assert.ErrorContains(t, err, "failed to open")
	})

	t.Run("writes one object per pair", func(t *testing.T) {
		path := filepath.Join(dir, "shape.json")
		store := dataset.NewFileStore(path, discardLogger())

		require.NoError(t, store.Save(ctx, []models.Pair{{X0: 1.5, Y0: -2, X1: 0, Y1: 90}}))

		assert.True(t, filet.FileSays(t, path, []byte(`[{"x0":1.5,"y0":-2,"x1":0,"y1":90}]`)))
	})
}
