// Package generator produces synthetic coordinate pairs.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/UnknownOlympus/haversine/internal/models"
)

// DefaultCount is the number of pairs generated when no count is given.
const DefaultCount = 10

// Widths of the sampling ranges; each field is drawn from [-width/2, width/2).
const (
	xRange = 180
	yRange = 360
)

// ErrInvalidCount is returned when the requested number of pairs is not a non-negative integer.
var ErrInvalidCount = errors.New("pair count must be a non-negative integer")

// Generator draws pairs from a uniform pseudo-random source.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator. A nil seed selects a randomly seeded source, so two runs differ;
// a non-nil seed makes the output reproducible.
func New(seed *uint64) *Generator {
	var src rand.Source
	if seed != nil {
		src = rand.NewPCG(*seed, *seed)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &Generator{rnd: rand.New(src)}
}

// Generate returns count pairs with x fields in [-90, 90) and y fields in [-180, 180).
func (g *Generator) Generate(count int) ([]models.Pair, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	pairs := make([]models.Pair, count)
	for i := range pairs {
		pairs[i] = models.Pair{
			X0: g.sample(xRange),
			Y0: g.sample(yRange),
			X1: g.sample(xRange),
			Y1: g.sample(yRange),
		}
	}

	return pairs, nil
}

func (g *Generator) sample(width float64) float64 {
	return (g.rnd.Float64() - 0.5) * width
}

// ParseCount interprets the optional count argument of the generate command.
func ParseCount(args []string) (int, error) {
	if len(args) == 0 {
		return DefaultCount, nil
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("%w: expected at most one argument, got %d", ErrInvalidCount, len(args))
	}

	count, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, args[0])
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	return count, nil
}
