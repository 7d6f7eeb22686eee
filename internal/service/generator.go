package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/haversine/internal/dataset"
	"github.com/UnknownOlympus/haversine/internal/generator"
	"github.com/UnknownOlympus/haversine/internal/metrics"
)

// GeneratorService creates a synthetic dataset and stores it.
type GeneratorService struct {
	log       *slog.Logger         // Logger for logging service activities
	sink      dataset.Sink         // Destination of the pairs
	generator *generator.Generator // Random pair source
	metrics   *metrics.Metrics     // Metrics for tracking run results
	out       io.Writer            // Receives the status lines
	now       func() time.Time     // Clock used to time the phases
}

// NewGeneratorService creates a new instance of GeneratorService. Status lines are written to out.
func NewGeneratorService(
	log *slog.Logger,
	sink dataset.Sink,
	gen *generator.Generator,
	metrics *metrics.Metrics,
	out io.Writer,
) *GeneratorService {
	return &GeneratorService{
		log:       log,
		sink:      sink,
		generator: gen,
		metrics:   metrics,
		out:       out,
		now:       time.Now,
	}
}

// Run generates count pairs and overwrites the sink with them.
func (gs *GeneratorService) Run(ctx context.Context, count int) error {
	if count < 0 {
		gs.metrics.RunErrors.WithLabelValues(ErrorClass(generator.ErrInvalidCount)).Inc()
		return fmt.Errorf("%w: %d", generator.ErrInvalidCount, count)
	}

	fmt.Fprintf(gs.out, "Generating %d lat/lon pairs\n", count)

	start := gs.now()
	pairs, err := gs.generator.Generate(count)
	if err != nil {
		gs.metrics.RunErrors.WithLabelValues(ErrorClass(err)).Inc()
		return fmt.Errorf("failed to generate pairs: %w", err)
	}
	gs.metrics.PhaseSeconds.WithLabelValues(metrics.PhaseGenerate).Observe(gs.now().Sub(start).Seconds())

	fmt.Fprintf(gs.out, "Saving to %s\n", gs.sink)

	start = gs.now()
	if err = gs.sink.Save(ctx, pairs); err != nil {
		gs.metrics.RunErrors.WithLabelValues(ErrorClass(err)).Inc()
		return fmt.Errorf("failed to save pairs: %w", err)
	}
	gs.metrics.PhaseSeconds.WithLabelValues(metrics.PhaseSave).Observe(gs.now().Sub(start).Seconds())
	gs.metrics.PairsGenerated.Add(float64(count))

	gs.log.InfoContext(ctx, "Dataset generated", "count", count, "destination", gs.sink.String())

	return nil
}
