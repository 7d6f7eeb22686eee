package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/haversine/internal/dataset"
	"github.com/UnknownOlympus/haversine/internal/haversine"
	"github.com/UnknownOlympus/haversine/internal/metrics"
	"github.com/UnknownOlympus/haversine/internal/models"
)

// BenchmarkService loads a dataset and measures how fast its haversine distances are computed.
type BenchmarkService struct {
	log     *slog.Logger          // Logger for logging service activities
	source  dataset.Source        // Source of the pairs
	calc    *haversine.Calculator // Calculator holding the sphere radius
	metrics *metrics.Metrics      // Metrics for tracking run results
	now     func() time.Time      // Clock used to time the phases
}

// NewBenchmarkService creates a new instance of BenchmarkService.
func NewBenchmarkService(
	log *slog.Logger,
	source dataset.Source,
	calc *haversine.Calculator,
	metrics *metrics.Metrics,
) *BenchmarkService {
	return &BenchmarkService{
		log:     log,
		source:  source,
		calc:    calc,
		metrics: metrics,
		now:     time.Now,
	}
}

// Run times the load phase and the compute phase one after the other and returns the report.
// Nothing is reported when either phase fails.
func (bs *BenchmarkService) Run(ctx context.Context) (*models.Report, error) {
	loadStart := bs.now()
	pairs, err := bs.source.Load(ctx)
	loadTime := bs.now().Sub(loadStart)
	if err != nil {
		bs.metrics.RunErrors.WithLabelValues(ErrorClass(err)).Inc()
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	bs.metrics.PhaseSeconds.WithLabelValues(metrics.PhaseLoad).Observe(loadTime.Seconds())
	bs.log.DebugContext(ctx, "Dataset loaded", "count", len(pairs), "duration", loadTime)

	computeStart := bs.now()
	average, err := bs.calc.Mean(pairs)
	computeTime := bs.now().Sub(computeStart)
	if err != nil {
		bs.metrics.RunErrors.WithLabelValues(ErrorClass(err)).Inc()
		return nil, fmt.Errorf("failed to compute mean distance: %w", err)
	}
	bs.metrics.PhaseSeconds.WithLabelValues(metrics.PhaseCompute).Observe(computeTime.Seconds())

	report := &models.Report{
		Count:       len(pairs),
		Average:     average,
		LoadTime:    loadTime,
		ComputeTime: computeTime,
		Throughput:  throughput(len(pairs), computeTime),
	}
	if report.Throughput == 0 {
		bs.log.WarnContext(ctx, "Compute phase too short to measure, throughput reported as zero",
			"count", report.Count)
	}

	bs.metrics.PairsProcessed.Add(float64(report.Count))
	bs.metrics.Throughput.Set(report.Throughput)
	bs.metrics.AverageDistance.Set(report.Average)

	bs.log.InfoContext(ctx, "Benchmark finished",
		"count", report.Count,
		"average_km", report.Average,
		"load_time", report.LoadTime,
		"compute_time", report.ComputeTime,
		"throughput", report.Throughput,
	)

	return report, nil
}

// throughput returns count per second of elapsed, or zero when elapsed is not positive.
func throughput(count int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}

	return float64(count) / elapsed.Seconds()
}

// PrintReport writes the report as the four human-readable result lines.
func PrintReport(w io.Writer, report *models.Report) error {
	_, err := fmt.Fprintf(w,
		"Average distance: %.6f km\nLoad time: %.6f s\nCompute time: %.6f s\nThroughput: %.2f distances per second\n",
		report.Average,
		report.LoadTime.Seconds(),
		report.ComputeTime.Seconds(),
		report.Throughput,
	)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
