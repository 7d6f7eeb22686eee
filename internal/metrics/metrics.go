package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Phase label values of PhaseSeconds.
const (
	PhaseGenerate = "generate"
	PhaseSave     = "save"
	PhaseLoad     = "load"
	PhaseCompute  = "compute"
)

type Metrics struct {
	PairsGenerated  prometheus.Counter
	PairsProcessed  prometheus.Counter
	PhaseSeconds    *prometheus.HistogramVec
	Throughput      prometheus.Gauge
	AverageDistance prometheus.Gauge
	RunErrors       *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		PairsGenerated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "haversine_pairs_generated_total",
			Help: "Total number of generated coordinate pairs.",
		}),
		PairsProcessed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "haversine_pairs_processed_total",
			Help: "Total number of coordinate pairs whose distance was computed.",
		}),
		PhaseSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "haversine_phase_duration_seconds",
			Help:    "Wall-clock duration of each generate/benchmark phase.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"phase"}),
		Throughput: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "haversine_throughput_distances_per_second",
			Help: "Distances computed per second during the last compute phase.",
		}),
		AverageDistance: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "haversine_average_distance_kilometers",
			Help: "Mean haversine distance of the last benchmarked dataset.",
		}),
		RunErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "haversine_run_errors_total",
			Help: "Total number of failed runs by error class.",
		}, []string{"class"}),
	}
}

// Export writes every metric of the gatherer to path in the Prometheus text format.
// An empty path disables the export.
func Export(path string, gatherer prometheus.Gatherer) error {
	if path == "" {
		return nil
	}

	return prometheus.WriteToTextfile(path, gatherer)
}
