package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics.
var (
	ResolveDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "verseref",
			Name:      "resolve_decisions_total",
			Help:      "Resolution outcomes by decision",
		},
		[]string{"decision"}, // auto / needs_user_choice / not_found
	)

	ResolveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "verseref",
			Name:      "resolve_duration_seconds",
			Help:      "End-to-end resolution duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	SimilarityDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "verseref",
			Name:      "similarity_scan_duration_seconds",
			Help:      "Similarity corpus scan duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	SimilarityCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "verseref",
			Name:      "similarity_cache_total",
			Help:      "Similarity response cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	CorpusVerses = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "verseref",
			Name:      "corpus_verses",
			Help:      "Number of verses in the loaded corpus",
		},
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers engine metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(ResolveDecisionsTotal)
	prometheus.MustRegister(ResolveDuration)
	prometheus.MustRegister(SimilarityDuration)
	prometheus.MustRegister(SimilarityCacheTotal)
	prometheus.MustRegister(CorpusVerses)
	engineMetricsRegistered = true
}
