package metrics

import "github.com/prometheus/client_golang/prometheus"

// Save paths.
const (
	SavePathGenerated = "generated"
	SavePathExplicit  = "explicit"
)

// Store and search Prometheus metrics.
var (
	DocumentsSavedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docman",
			Name:      "documents_saved_total",
			Help:      "Total number of saved documents by id resolution path",
		},
		[]string{"path"}, // "generated" / "explicit"
	)

	DocumentsStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "docman",
			Name:      "documents_stored",
			Help:      "Number of documents currently held in the store",
		},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docman",
			Name:      "search_duration_seconds",
			Help:      "Search evaluation duration in seconds, including searches aborted on a fault",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	SearchMatches = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docman",
			Name:      "search_matches",
			Help:      "Number of documents matched per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	SearchFaultsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "docman",
			Name:      "search_faults_total",
			Help:      "Searches aborted on a document missing a filtered field",
		},
	)
)

var storeMetricsRegistered bool

// RegisterStoreMetrics registers store and search metrics. Must be called once from main.
func RegisterStoreMetrics() {
	if storeMetricsRegistered {
		return
	}
	prometheus.MustRegister(DocumentsSavedTotal)
	prometheus.MustRegister(DocumentsStored)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchMatches)
	prometheus.MustRegister(SearchFaultsTotal)
	storeMetricsRegistered = true
}
