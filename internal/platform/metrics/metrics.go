package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	QueriesTotal        *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	SummaryCacheHits    prometheus.Counter
	SummaryCacheMisses  prometheus.Counter
	StaleFanoutFailures prometheus.Counter
}

// New creates and registers all metrics on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on a caller-supplied registerer; tests pass a
// fresh registry to avoid duplicate registration panics.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "uniguide_queries_total",
			Help: "Total number of record-store queries served, by collection.",
		}, []string{"collection"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "uniguide_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		SummaryCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "uniguide_summary_cache_hits_total",
			Help: "College summary responses served from cache.",
		}),
		SummaryCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "uniguide_summary_cache_misses_total",
			Help: "College summary responses computed from the store.",
		}),
		StaleFanoutFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "uniguide_stale_fanout_failures_total",
			Help: "Per-student communication sub-fetches that failed and were skipped.",
		}),
	}
}
