package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for dataset loading and serving.
type Metrics struct {
	SeasonsLoaded      prometheus.Counter
	SeasonLoadErrors   *prometheus.CounterVec // labels: reason={not_found,invalid_key,malformed,io}
	RecordsParsed      prometheus.Counter
	SeasonLoadDuration prometheus.Histogram

	HTTPRequests       *prometheus.CounterVec // labels: route, code
	SummariesPublished prometheus.Counter
	PublishErrors      prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.SeasonsLoaded,
		m.SeasonLoadErrors,
		m.RecordsParsed,
		m.SeasonLoadDuration,
		m.HTTPRequests,
		m.SummariesPublished,
		m.PublishErrors,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		SeasonsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pollen_stats",
			Name:      "seasons_loaded_total",
			Help:      "Total season datasets parsed successfully.",
		}),
		SeasonLoadErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pollen_stats",
			Name:      "season_load_errors_total",
			Help:      "Season dataset loads that failed, by reason.",
		}, []string{"reason"}),
		RecordsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pollen_stats",
			Name:      "records_parsed_total",
			Help:      "Total daily records parsed across all loads.",
		}),
		SeasonLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pollen_stats",
			Name:      "season_load_duration_seconds",
			Help:      "Duration of opening and parsing one season dataset.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pollen_stats",
			Name:      "http_requests_total",
			Help:      "Season API requests by route and status code.",
		}, []string{"route", "code"}),
		SummariesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pollen_stats",
			Name:      "summaries_published_total",
			Help:      "Season summaries written to Kafka.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pollen_stats",
			Name:      "publish_errors_total",
			Help:      "Season summaries that failed to publish.",
		}),
	}
}
