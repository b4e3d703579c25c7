package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP host's prometheus collectors
type Metrics struct {
	requests   *prometheus.CounterVec
	numbers    *prometheus.CounterVec
	rejections *prometheus.CounterVec
	runSeconds prometheus.Histogram
}

// NewMetrics registers the collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "calsdt",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		numbers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "calsdt",
			Name:      "numbers_evaluated_total",
			Help:      "Candidate numbers evaluated, by entry point and result.",
		}, []string{"entry", "result"}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "calsdt",
			Name:      "numbers_rejected_total",
			Help:      "Rejected candidate numbers by rejection code.",
		}, []string{"code"}),
		runSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "calsdt",
			Name:      "analysis_run_seconds",
			Help:      "Duration of batch analysis runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
}

func (m *Metrics) observeRun(seconds float64, accepted, total int, rejections map[string]int) {
	m.runSeconds.Observe(seconds)
	m.numbers.WithLabelValues("analyze", "accepted").Add(float64(accepted))
	m.numbers.WithLabelValues("analyze", "rejected").Add(float64(total - accepted))
	for code, n := range rejections {
		m.rejections.WithLabelValues(code).Add(float64(n))
	}
}

func (m *Metrics) observeCheck(accepted bool, code string) {
	if accepted {
		m.numbers.WithLabelValues("check", "accepted").Inc()
		return
	}
	m.numbers.WithLabelValues("check", "rejected").Inc()
	m.rejections.WithLabelValues(code).Inc()
}
