package bench

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 하네스가 시행마다 갱신하는 Prometheus 지표
type Metrics struct {
	comparisons *prometheus.CounterVec
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics 지표를 만들고 reg에 등록한다.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hybridbench",
			Name:      "comparisons_total",
			Help:      "Key comparisons performed by sort runs.",
		}, []string{"algorithm", "strategy"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hybridbench",
			Name:      "sort_runs_total",
			Help:      "Sort runs executed per experiment.",
		}, []string{"experiment"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hybridbench",
			Name:      "sort_duration_seconds",
			Help:      "Wall-clock time of a single sort call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"algorithm", "strategy"}),
	}
	reg.MustRegister(m.comparisons, m.runs, m.duration)
	return m
}

func (m *Metrics) observe(r Result) {
	if m == nil {
		return
	}
	m.comparisons.WithLabelValues(r.Algorithm, r.Strategy).Add(float64(r.Comparisons))
	m.runs.WithLabelValues(r.Experiment).Inc()
	m.duration.WithLabelValues(r.Algorithm, r.Strategy).Observe(r.Seconds())
}
