package obs

import (
	"colony-route-service/internal/colony"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports colony progress to Prometheus. It implements colony.Recorder.
type Metrics struct {
	iterations prometheus.Counter
	fallbacks  prometheus.Counter
	runs       prometheus.Counter
	bestDist   prometheus.Gauge
	runSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aco",
			Name:      "iterations_total",
			Help:      "Colony iterations completed.",
		}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aco",
			Name:      "fallback_draws_total",
			Help:      "Selections that fell back to a uniform draw because scores were degenerate.",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aco",
			Name:      "runs_total",
			Help:      "Colony runs completed.",
		}),
		bestDist: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aco",
			Name:      "last_best_distance",
			Help:      "Best tour distance of the most recently completed run.",
		}),
		runSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "aco",
			Name:      "run_duration_seconds",
			Help:      "Wall time of colony runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.iterations, m.fallbacks, m.runs, m.bestDist, m.runSeconds} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) IterationDone(s colony.IterationStats) {
	m.iterations.Inc()
	m.fallbacks.Add(float64(s.Fallbacks))
}

func (m *Metrics) RunDone(res *colony.Result, elapsed time.Duration) {
	m.runs.Inc()
	m.bestDist.Set(res.Best.Distance)
	m.runSeconds.Observe(elapsed.Seconds())
}
