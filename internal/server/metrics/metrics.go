// Package metrics exposes check-in counters and latency to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the check-in pipeline reports to.
type Recorder interface {
	ObserveCheckin(outcome string, d time.Duration)
	RewardsGranted(n int)
}

type Metrics struct {
	registry *prometheus.Registry
	verdicts *prometheus.CounterVec
	rewards  prometheus.Counter
	latency  prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "passport",
			Name:      "checkins_total",
			Help:      "Check-in attempts by outcome (accepted or error kind).",
		}, []string{"outcome"}),
		rewards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "passport",
			Name:      "rewards_granted_total",
			Help:      "Rewards unlocked on route completion.",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "passport",
			Name:      "checkin_duration_seconds",
			Help:      "Time spent in the check-in pipeline.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(
		m.verdicts, m.rewards, m.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveCheckin(outcome string, d time.Duration) {
	m.verdicts.WithLabelValues(outcome).Inc()
	m.latency.Observe(d.Seconds())
}

func (m *Metrics) RewardsGranted(n int) {
	m.rewards.Add(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

type nop struct{}

// Nop discards observations.
func Nop() Recorder { return nop{} }

func (nop) ObserveCheckin(string, time.Duration) {}
func (nop) RewardsGranted(int)                   {}
