// SPDX-License-Identifier: MIT

// Package metrics exports reconciliation cycles as Prometheus collectors.
// Recorder plugs into loot.WithObserver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/rpgsack/loot"
)

const namespace = "rpgsack"

// Recorder implements loot.Observer.
type Recorder struct {
	cycles    *prometheus.CounterVec
	kept      *prometheus.CounterVec
	discarded *prometheus.CounterVec
	score     *prometheus.GaugeVec
	pool      prometheus.Histogram
	duration  prometheus.Histogram
}

var _ loot.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_cycles_total",
			Help:      "Completed loot reconciliation cycles.",
		}, []string{"persona"}),
		kept: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_kept_total",
			Help:      "Items kept across reconciliation cycles.",
		}, []string{"persona"}),
		discarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_discarded_total",
			Help:      "Items discarded across reconciliation cycles.",
		}, []string{"persona"}),
		score: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backpack_score",
			Help:      "Total score of the most recent kept set.",
		}, []string{"persona"}),
		pool: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pool_size",
			Help:      "Items considered per reconciliation.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reconcile_duration_seconds",
			Help:      "Wall time of one reconciliation.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{r.cycles, r.kept, r.discarded, r.score, r.pool, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveReconcile records one cycle.
func (r *Recorder) ObserveReconcile(c loot.Cycle) {
	p := c.Persona.String()
	r.cycles.WithLabelValues(p).Inc()
	r.kept.WithLabelValues(p).Add(float64(c.Kept))
	r.discarded.WithLabelValues(p).Add(float64(c.Discarded))
	r.score.WithLabelValues(p).Set(float64(c.TotalScore))
	r.pool.Observe(float64(c.PoolSize))
	r.duration.Observe(c.Duration.Seconds())
}
