// Package metrics exports game activity as Prometheus collectors.
package metrics

import (
	"reactionarena/internal/events"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "reactionarena"

type Recorder struct {
	Spawns     prometheus.Counter
	Hits       prometheus.Counter
	Superseded prometheus.Counter
	Reaction   prometheus.Histogram
	Interval   prometheus.Gauge
	Sessions   prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		Spawns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targets_spawned_total",
			Help:      "Targets spawned across all sessions.",
		}),
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targets_hit_total",
			Help:      "Targets hit across all sessions.",
		}),
		Superseded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targets_superseded_total",
			Help:      "Targets replaced by the next spawn before being hit.",
		}),
		Reaction: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reaction_seconds",
			Help:      "Time between a target spawning and being hit.",
			Buckets:   []float64{0.15, 0.2, 0.25, 0.3, 0.4, 0.5, 0.75, 1, 1.5, 2},
		}),
		Interval: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "spawn_interval_seconds",
			Help:      "Spawn interval after the most recent hit.",
		}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Connected play sessions.",
		}),
	}
	reg.MustRegister(r.Spawns, r.Hits, r.Superseded, r.Reaction, r.Interval, r.Sessions)
	return r
}

// Observe records one game event. A nil Recorder ignores everything.
func (r *Recorder) Observe(ev events.Event) {
	if r == nil {
		return
	}
	switch ev.Kind {
	case events.KindSpawn:
		r.Spawns.Inc()
	case events.KindSuperseded:
		r.Superseded.Inc()
	case events.KindHit:
		r.Hits.Inc()
		r.Reaction.Observe(ev.Reaction.Seconds())
		r.Interval.Set(ev.Interval.Seconds())
	}
}
