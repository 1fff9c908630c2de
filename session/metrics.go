package session

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the prometheus collectors a Session reports to.
type Metrics struct {
	Frames        prometheus.Counter
	Shots         prometheus.Counter
	BlocksRemoved prometheus.Counter
	Contacts      prometheus.Counter
	Degenerate    prometheus.Counter
	Resets        prometheus.Counter
	Blocks        prometheus.Gauge
	FrameDuration prometheus.Histogram
}

// NewMetrics creates the session collectors and registers them on reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cubesim", Name: "frames_total",
			Help: "Simulation frames run.",
		}),
		Shots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cubesim", Name: "shots_total",
			Help: "Shots fired by the player.",
		}),
		BlocksRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cubesim", Name: "blocks_removed_total",
			Help: "Blocks removed by shots.",
		}),
		Contacts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cubesim", Name: "collision_contacts_total",
			Help: "Box contacts resolved by the collision resolver.",
		}),
		Degenerate: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cubesim", Name: "collision_degenerate_total",
			Help: "Contacts without a horizontal push direction, resolved vertically.",
		}),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cubesim", Name: "resets_total",
			Help: "World resets applied.",
		}),
		Blocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cubesim", Name: "blocks",
			Help: "Blocks currently in the world.",
		}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cubesim", Name: "frame_duration_seconds",
			Help:    "Wall time spent simulating and drawing a frame.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Frames, m.Shots, m.BlocksRemoved, m.Contacts, m.Degenerate, m.Resets, m.Blocks, m.FrameDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
