package render

import (
	"time"

	"github.com/oomph-ac/cubesim/game"
	"github.com/oomph-ac/cubesim/utils"
	"github.com/sirupsen/logrus"
)

// DefaultStatsEvery is the number of frames between two StatsBackend reports.
const DefaultStatsEvery = 120

// StatsBackend draws nothing. It measures the cadence of the frames it receives and logs a
// summary every few frames.
type StatsBackend struct {
	log   logrus.FieldLogger
	every int
	now   func() time.Time

	last      time.Time
	frames    uint64
	intervals *utils.CircularQueue[float64]
	instances int
}

// NewStatsBackend returns a StatsBackend reporting to log every `every` frames.
func NewStatsBackend(log logrus.FieldLogger, every int) *StatsBackend {
	if every <= 0 {
		every = DefaultStatsEvery
	}
	return &StatsBackend{
		log:       log,
		every:     every,
		now:       time.Now,
		intervals: utils.NewCircularQueue[float64](every),
	}
}

func (s *StatsBackend) Draw(f Frame) error {
	now := s.now()
	if !s.last.IsZero() {
		s.intervals.Append(now.Sub(s.last).Seconds() * 1000)
	}
	s.last = now
	s.frames++
	s.instances = len(f.Instances)

	if s.frames%uint64(s.every) == 0 && s.log != nil {
		s.log.WithFields(s.Summary()).Info("frame stats")
	}
	return nil
}

// Summary returns the statistics over the most recent frame intervals, in milliseconds.
func (s *StatsBackend) Summary() logrus.Fields {
	intervals := s.intervals.Values()
	return logrus.Fields{
		"frames":    s.frames,
		"instances": s.instances,
		"window":    s.intervals.Len(),
		"mean_ms":   game.Round32(float32(game.Mean(intervals)), 3),
		"median_ms": game.Round32(float32(game.Median(intervals)), 3),
		"stddev_ms": game.Round32(float32(game.StandardDeviation(intervals)), 3),
		"p95_ms":    game.Round32(float32(game.Percentile(intervals, 95)), 3),
	}
}

func (s *StatsBackend) Close() error {
	if s.log != nil && s.frames > 0 {
		s.log.WithFields(s.Summary()).Info("render closed")
	}
	return nil
}
