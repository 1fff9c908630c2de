package render

import (
	"slices"

	"github.com/oomph-ac/cubesim/oerror"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Backend draws frames. Draw is called once at the end of every simulation frame and must not
// retain f.Instances after it returns.
type Backend interface {
	Draw(f Frame) error
	Close() error
}

const (
	BackendNop      = "nop"
	BackendRecorder = "recorder"
	BackendStats    = "stats"
)

// NewBackend creates one of the headless backends by name. An unknown name is a setup failure.
func NewBackend(name string, log logrus.FieldLogger, statsEvery int) (Backend, error) {
	switch name {
	case BackendNop:
		return NopBackend{}, nil
	case BackendRecorder:
		return &Recorder{}, nil
	case BackendStats:
		return NewStatsBackend(log, statsEvery), nil
	default:
		return nil, oerror.New(oerror.KindSetupFailure, "unknown render backend %q", name)
	}
}

// NopBackend discards every frame.
type NopBackend struct{}

func (NopBackend) Draw(Frame) error { return nil }
func (NopBackend) Close() error     { return nil }

// Recorder keeps a copy of every frame it is given.
type Recorder struct {
	mu     deadlock.Mutex
	frames []Frame
	closed bool
}

func (r *Recorder) Draw(f Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return oerror.New(oerror.KindSetupFailure, "draw on closed recorder")
	}
	f.Instances = slices.Clone(f.Instances)
	r.frames = append(r.frames, f)
	return nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

// Frames returns the recorded frames.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.frames)
}

// Last returns the most recently recorded frame.
func (r *Recorder) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}
