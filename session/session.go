package session

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/oomph-ac/cubesim/config"
	"github.com/oomph-ac/cubesim/input"
	"github.com/oomph-ac/cubesim/oerror"
	"github.com/oomph-ac/cubesim/render"
	"github.com/oomph-ac/cubesim/sim"
	"github.com/oomph-ac/cubesim/worker"
	"github.com/oomph-ac/cubesim/world"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Session is a running sandbox: one world, one player, the input feeding it and the backend
// drawing it. Frame, Shoot and Reset are serialised; input may be delivered from any goroutine
// through Input.
type Session struct {
	id   uuid.UUID
	log  logrus.FieldLogger
	conf config.Config

	mu        deadlock.Mutex
	world     *world.World
	state     sim.PlayerState
	sim       *sim.Simulator
	camera    render.Camera
	instances []render.Instance
	frames    uint64

	input   *input.Buffer
	backend render.Backend
	metrics *Metrics

	pool      *worker.Pool
	pending   *atomic.Pointer[world.World]
	resetting *atomic.Bool
}

// FrameResult describes what happened during a single frame.
type FrameResult struct {
	Sequence uint64
	Tick     sim.TickResult
	Shots    []sim.ShotResult
	// Reset is set when a new world was installed at the start of the frame.
	Reset bool
	// LockRequested mirrors the input snapshot: the host should capture the pointer.
	LockRequested bool
}

// New creates a session from a validated configuration. The initial world is generated with the
// configured seed. Metrics are registered on reg unless it is nil.
func New(log logrus.FieldLogger, conf config.Config, backend render.Backend, reg prometheus.Registerer) (*Session, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if backend == nil {
		backend = render.NopBackend{}
	}
	metrics, err := NewMetrics(reg)
	if err != nil {
		return nil, oerror.Wrap(oerror.KindSetupFailure, fmt.Errorf("register metrics: %w", err))
	}

	s := &Session{
		id:        uuid.New(),
		conf:      conf,
		camera:    conf.RenderCamera(),
		input:     &input.Buffer{},
		backend:   backend,
		metrics:   metrics,
		pending:   atomic.NewPointer[world.World](nil),
		resetting: atomic.NewBool(false),
	}
	s.log = log.WithField("session", s.id.String())

	opts := conf.SimulatorOptions()
	opts.Debugf = s.log.Debugf
	s.sim = &sim.Simulator{Options: opts}
	s.state = sim.SpawnState(opts.Spawn)

	w, err := s.generate(conf.World.Seed)
	if err != nil {
		return nil, err
	}
	s.installWorld(w)
	s.pool = worker.New(s.log, 1)

	s.log.Info("session created")
	return s, nil
}

// ID ...
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Input returns the buffer hosts deliver input events to.
func (s *Session) Input() *input.Buffer {
	return s.input
}

// Metrics ...
func (s *Session) Metrics() *Metrics {
	return s.metrics
}

// State returns a copy of the player state.
func (s *Session) State() sim.PlayerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetState replaces the player state.
func (s *Session) SetState(state sim.PlayerState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// World returns a copy of the current world.
func (s *Session) World() *world.World {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Clone()
}

// Frame runs one frame: it installs a pending world, samples input, ticks the player, fires
// queued shots and finally hands the frame to the render backend.
func (s *Session) Frame(dt float32) (FrameResult, error) {
	start := time.Now()
	snap := s.input.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.frames++
	result := FrameResult{Sequence: s.frames, LockRequested: snap.LockRequested}
	if w := s.pending.Swap(nil); w != nil {
		s.applyReset(w)
		s.resetting.Store(false)
		result.Reset = true
	}
	if snap.Reset {
		if err := s.resetLocked(s.nextSeed()); err != nil {
			return result, err
		}
		result.Reset = true
	}

	result.Tick = s.sim.Tick(&s.state, snap.InputState(), dt)
	s.metrics.Frames.Inc()
	s.metrics.Contacts.Add(float64(result.Tick.Collision.Contacts))
	s.metrics.Degenerate.Add(float64(result.Tick.Collision.Degenerate))

	for range snap.Shots {
		result.Shots = append(result.Shots, s.shootLocked())
	}

	f := render.BuildFrame(s.camera, s.world, s.state, s.instances)
	f.Sequence = s.frames
	s.instances = f.Instances
	err := s.backend.Draw(f)
	s.metrics.FrameDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return result, fmt.Errorf("draw frame %d: %w", s.frames, err)
	}
	return result, nil
}

// Shoot fires a single shot from the player's current view.
func (s *Session) Shoot() sim.ShotResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shootLocked()
}

func (s *Session) shootLocked() sim.ShotResult {
	s.metrics.Shots.Inc()
	res := s.sim.Shoot(s.state)
	if res.Hit {
		s.metrics.BlocksRemoved.Inc()
		s.metrics.Blocks.Set(float64(s.world.Len()))
		s.log.WithFields(logrus.Fields{
			"x":        res.Block.X,
			"z":        res.Block.Z,
			"height":   res.Block.Height,
			"distance": res.Distance,
		}).Debug("block removed")
	}
	return res
}

// Reset regenerates the world with the given seed and respawns the player. On error the current
// world and player are left untouched.
func (s *Session) Reset(seed int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetLocked(seed)
}

// RequestReset generates a world with the given seed on the worker pool. The next Frame installs
// it and respawns the player. Requests made while another one is in flight are dropped.
func (s *Session) RequestReset(seed int64) error {
	if s.pool.Closed() {
		return worker.ErrClosed
	}
	if !s.resetting.CompareAndSwap(false, true) {
		return nil
	}
	err := s.pool.Submit(func() {
		w, err := s.generate(seed)
		if err != nil {
			s.log.Errorf("RequestReset(): %v", err)
			s.resetting.Store(false)
			return
		}
		s.pending.Store(w)
	})
	if err != nil {
		s.resetting.Store(false)
	}
	return err
}

func (s *Session) resetLocked(seed int64) error {
	w, err := s.generate(seed)
	if err != nil {
		return err
	}
	s.applyReset(w)
	return nil
}

func (s *Session) applyReset(w *world.World) {
	s.installWorld(w)
	s.state.Respawn(s.sim.Options.Spawn)
	s.metrics.Resets.Inc()
}

func (s *Session) installWorld(w *world.World) {
	s.world = w
	s.sim.World = w
	s.metrics.Blocks.Set(float64(w.Len()))
	s.log.WithFields(logrus.Fields{
		"seed":   w.Seed(),
		"blocks": w.Len(),
		"digest": fmt.Sprintf("%016x", w.Digest()),
	}).Info("world generated")
}

func (s *Session) generate(seed int64) (*world.World, error) {
	c := s.conf.World
	return world.Generate(c.Width, c.Depth, c.MaxStack, seed, s.conf.GenerateOptions(seed)...)
}

func (s *Session) nextSeed() int64 {
	if s.conf.World.RandomSeedOnReset {
		return rand.Int64()
	}
	return s.conf.World.Seed
}

// Close stops the worker pool and closes the backend.
func (s *Session) Close() error {
	s.pool.Close()
	s.log.Info("session closed")
	return s.backend.Close()
}
