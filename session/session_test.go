package session

import (
	"errors"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/oomph-ac/cubesim/config"
	"github.com/oomph-ac/cubesim/input"
	"github.com/oomph-ac/cubesim/oerror"
	"github.com/oomph-ac/cubesim/render"
	"github.com/oomph-ac/cubesim/sim"
	"github.com/oomph-ac/cubesim/worker"
	"github.com/oomph-ac/cubesim/world"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, conf config.Config) (*Session, *render.Recorder, *prometheus.Registry) {
	t.Helper()
	log, _ := test.NewNullLogger()
	rec := &render.Recorder{}
	reg := prometheus.NewRegistry()
	s, err := New(log, conf, rec, reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, rec, reg
}

func TestNewGeneratesConfiguredWorld(t *testing.T) {
	conf := config.DefaultConfig()
	s, _, _ := newSession(t, conf)

	want, err := world.Generate(conf.World.Width, conf.World.Depth, conf.World.MaxStack, conf.World.Seed, conf.GenerateOptions(conf.World.Seed)...)
	require.NoError(t, err)

	got := s.World()
	assert.Equal(t, want.Digest(), got.Digest())
	assert.Equal(t, float64(want.Len()), testutil.ToFloat64(s.Metrics().Blocks))
	assert.Equal(t, conf.Player.Spawn.Vec3(), s.State().Pos)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	conf := config.DefaultConfig()
	conf.World.Width = 0

	log, _ := test.NewNullLogger()
	_, err := New(log, conf, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerror.ErrInvalidConfiguration))
}

func TestNewRegistersMetricsOnce(t *testing.T) {
	log, _ := test.NewNullLogger()
	reg := prometheus.NewRegistry()

	s, err := New(log, config.DefaultConfig(), nil, reg)
	require.NoError(t, err)
	defer s.Close()

	_, err = New(log, config.DefaultConfig(), nil, reg)
	assert.ErrorIs(t, err, oerror.ErrSetupFailure)
}

func TestFrameDrawsWorld(t *testing.T) {
	s, rec, _ := newSession(t, config.DefaultConfig())

	res, err := s.Frame(1.0 / 60)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.Sequence)

	f, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, uint64(1), f.Sequence)
	levels := 0
	for b := range s.World().Blocks() {
		levels += b.Height
	}
	assert.Len(t, f.Instances, levels)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().Frames))

	_, err = s.Frame(1.0 / 60)
	require.NoError(t, err)
	assert.Len(t, rec.Frames(), 2)
}

func TestFrameReturnsDrawError(t *testing.T) {
	s, rec, _ := newSession(t, config.DefaultConfig())
	require.NoError(t, rec.Close())

	_, err := s.Frame(1.0 / 60)
	assert.Error(t, err)
}

func TestFrameUnlockedClickShootsAndRequestsLock(t *testing.T) {
	s, _, _ := newSession(t, config.DefaultConfig())
	s.Input().Click(input.PrimaryButton)

	res, err := s.Frame(1.0 / 60)
	require.NoError(t, err)
	assert.True(t, res.LockRequested)
	assert.Len(t, res.Shots, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().Shots))
}

func TestShootRemovesBlockBelow(t *testing.T) {
	s, _, _ := newSession(t, config.DefaultConfig())
	before := s.World().Len()

	state := s.State()
	state.Pos = [3]float32{0, 5, 0}
	state.Pitch = -math32.Pi / 2
	s.SetState(state)

	res := s.Shoot()
	require.True(t, res.Hit)
	assert.Equal(t, world.Column{X: 16, Z: 16}, res.Block.Column())
	assert.Equal(t, before-1, s.World().Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().BlocksRemoved))
	assert.Equal(t, float64(before-1), testutil.ToFloat64(s.Metrics().Blocks))
}

func TestFrameFiresQueuedShots(t *testing.T) {
	s, _, _ := newSession(t, config.DefaultConfig())
	before := s.World().Len()

	state := s.State()
	state.Pos = [3]float32{0, 5, 0}
	state.Pitch = -math32.Pi / 2
	s.SetState(state)

	s.Input().SetPointerLocked(true)
	s.Input().Click(input.PrimaryButton)
	res, err := s.Frame(1.0 / 60)
	require.NoError(t, err)
	require.Len(t, res.Shots, 1)
	assert.True(t, res.Shots[0].Hit)
	assert.Equal(t, before-1, s.World().Len())
}

func TestResetKeyRestoresWorld(t *testing.T) {
	conf := config.DefaultConfig()
	s, _, _ := newSession(t, conf)
	original := s.World().Digest()

	state := s.State()
	state.Pos = [3]float32{0, 5, 0}
	state.Pitch = -math32.Pi / 2
	s.SetState(state)
	require.True(t, s.Shoot().Hit)
	require.NotEqual(t, original, s.World().Digest())

	s.Input().KeyDown(input.KeyReset)
	res, err := s.Frame(1.0 / 60)
	require.NoError(t, err)
	assert.True(t, res.Reset)
	assert.Equal(t, original, s.World().Digest())
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().Resets))
}

func TestResetRespawnsPlayer(t *testing.T) {
	conf := config.DefaultConfig()
	s, _, _ := newSession(t, conf)

	state := s.State()
	state.Pos = [3]float32{3, 9, -4}
	state.Vel = [3]float32{1, 2, 3}
	state.Yaw = 1.25
	s.SetState(state)

	require.NoError(t, s.Reset(42))
	got := s.State()
	assert.Equal(t, conf.Player.Spawn.Vec3(), got.Pos)
	assert.Equal(t, sim.SpawnState(conf.Player.Spawn.Vec3()).Vel, got.Vel)
	assert.Equal(t, float32(1.25), got.Yaw)
	assert.Equal(t, int64(42), s.World().Seed())
}

func TestRequestResetInstallsOnNextFrame(t *testing.T) {
	s, _, _ := newSession(t, config.DefaultConfig())

	require.NoError(t, s.RequestReset(7))
	assert.Eventually(t, func() bool {
		res, err := s.Frame(1.0 / 60)
		return err == nil && res.Reset
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(7), s.World().Seed())
}

func TestRequestResetAfterClose(t *testing.T) {
	log, _ := test.NewNullLogger()
	s, err := New(log, config.DefaultConfig(), nil, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.RequestReset(3), worker.ErrClosed)
	// The failed request does not block later ones.
	assert.False(t, s.resetting.Load())
}
