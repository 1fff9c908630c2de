package render

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/oerror"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackend(t *testing.T) {
	log, _ := test.NewNullLogger()
	for _, name := range []string{BackendNop, BackendRecorder, BackendStats} {
		b, err := NewBackend(name, log, 0)
		require.NoError(t, err, name)
		assert.NoError(t, b.Draw(Frame{}))
		assert.NoError(t, b.Close())
	}

	_, err := NewBackend("opengl", log, 0)
	assert.ErrorIs(t, err, oerror.ErrSetupFailure)
}

func TestRecorderCopiesInstances(t *testing.T) {
	r := &Recorder{}
	instances := []Instance{{Position: mgl32.Vec3{1, 2, 3}, Scale: 1}}
	require.NoError(t, r.Draw(Frame{Sequence: 1, Instances: instances}))

	instances[0].Scale = 9
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, float32(1), last.Instances[0].Scale)
	assert.Len(t, r.Frames(), 1)

	require.NoError(t, r.Close())
	assert.ErrorIs(t, r.Draw(Frame{}), oerror.ErrSetupFailure)
}

func TestStatsBackendReports(t *testing.T) {
	log, hook := test.NewNullLogger()
	s := NewStatsBackend(log, 4)

	clock := time.Unix(0, 0)
	s.now = func() time.Time {
		clock = clock.Add(16 * time.Millisecond)
		return clock
	}

	for range 8 {
		require.NoError(t, s.Draw(Frame{Instances: make([]Instance, 3)}))
	}
	require.Len(t, hook.Entries, 2)

	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "frame stats", entry.Message)
	assert.Equal(t, uint64(8), entry.Data["frames"])
	assert.Equal(t, 3, entry.Data["instances"])
	assert.InDelta(t, 16, entry.Data["mean_ms"], 1e-3)
	assert.InDelta(t, 0, entry.Data["stddev_ms"], 1e-3)
	assert.InDelta(t, 16, entry.Data["median_ms"], 1e-3)
	assert.Equal(t, 4, entry.Data["window"])

	require.NoError(t, s.Close())
	assert.Len(t, hook.Entries, 3)
}
