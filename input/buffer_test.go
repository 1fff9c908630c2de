package input

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeldKeysPersistAcrossSnapshots(t *testing.T) {
	var b Buffer
	b.KeyDown(KeyForward)
	b.KeyDown(KeyJump)

	first := b.Snapshot()
	assert.True(t, first.Pressed(KeyForward))
	assert.True(t, first.Pressed(KeyJump))
	assert.False(t, first.Pressed(KeyBack))

	b.KeyUp(KeyJump)
	second := b.Snapshot()
	assert.True(t, second.Pressed(KeyForward))
	assert.False(t, second.Pressed(KeyJump))

	assert.Equal(t, sim.InputState{Forward: true}, second.InputState())
	assert.False(t, second.Pressed(Key(200)))
}

func TestMouseRequiresPointerLock(t *testing.T) {
	var b Buffer
	b.MouseMove(10, 5)
	assert.Equal(t, mgl32.Vec2{}, b.Snapshot().MouseDelta)

	b.SetPointerLocked(true)
	b.MouseMove(10, 5)
	b.MouseMove(-4, 1)
	s := b.Snapshot()
	assert.Equal(t, mgl32.Vec2{6, 6}, s.MouseDelta)
	assert.Equal(t, mgl32.Vec2{6, 6}, s.InputState().MouseDelta)
	assert.Equal(t, mgl32.Vec2{}, b.Snapshot().MouseDelta, "deltas are drained by a snapshot")

	b.MouseMove(3, 3)
	b.SetPointerLocked(false)
	assert.Equal(t, mgl32.Vec2{}, b.Snapshot().MouseDelta, "releasing the pointer drops pending movement")
}

func TestClickShootsAndRequestsLock(t *testing.T) {
	var b Buffer
	b.Click(PrimaryButton)
	s := b.Snapshot()
	assert.Equal(t, 1, s.Shots, "an unlocked primary click still shoots")
	assert.True(t, s.LockRequested)
	assert.False(t, b.Snapshot().LockRequested)

	b.Click(2)
	s = b.Snapshot()
	assert.Zero(t, s.Shots)
	assert.True(t, s.LockRequested)

	b.SetPointerLocked(true)
	b.Click(PrimaryButton)
	b.Click(PrimaryButton)
	b.Click(2)
	s = b.Snapshot()
	assert.Equal(t, 2, s.Shots)
	assert.False(t, s.LockRequested)
	assert.True(t, s.PointerLocked)
	assert.Zero(t, b.Snapshot().Shots)
}

func TestResetIsEdgeTriggered(t *testing.T) {
	var b Buffer
	b.KeyDown(KeyReset)
	b.KeyDown(KeyReset)
	assert.True(t, b.Snapshot().Reset)
	assert.False(t, b.Snapshot().Reset, "holding reset does not repeat it")

	b.KeyUp(KeyReset)
	b.KeyDown(KeyReset)
	assert.True(t, b.Snapshot().Reset)
}

func TestConcurrentDelivery(t *testing.T) {
	var b Buffer
	b.SetPointerLocked(true)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				b.MouseMove(1, -1)
				b.Click(PrimaryButton)
			}
		}()
	}
	wg.Wait()

	s := b.Snapshot()
	require.Equal(t, 800, s.Shots)
	assert.Equal(t, mgl32.Vec2{800, -800}, s.MouseDelta)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "jump", KeyJump.String())
	assert.Equal(t, "unknown", Key(99).String())
}
