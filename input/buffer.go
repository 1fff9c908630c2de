package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/sim"
	"github.com/sasha-s/go-deadlock"
)

// Snapshot is the input sampled for a single frame.
type Snapshot struct {
	Held [keyCount]bool
	// MouseDelta is the pointer movement accumulated since the previous snapshot, in pixels.
	MouseDelta mgl32.Vec2
	// Shots is the number of primary clicks made with the pointer locked.
	Shots int
	// Reset is set when the reset key was pressed since the previous snapshot.
	Reset bool
	// LockRequested is set when a click arrived while the pointer was not locked. Hosts should
	// try to capture the pointer in response.
	LockRequested bool
	PointerLocked bool
}

// Pressed reports whether k was held when the snapshot was taken.
func (s Snapshot) Pressed(k Key) bool {
	return k < keyCount && s.Held[k]
}

// InputState converts the snapshot into simulator input.
func (s Snapshot) InputState() sim.InputState {
	return sim.InputState{
		Forward:    s.Held[KeyForward],
		Back:       s.Held[KeyBack],
		Left:       s.Held[KeyLeft],
		Right:      s.Held[KeyRight],
		Jump:       s.Held[KeyJump],
		MouseDelta: s.MouseDelta,
	}
}

// Buffer collects input events from any goroutine and hands them to the simulation as one
// Snapshot per frame. The zero value is ready for use.
type Buffer struct {
	mu deadlock.Mutex

	held          [keyCount]bool
	mouse         mgl32.Vec2
	shots         int
	reset         bool
	lockRequested bool
	pointerLocked bool
}

// KeyDown marks k as held. Pressing KeyReset also queues a reset.
func (b *Buffer) KeyDown(k Key) {
	if k >= keyCount {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if k == KeyReset && !b.held[k] {
		b.reset = true
	}
	b.held[k] = true
}

// KeyUp releases k.
func (b *Buffer) KeyUp(k Key) {
	if k >= keyCount {
		return
	}
	b.mu.Lock()
	b.held[k] = false
	b.mu.Unlock()
}

// MouseMove accumulates pointer movement. Movement is ignored unless the pointer is locked.
func (b *Buffer) MouseMove(dx, dy float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.pointerLocked {
		return
	}
	b.mouse = b.mouse.Add(mgl32.Vec2{dx, dy})
}

// Click handles a mouse button press. A primary click always queues a shot. Any click on an
// unlocked pointer also raises a lock request.
func (b *Buffer) Click(button int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if button == PrimaryButton {
		b.shots++
	}
	if !b.pointerLocked {
		b.lockRequested = true
	}
}

// SetPointerLocked records whether the host currently has the pointer captured. Releasing the
// pointer also drops any pending mouse movement.
func (b *Buffer) SetPointerLocked(locked bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pointerLocked = locked
	if locked {
		b.lockRequested = false
	} else {
		b.mouse = mgl32.Vec2{}
	}
}

// Snapshot returns the current input and drains the accumulated mouse movement, shots and
// requests. Held keys persist until released.
func (b *Buffer) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Snapshot{
		Held:          b.held,
		MouseDelta:    b.mouse,
		Shots:         b.shots,
		Reset:         b.reset,
		LockRequested: b.lockRequested,
		PointerLocked: b.pointerLocked,
	}
	b.mouse = mgl32.Vec2{}
	b.shots = 0
	b.reset = false
	b.lockRequested = false
	return s
}
