package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/world"
)

// TickResult captures the outcome of a single simulation tick.
type TickResult struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	OnGround bool

	// DeltaTime is the step actually integrated after clamping.
	DeltaTime float32
	Jumped    bool
	// GroundClamped is set when the hard floor caught the player.
	GroundClamped bool

	Collision CollisionResult
}

// CollisionResult summarises a call to Resolve.
type CollisionResult struct {
	// Contacts is the number of boxes the probe overlapped.
	Contacts int
	// Degenerate counts contacts with no horizontal separating direction, which were resolved
	// vertically instead.
	Degenerate int
	Landed     bool
}

// ShotResult describes the outcome of Shoot.
type ShotResult struct {
	Hit bool
	// Block is the removed block when Hit is set.
	Block world.Block
	// Distance along the ray at which the block was found.
	Distance float32
	// Samples is the number of ray samples (or cells, in voxel mode) inspected.
	Samples int
}
