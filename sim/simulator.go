package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/game"
)

// Broadphase selects how the collision resolver gathers candidate boxes.
type Broadphase uint8

const (
	// BroadphaseScan tests every cube level in the world.
	BroadphaseScan Broadphase = iota
	// BroadphaseGrid tests only the columns around the probe, found through the world's column
	// index.
	BroadphaseGrid
)

// RayMode selects how Shoot walks the view ray.
type RayMode uint8

const (
	// RayMarch samples the ray at fixed steps.
	RayMarch RayMode = iota
	// RayVoxel walks every grid cell the ray crosses and confirms hits with an exact box
	// intersection.
	RayVoxel
)

// Options define simulator behavior.
type Options struct {
	WalkSpeed     float32
	JumpSpeed     float32
	Gravity       float32
	CapsuleRadius float32
	// EyeHeight is the height of the player position above the surface it stands on.
	EyeHeight   float32
	GroundLevel float32
	FootOffset  float32

	MouseSensitivity float32
	Spawn            mgl32.Vec3

	Broadphase  Broadphase
	RayMode     RayMode
	RayStep     float32
	RayDistance float32

	// Debugf receives internal simulation trace logs for callers that need deep diagnostics.
	Debugf func(format string, args ...any)
}

// DefaultOptions returns the options of a standard player.
func DefaultOptions() Options {
	return Options{
		WalkSpeed:        game.DefaultWalkSpeed,
		JumpSpeed:        game.DefaultJumpSpeed,
		Gravity:          game.DefaultGravity,
		CapsuleRadius:    game.DefaultCapsuleRadius,
		EyeHeight:        game.DefaultEyeHeight,
		GroundLevel:      game.DefaultGroundLevel,
		FootOffset:       game.DefaultFootOffset,
		MouseSensitivity: game.DefaultMouseSensitivity,
		Spawn:            mgl32.Vec3{0, game.DefaultEyeHeight, 0},
		RayStep:          game.DefaultRayStep,
		RayDistance:      game.DefaultRayDistance,
	}
}

// Simulator runs the player simulation against a world. It holds no player state, so one
// Simulator may drive any number of players in turn.
type Simulator struct {
	World   WorldProvider
	Options Options
}

func (s *Simulator) debugf(format string, args ...any) {
	if s.Options.Debugf != nil {
		s.Options.Debugf(format, args...)
	}
}
