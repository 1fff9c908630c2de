package config

import (
	"github.com/oomph-ac/cubesim/oerror"
	"github.com/oomph-ac/cubesim/render"
	"github.com/sirupsen/logrus"
)

const (
	NoiseHash   = "hash"
	NoisePerlin = "perlin"

	BroadphaseScan = "scan"
	BroadphaseGrid = "grid"

	RayModeMarch = "march"
	RayModeVoxel = "voxel"
)

// Validate checks that every value can be used as is. Failures are invalid configuration errors.
func (c Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Depth <= 0 || c.World.MaxStack <= 0:
		return invalid("world size must be positive, got %dx%dx%d", c.World.Width, c.World.Depth, c.World.MaxStack)
	case c.World.BlockSize <= 0:
		return invalid("block size must be positive, got %v", c.World.BlockSize)
	case c.World.Noise != NoiseHash && c.World.Noise != NoisePerlin:
		return invalid("unknown noise %q", c.World.Noise)
	case c.Player.CapsuleRadius <= 0:
		return invalid("capsule radius must be positive, got %v", c.Player.CapsuleRadius)
	case c.Player.WalkSpeed < 0 || c.Player.JumpSpeed < 0 || c.Player.Gravity < 0:
		return invalid("player speeds and gravity must not be negative")
	case c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180:
		return invalid("field of view must lie in (0, 180), got %v", c.Camera.FieldOfView)
	case c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far:
		return invalid("clip planes must satisfy 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far)
	case c.Camera.ViewportWidth <= 0 || c.Camera.ViewportHeight <= 0:
		return invalid("viewport must be positive, got %dx%d", c.Camera.ViewportWidth, c.Camera.ViewportHeight)
	case c.Render.Backend != render.BackendNop && c.Render.Backend != render.BackendRecorder && c.Render.Backend != render.BackendStats:
		return invalid("unknown render backend %q", c.Render.Backend)
	case c.Simulation.TickRate <= 0:
		return invalid("tick rate must be positive, got %d", c.Simulation.TickRate)
	case c.Simulation.Broadphase != BroadphaseScan && c.Simulation.Broadphase != BroadphaseGrid:
		return invalid("unknown broadphase %q", c.Simulation.Broadphase)
	case c.Simulation.RayMode != RayModeMarch && c.Simulation.RayMode != RayModeVoxel:
		return invalid("unknown ray mode %q", c.Simulation.RayMode)
	case c.Simulation.RayStep <= 0 || c.Simulation.RayDistance <= 0:
		return invalid("ray step and distance must be positive")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return invalid("log level: %v", err)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return oerror.New(oerror.KindInvalidConfiguration, format, args...)
}
