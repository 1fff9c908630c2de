package config

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/render"
	"github.com/oomph-ac/cubesim/sim"
	"github.com/oomph-ac/cubesim/world"
	"github.com/sirupsen/logrus"
)

// SimulatorOptions converts the player and simulation sections into simulator options.
func (c Config) SimulatorOptions() sim.Options {
	o := sim.Options{
		WalkSpeed:        float32(c.Player.WalkSpeed),
		JumpSpeed:        float32(c.Player.JumpSpeed),
		Gravity:          float32(c.Player.Gravity),
		CapsuleRadius:    float32(c.Player.CapsuleRadius),
		EyeHeight:        float32(c.Player.EyeHeight),
		GroundLevel:      float32(c.Player.GroundLevel),
		FootOffset:       float32(c.Player.FootOffset),
		MouseSensitivity: float32(c.Player.MouseSensitivity),
		Spawn:            c.Player.Spawn.Vec3(),
		RayStep:          float32(c.Simulation.RayStep),
		RayDistance:      float32(c.Simulation.RayDistance),
	}
	if c.Simulation.Broadphase == BroadphaseGrid {
		o.Broadphase = sim.BroadphaseGrid
	}
	if c.Simulation.RayMode == RayModeVoxel {
		o.RayMode = sim.RayVoxel
	}
	return o
}

// RenderCamera converts the camera section.
func (c Config) RenderCamera() render.Camera {
	return render.Camera{
		FieldOfView:    float32(c.Camera.FieldOfView),
		Near:           float32(c.Camera.Near),
		Far:            float32(c.Camera.Far),
		EyeOffset:      float32(c.Camera.EyeOffset),
		ViewportWidth:  c.Camera.ViewportWidth,
		ViewportHeight: c.Camera.ViewportHeight,
	}
}

// GenerateOptions returns the generator options for a world built with the given seed.
func (c Config) GenerateOptions(seed int64) []world.GenerateOption {
	opts := []world.GenerateOption{world.WithBlockSize(float32(c.World.BlockSize))}
	if c.World.Noise == NoisePerlin {
		opts = append(opts, world.WithNoise(world.NewPerlinNoise(seed)))
	}
	return opts
}

// TickInterval returns the duration of a single simulation frame.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(max(c.Simulation.TickRate, 1))
}

// Level returns the configured log level, or info if it cannot be parsed.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Vec3 ...
func (p Position) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}
