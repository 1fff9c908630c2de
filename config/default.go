package config

import (
	"github.com/oomph-ac/cubesim/game"
	"github.com/oomph-ac/cubesim/render"
)

// DefaultConfig returns the configuration of the standard 32x32 island.
func DefaultConfig() Config {
	c := Config{}
	c.World = WorldConfig{
		Width:     32,
		Depth:     32,
		MaxStack:  4,
		BlockSize: 1,
		Noise:     NoiseHash,
	}
	c.Player = PlayerConfig{
		WalkSpeed:        float64(game.DefaultWalkSpeed),
		JumpSpeed:        float64(game.DefaultJumpSpeed),
		Gravity:          9.8,
		CapsuleRadius:    0.25,
		EyeHeight:        1.8,
		GroundLevel:      float64(game.DefaultGroundLevel),
		FootOffset:       0.9,
		MouseSensitivity: 0.0025,
		Spawn:            Position{Y: 1.8},
	}
	c.Camera = CameraConfig{
		FieldOfView:    float64(game.DefaultFieldOfView),
		Near:           0.1,
		Far:            float64(game.DefaultFarClip),
		EyeOffset:      float64(game.CameraEyeOffset),
		ViewportWidth:  game.DefaultViewportWidth,
		ViewportHeight: game.DefaultViewportHeight,
	}
	c.Render = RenderConfig{
		Backend:    render.BackendStats,
		StatsEvery: render.DefaultStatsEvery,
	}
	c.Simulation = SimulationConfig{
		TickRate:    60,
		Broadphase:  BroadphaseScan,
		RayMode:     RayModeMarch,
		RayStep:     0.1,
		RayDistance: float64(game.DefaultRayDistance),
	}
	c.Log.Level = "info"
	return c
}
