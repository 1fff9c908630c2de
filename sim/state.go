package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/game"
)

// PlayerState holds the simulated state of a single player. Pos is the eye point; y is up.
type PlayerState struct {
	Pos, Vel   mgl32.Vec3
	Yaw, Pitch float32
	OnGround   bool
}

// SpawnState returns a player at rest at spawn, looking along +X.
func SpawnState(spawn mgl32.Vec3) PlayerState {
	return PlayerState{Pos: spawn}
}

// Forward returns the unit view direction.
func (s PlayerState) Forward() mgl32.Vec3 {
	return game.Forward(s.Yaw, s.Pitch)
}

// Right returns the horizontal unit vector to the right of the view direction.
func (s PlayerState) Right() mgl32.Vec3 {
	return game.Right(s.Yaw)
}

// Respawn moves the player back to spawn and stops it. The view direction and ground flag are
// kept.
func (s *PlayerState) Respawn(spawn mgl32.Vec3) {
	s.Pos = spawn
	s.Vel = mgl32.Vec3{}
}
