package sim

import (
	"github.com/oomph-ac/cubesim/game"
)

// Tick advances state by one frame: it applies mouse look, integrates movement, resolves
// collisions against the world and finally applies the hard floor. Deltas outside
// (0, game.MaxDeltaTime] are replaced with game.FallbackDeltaTime.
func (s *Simulator) Tick(state *PlayerState, input InputState, dt float32) TickResult {
	if state == nil {
		return TickResult{}
	}
	dt = ClampDeltaTime(dt)
	result := TickResult{DeltaTime: dt}

	s.applyLook(state, input)

	move := input.MoveDirection(state.Forward(), state.Right())
	state.Vel[0] = move.X() * s.Options.WalkSpeed
	state.Vel[2] = move.Z() * s.Options.WalkSpeed

	state.Vel[1] -= s.Options.Gravity * dt
	if input.Jump && state.OnGround {
		state.Vel[1] = s.Options.JumpSpeed
		state.OnGround = false
		result.Jumped = true
	}

	state.Pos = state.Pos.Add(state.Vel.Mul(dt))

	state.OnGround = false
	result.Collision = s.Resolve(state)

	if state.Pos.Y() < s.Options.GroundLevel {
		state.Pos[1] = s.Options.GroundLevel
		state.Vel[1] = 0
		state.OnGround = true
		result.GroundClamped = true
	}

	result.Position = state.Pos
	result.Velocity = state.Vel
	result.OnGround = state.OnGround
	return result
}

// ClampDeltaTime returns dt if it lies in (0, game.MaxDeltaTime] and game.FallbackDeltaTime
// otherwise, NaN included.
func ClampDeltaTime(dt float32) float32 {
	if dt > 0 && dt <= game.MaxDeltaTime {
		return dt
	}
	return game.FallbackDeltaTime
}

func (s *Simulator) applyLook(state *PlayerState, input InputState) {
	state.Yaw += input.MouseDelta.X() * s.Options.MouseSensitivity
	state.Pitch = game.ClampFloat(state.Pitch-input.MouseDelta.Y()*s.Options.MouseSensitivity, -game.MaxPitch, game.MaxPitch)
}
