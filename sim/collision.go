package sim

import (
	"iter"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/assert"
	"github.com/oomph-ac/cubesim/game"
)

// Resolve pushes the player out of every cube level its probe sphere overlaps. The probe sits
// FootOffset below the player position and has radius CapsuleRadius.
//
// Corrections are applied one box at a time in broadphase order, and each box is tested against
// the probe as moved by the corrections before it. With several simultaneous overlaps the result
// therefore depends on that order.
func (s *Simulator) Resolve(state *PlayerState) (result CollisionResult) {
	if state == nil || s.World == nil {
		return
	}

	radius := s.Options.CapsuleRadius
	assert.IsTrue(radius > 0, "capsule radius must be positive, got %v", radius)
	for bb := range s.candidates(state, radius) {
		probe := s.probe(state)
		dist := game.AABBVectorDistance(bb, probe)
		if dist >= radius {
			continue
		}
		diff := probe.Sub(game.ClosestPointToBBox(probe, bb))
		result.Contacts++
		depth := radius - dist + game.PushEpsilon

		if dir := game.SafeNormalize(game.Horizontal(diff)); dir != (mgl32.Vec3{}) {
			state.Pos = state.Pos.Add(dir.Mul(depth))
		} else {
			// The probe is straight above the box or inside it: separate upwards.
			result.Degenerate++
			state.Pos[1] += depth
			s.debugf("Resolve(): degenerate contact at %v against %v, lifted by %v", probe, bb, depth)
		}

		if top := bb.Max().Y(); state.Pos.Y() <= top+game.LandingEpsilon {
			state.OnGround = true
			state.Vel[1] = 0
			state.Pos[1] = top + s.Options.EyeHeight
			result.Landed = true
		}
	}
	return
}

func (s *Simulator) probe(state *PlayerState) mgl32.Vec3 {
	return state.Pos.Sub(mgl32.Vec3{0, s.Options.FootOffset, 0})
}

func (s *Simulator) candidates(state *PlayerState, radius float32) iter.Seq[cube.BBox] {
	if s.Options.Broadphase == BroadphaseGrid {
		return s.World.BoxesNear(s.probe(state), radius)
	}
	return s.World.Boxes()
}
