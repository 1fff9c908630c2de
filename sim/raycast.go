package sim

import (
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/oomph-ac/cubesim/game"
	"github.com/oomph-ac/cubesim/world"
)

// Shoot casts a ray from the player position along the view direction and removes the whole
// first block it finds, if any. At most one block is removed per call and no cell outside the
// grid is ever looked up.
func (s *Simulator) Shoot(state PlayerState) ShotResult {
	if s.World == nil {
		return ShotResult{}
	}
	if s.Options.RayMode == RayVoxel {
		return s.shootVoxel(state)
	}
	return s.shootMarch(state)
}

func (s *Simulator) shootMarch(state PlayerState) (result ShotResult) {
	if s.Options.RayStep <= 0 {
		return
	}
	dims := s.World.Dimensions()
	dir := state.Forward()

	for i := 0; ; i++ {
		t := float32(i) * s.Options.RayStep
		if t >= s.Options.RayDistance {
			return
		}
		result.Samples++

		p := state.Pos.Add(dir.Mul(t))
		cell := dims.CellAt(p.X(), p.Z())
		if !dims.InBounds(cell) {
			continue
		}
		b, ok := s.World.Block(cell)
		if !ok {
			continue
		}
		if p.Y() >= 0 && p.Y() <= b.Top(dims.BlockSize)+game.RayHeadroom {
			s.remove(cell, &result, t)
			return
		}
	}
}

func (s *Simulator) shootVoxel(state PlayerState) (result ShotResult) {
	dims := s.World.Dimensions()
	origin := state.Pos
	end := origin.Add(state.Forward().Mul(s.Options.RayDistance))

	var last world.Column
	for pos := range game.BlocksBetween(dims.ToGrid(origin), dims.ToGrid(end)) {
		cell := world.Column{X: pos[0], Z: pos[2]}
		if result.Samples > 0 && cell == last {
			continue
		}
		last = cell
		result.Samples++

		if !dims.InBounds(cell) {
			continue
		}
		b, ok := s.World.Block(cell)
		if !ok {
			continue
		}

		bb := dims.ColumnBox(cell, b.Height, game.RayHeadroom)
		if bb.Vec3Within(origin) {
			s.remove(cell, &result, 0)
			return
		}
		if hit, ok := trace.BBoxIntercept(bb, origin, end); ok {
			s.remove(cell, &result, hit.Position().Sub(origin).Len())
			return
		}
	}
	return
}

func (s *Simulator) remove(cell world.Column, result *ShotResult, dist float32) {
	b, ok := s.World.Remove(cell)
	if !ok {
		return
	}
	result.Hit, result.Block, result.Distance = true, b, dist
	s.debugf("Shoot(): removed block %+v at distance %v", b, dist)
}
