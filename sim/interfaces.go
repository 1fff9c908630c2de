package sim

import (
	"iter"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/world"
)

// WorldProvider bridges the block store for collision and block lookups. *world.World
// implements it.
type WorldProvider interface {
	Dimensions() world.Dimensions
	Block(c world.Column) (world.Block, bool)
	Remove(c world.Column) (world.Block, bool)
	// Boxes yields every cube level in a fixed order.
	Boxes() iter.Seq[cube.BBox]
	// BoxesNear yields the cube levels of the columns a sphere at pos could touch, in the same
	// relative order as Boxes.
	BoxesNear(pos mgl32.Vec3, radius float32) iter.Seq[cube.BBox]
}

var _ WorldProvider = (*world.World)(nil)
