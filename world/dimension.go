package world

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/game"
	"github.com/oomph-ac/cubesim/oerror"
)

// DefaultBlockSize is the edge length of a single cube in world units.
const DefaultBlockSize float32 = 1.0

// ErrInvalidDimensions is returned when a world is requested with non-positive sizes.
var ErrInvalidDimensions = oerror.New(oerror.KindInvalidConfiguration, "invalid world dimensions")

// Dimensions describes the grid a world lives on. The grid is centred on the world origin: column
// (Width/2, Depth/2) has its centre at x=0, z=0.
type Dimensions struct {
	Width, Depth int
	MaxStack     int
	BlockSize    float32
}

// Validate returns ErrInvalidDimensions if any size is not positive.
func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Depth <= 0 || d.MaxStack <= 0 || !(d.BlockSize > 0) {
		return fmt.Errorf("%w: width=%d depth=%d maxStack=%d blockSize=%v",
			ErrInvalidDimensions, d.Width, d.Depth, d.MaxStack, d.BlockSize)
	}
	return nil
}

// InBounds reports whether c lies within [0, Width) x [0, Depth).
func (d Dimensions) InBounds(c Column) bool {
	return c.X >= 0 && c.X < d.Width && c.Z >= 0 && c.Z < d.Depth
}

// CellAt maps a world-space (x, z) to the grid cell whose footprint contains it. The result may
// lie outside the grid.
func (d Dimensions) CellAt(x, z float32) Column {
	return Column{
		X: int(math32.Round(x/d.BlockSize)) + d.Width/2,
		Z: int(math32.Round(z/d.BlockSize)) + d.Depth/2,
	}
}

// Centre returns the world-space x and z of the centre of the column's footprint.
func (d Dimensions) Centre(c Column) (x, z float32) {
	return float32(c.X-d.Width/2) * d.BlockSize, float32(c.Z-d.Depth/2) * d.BlockSize
}

// LevelBox returns the world-space box occupied by the cube at the given level of column c.
func (d Dimensions) LevelBox(c Column, level int) cube.BBox {
	x, z := d.Centre(c)
	half := d.BlockSize / 2
	return game.BoxFromMin(mgl32.Vec3{x - half, float32(level) * d.BlockSize, z - half}, d.BlockSize)
}

// ColumnBox returns the box spanning a whole stack of the given height, extended upwards by
// headroom.
func (d Dimensions) ColumnBox(c Column, height int, headroom float32) cube.BBox {
	x, z := d.Centre(c)
	half := d.BlockSize / 2
	return cube.Box(x-half, 0, z-half, x+half, float32(height)*d.BlockSize+headroom, z+half)
}

// ToGrid converts a world-space point into continuous grid space, where column (X, Z) spans
// [X, X+1) on the x and z axes and level L spans [L, L+1) on the y axis.
func (d Dimensions) ToGrid(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		p.X()/d.BlockSize + 0.5 + float32(d.Width/2),
		p.Y() / d.BlockSize,
		p.Z()/d.BlockSize + 0.5 + float32(d.Depth/2),
	}
}
