package world

import (
	"encoding/binary"
	"iter"
	"math"

	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/game"
	"github.com/oomph-ac/cubesim/internal"
	"github.com/oomph-ac/cubesim/oerror"
	"github.com/zeebo/xxh3"
)

// World is an ordered collection of blocks on a fixed grid. Iteration follows insertion order,
// which for generated worlds is z-major, then x ascending. A World is not safe for concurrent
// use; the owner serialises access.
type World struct {
	dims   Dimensions
	seed   int64
	blocks *orderedmap.OrderedMap[Column, Block]
}

// New returns an empty world with the given dimensions.
func New(dims Dimensions, seed int64) (*World, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return &World{
		dims:   dims,
		seed:   seed,
		blocks: orderedmap.NewOrderedMap[Column, Block](),
	}, nil
}

// Dimensions ...
func (w *World) Dimensions() Dimensions {
	return w.dims
}

// Seed returns the seed the world was created with.
func (w *World) Seed() int64 {
	return w.seed
}

// Len returns the amount of blocks in the world.
func (w *World) Len() int {
	return w.blocks.Len()
}

// Block returns the block standing on column c, if any.
func (w *World) Block(c Column) (Block, bool) {
	return w.blocks.Get(c)
}

// Insert adds b to the world. It fails if the block has no height, lies outside the grid or its
// column is already occupied.
func (w *World) Insert(b Block) error {
	if b.Height < 1 {
		return oerror.New(oerror.KindInvalidConfiguration, "block at (%d, %d) has height %d", b.X, b.Z, b.Height)
	}
	if !w.dims.InBounds(b.Column()) {
		return oerror.New(oerror.KindInvalidConfiguration, "block at (%d, %d) is outside the %dx%d grid", b.X, b.Z, w.dims.Width, w.dims.Depth)
	}
	if _, ok := w.blocks.Get(b.Column()); ok {
		return oerror.New(oerror.KindInvalidConfiguration, "column (%d, %d) is already occupied", b.X, b.Z)
	}
	w.blocks.Set(b.Column(), b)
	return nil
}

// Remove deletes the whole block standing on column c and returns it.
func (w *World) Remove(c Column) (Block, bool) {
	b, ok := w.blocks.Get(c)
	if !ok {
		return Block{}, false
	}
	w.blocks.Delete(c)
	return b, true
}

// Blocks yields every block in iteration order. The world must not be modified while iterating.
func (w *World) Blocks() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for el := w.blocks.Front(); el != nil; el = el.Next() {
			if !yield(el.Value) {
				return
			}
		}
	}
}

// Slice returns a copy of all blocks in iteration order.
func (w *World) Slice() []Block {
	blocks := make([]Block, 0, w.blocks.Len())
	for b := range w.Blocks() {
		blocks = append(blocks, b)
	}
	return blocks
}

// Boxes yields the box of every cube level in the world: blocks in iteration order, levels
// bottom-up within a block.
func (w *World) Boxes() iter.Seq[cube.BBox] {
	return func(yield func(cube.BBox) bool) {
		for b := range w.Blocks() {
			if !w.yieldLevels(b, yield) {
				return
			}
		}
	}
}

// BoxesNear yields the level boxes of the columns around pos that a sphere of the given radius
// could reach, looked up through the column index. Columns are visited by z then x ascending,
// which keeps the relative order of Boxes.
func (w *World) BoxesNear(pos mgl32.Vec3, radius float32) iter.Seq[cube.BBox] {
	return func(yield func(cube.BBox) bool) {
		if !game.IsFiniteVec3(pos) {
			return
		}
		reach := 1 + int(math32.Ceil(radius/w.dims.BlockSize))
		centre := w.dims.CellAt(pos.X(), pos.Z())
		for dz := -reach; dz <= reach; dz++ {
			for dx := -reach; dx <= reach; dx++ {
				b, ok := w.blocks.Get(Column{X: centre.X + dx, Z: centre.Z + dz})
				if !ok {
					continue
				}
				if !w.yieldLevels(b, yield) {
					return
				}
			}
		}
	}
}

func (w *World) yieldLevels(b Block, yield func(cube.BBox) bool) bool {
	for level := range b.Height {
		if !yield(w.dims.LevelBox(b.Column(), level)) {
			return false
		}
	}
	return true
}

// Digest returns an xxh3 hash of the dimensions and the ordered block list. Two worlds with the
// same digest hold the same blocks in the same order.
func (w *World) Digest() uint64 {
	ptr := internal.BufferPool.Get().(*[]byte)
	defer internal.BufferPool.Put(ptr)

	buf := (*ptr)[:0]
	buf = binary.LittleEndian.AppendUint64(buf, uint64(w.dims.Width))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(w.dims.Depth))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(w.dims.MaxStack))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(w.dims.BlockSize))
	for b := range w.Blocks() {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(b.X))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(b.Z))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(b.Height))
	}
	*ptr = buf
	return xxh3.Hash(buf)
}

// Clone returns a deep copy of the world.
func (w *World) Clone() *World {
	c := &World{
		dims:   w.dims,
		seed:   w.seed,
		blocks: orderedmap.NewOrderedMap[Column, Block](),
	}
	for b := range w.Blocks() {
		c.blocks.Set(b.Column(), b)
	}
	return c
}
