package world

import (
	"encoding/binary"

	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
	"github.com/zeebo/xxh3"
)

// Noise is a deterministic two dimensional noise source. Sample must be a pure function of its
// arguments and return values in [-1, 1].
type Noise interface {
	Sample(x, z int32) float32
}

// HashNoise is an integer lattice hash. The seed is reduced to a fixed offset into the lattice,
// so the same seed always samples the same region and seed 0 samples the lattice unshifted.
type HashNoise struct {
	offsetX, offsetZ int32
}

// NewHashNoise returns a HashNoise for the given seed.
func NewHashNoise(seed int64) HashNoise {
	if seed == 0 {
		return HashNoise{}
	}
	h := xxh3.Hash(binary.LittleEndian.AppendUint64(nil, uint64(seed)))
	return HashNoise{
		offsetX: int32(h & 0xffff),
		offsetZ: int32((h >> 16) & 0xffff),
	}
}

// Sample ...
func (n HashNoise) Sample(x, z int32) float32 {
	return latticeHash(x+n.offsetX, z+n.offsetZ)
}

// latticeHash relies on int32 wraparound.
func latticeHash(x, z int32) float32 {
	n := x + z*57
	n = (n << 13) ^ n
	return 1 - float32((n*(n*n*15731+789221)+1376312589)&0x7fffffff)/1073741824
}

// perlinScale is the lattice distance covered by one perlin period.
const perlinScale = 16

// PerlinNoise samples smooth gradient noise from github.com/aquilax/go-perlin.
type PerlinNoise struct {
	p *perlin.Perlin
}

// NewPerlinNoise returns a PerlinNoise for the given seed.
func NewPerlinNoise(seed int64) *PerlinNoise {
	return &PerlinNoise{p: perlin.NewPerlin(2, 2, 3, seed)}
}

// Sample ...
func (n *PerlinNoise) Sample(x, z int32) float32 {
	v := float32(n.p.Noise2D(float64(x)/perlinScale, float64(z)/perlinScale))
	return math32.Max(-1, math32.Min(1, v))
}
