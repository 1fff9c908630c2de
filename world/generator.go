package world

import (
	"github.com/chewxy/math32"
)

const (
	// falloffRadius is the island radius as a fraction of the smaller grid side.
	falloffRadius float32 = 0.45
	// heightBias nudges values sitting just below an integer height up to it.
	heightBias float32 = 0.001
)

type generateConfig struct {
	blockSize float32
	noise     Noise
}

// GenerateOption configures Generate.
type GenerateOption func(*generateConfig)

// WithBlockSize sets the edge length of a cube. The default is DefaultBlockSize.
func WithBlockSize(size float32) GenerateOption {
	return func(c *generateConfig) {
		c.blockSize = size
	}
}

// WithNoise replaces the default HashNoise for the seed.
func WithNoise(n Noise) GenerateOption {
	return func(c *generateConfig) {
		c.noise = n
	}
}

// Generate builds an island shaped heightfield on a width x depth grid. Each cell's height comes
// from a radial falloff around the grid centre blended with two octaves of noise. The result is
// fully determined by the arguments. ErrInvalidDimensions is returned for non-positive sizes.
func Generate(width, depth, maxStack int, seed int64, opts ...GenerateOption) (*World, error) {
	conf := generateConfig{blockSize: DefaultBlockSize}
	for _, opt := range opts {
		opt(&conf)
	}
	if conf.noise == nil {
		conf.noise = NewHashNoise(seed)
	}

	w, err := New(Dimensions{
		Width:     width,
		Depth:     depth,
		MaxStack:  maxStack,
		BlockSize: conf.blockSize,
	}, seed)
	if err != nil {
		return nil, err
	}

	cx, cz := width/2, depth/2
	radius := float32(min(width, depth)) * falloffRadius
	for z := range depth {
		for x := range width {
			dx, dz := float32(x-cx), float32(z-cz)
			mask := 1 - math32.Sqrt(dx*dx+dz*dz)/radius
			if mask <= 0 {
				continue
			}

			n := conf.noise.Sample(int32(x*3), int32(z*3))*0.6 + conf.noise.Sample(int32(x*7), int32(z*7))*0.4
			v := mask * (0.5 + n*0.5)
			height := int(math32.Floor(v*float32(maxStack) + heightBias))
			if height <= 0 {
				continue
			}
			w.blocks.Set(Column{X: x, Z: z}, Block{X: x, Z: z, Height: height})
		}
	}
	return w, nil
}
