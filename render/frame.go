package render

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/game"
	"github.com/oomph-ac/cubesim/sim"
	"github.com/oomph-ac/cubesim/world"
)

// ClearColor is the sky color frames are cleared to.
var ClearColor = mgl32.Vec4{0.53, 0.81, 0.92, 1}

// Instance is a single cube to draw: a unit cube centred on the origin, scaled uniformly by Scale
// and moved to Position.
type Instance struct {
	Position mgl32.Vec3
	Scale    float32
	Color    mgl32.Vec3
}

// Model returns the instance's model matrix.
func (i Instance) Model() mgl32.Mat4 {
	return game.ModelMatrix(i.Position, i.Scale)
}

// LevelColor returns the flat color of a cube at the given stack level. Higher levels are
// warmer.
func LevelColor(level int) mgl32.Vec3 {
	l := float32(level)
	return mgl32.Vec3{0.2 + 0.08*l, 0.6 - 0.05*l, 0.2}
}

// Frame is everything a backend needs to draw one frame.
type Frame struct {
	Sequence uint64

	Projection, View mgl32.Mat4
	// ViewProjection is Projection.Mul4(View).
	ViewProjection mgl32.Mat4
	Eye            mgl32.Vec3
	Clear          mgl32.Vec4

	Instances []Instance
}

// MVP returns the model-view-projection matrix of the i-th instance.
func (f Frame) MVP(i int) mgl32.Mat4 {
	return f.ViewProjection.Mul4(f.Instances[i].Model())
}

// Scene is the part of a world a frame is built from. *world.World implements it.
type Scene interface {
	Dimensions() world.Dimensions
	Blocks() iter.Seq[world.Block]
}

// BuildFrame builds the frame for the player's current view. Instances are appended to dst[:0],
// so callers may pass the previous frame's slice to reuse it.
func BuildFrame(cam Camera, scene Scene, state sim.PlayerState, dst []Instance) Frame {
	proj, view := cam.Projection(), cam.View(state)
	f := Frame{
		Projection:     proj,
		View:           view,
		ViewProjection: game.ViewProjection(proj, view),
		Eye:            cam.Eye(state),
		Clear:          ClearColor,
		Instances:      dst[:0],
	}
	if scene == nil {
		return f
	}

	dims := scene.Dimensions()
	for b := range scene.Blocks() {
		x, z := dims.Centre(b.Column())
		for level := range b.Height {
			f.Instances = append(f.Instances, Instance{
				Position: mgl32.Vec3{x, float32(level)*dims.BlockSize + dims.BlockSize/2, z},
				Scale:    dims.BlockSize,
				Color:    LevelColor(level),
			})
		}
	}
	return f
}
