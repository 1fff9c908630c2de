package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/cubesim/game"
	"github.com/oomph-ac/cubesim/sim"
)

// Camera describes the perspective the world is rendered with.
type Camera struct {
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float32
	Near, Far   float32
	// EyeOffset lifts the eye above the simulated player position.
	EyeOffset float32

	ViewportWidth, ViewportHeight int
}

// DefaultCamera ...
func DefaultCamera() Camera {
	return Camera{
		FieldOfView:    game.DefaultFieldOfView,
		Near:           game.DefaultNearClip,
		Far:            game.DefaultFarClip,
		EyeOffset:      game.CameraEyeOffset,
		ViewportWidth:  game.DefaultViewportWidth,
		ViewportHeight: game.DefaultViewportHeight,
	}
}

// Aspect returns the viewport's width to height ratio, or 1 for an empty viewport.
func (c Camera) Aspect() float32 {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return 1
	}
	return float32(c.ViewportWidth) / float32(c.ViewportHeight)
}

// Projection returns the camera's projection matrix.
func (c Camera) Projection() mgl32.Mat4 {
	return game.Perspective(mgl32.DegToRad(c.FieldOfView), c.Aspect(), c.Near, c.Far)
}

// Eye returns the point the player sees from.
func (c Camera) Eye(state sim.PlayerState) mgl32.Vec3 {
	return state.Pos.Add(mgl32.Vec3{0, c.EyeOffset, 0})
}

// View returns the view matrix looking from the player's eye along its view direction.
func (c Camera) View(state sim.PlayerState) mgl32.Mat4 {
	eye := c.Eye(state)
	return game.LookAt(eye, eye.Add(state.Forward()), mgl32.Vec3{0, 1, 0})
}
