package sim

import "github.com/go-gl/mathgl/mgl32"

// InputState represents a single tick's input.
type InputState struct {
	Forward, Back bool
	Left, Right   bool
	Jump          bool

	// MouseDelta is the pointer movement since the last tick, in pixels.
	MouseDelta mgl32.Vec2
}

// MoveDirection sums the pressed movement keys over the given basis, flattened onto the
// horizontal plane. The result is normalized unless it is (nearly) zero.
func (i InputState) MoveDirection(forward, right mgl32.Vec3) mgl32.Vec3 {
	var move mgl32.Vec3
	if i.Forward {
		move = move.Add(forward)
	}
	if i.Back {
		move = move.Sub(forward)
	}
	if i.Left {
		move = move.Sub(right)
	}
	if i.Right {
		move = move.Add(right)
	}
	move[1] = 0
	if move.Len() > minMoveLength {
		move = move.Normalize()
	}
	return move
}

const minMoveLength = 0.01
