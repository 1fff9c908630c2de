package game

import "github.com/go-gl/mathgl/mgl32"

// All matrices in cubesim are mgl32.Mat4 values: column-major, applied to column vectors, and
// composed right to left. A.Mul4(B) is the transform that applies B first, then A, so the full
// chain for a vertex is Projection.Mul4(View).Mul4(Model).

// Perspective returns a right-handed projection matrix mapping the view frustum to clip space
// with depth in [-1, 1]. fovY is in radians.
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fovY, aspect, near, far)
}

// LookAt returns a right-handed view matrix for a camera at eye looking towards target.
func LookAt(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, target, up)
}

// ModelMatrix translates a uniformly scaled unit shape to pos.
func ModelMatrix(pos mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(mgl32.Scale3D(scale, scale, scale))
}

// ViewProjection composes projection and view into a single matrix.
func ViewProjection(projection, view mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view)
}

// TransformPoint applies m to the point p and performs the perspective divide.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	clip := m.Mul4x1(p.Vec4(1))
	if clip.W() == 0 {
		return clip.Vec3()
	}
	return clip.Vec3().Mul(1 / clip.W())
}
