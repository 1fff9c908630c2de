package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// SafeNormalize returns v scaled to unit length, or the zero vector if v has no length. mgl32's
// Normalize divides by the length unconditionally and yields NaN components for a zero vector.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= 0 || math32.IsNaN(l) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// Horizontal returns v with its vertical component dropped.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], 0, v[2]}
}

// IsFiniteVec3 reports whether none of the components are NaN or infinite.
func IsFiniteVec3(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Forward returns the unit view direction for the given yaw and pitch, in radians. Yaw rotates
// about the +Y axis starting at +X, pitch lifts the direction towards +Y.
func Forward(yaw, pitch float32) mgl32.Vec3 {
	cp := math32.Cos(pitch)
	return SafeNormalize(mgl32.Vec3{
		math32.Cos(yaw) * cp,
		math32.Sin(pitch),
		math32.Sin(yaw) * cp,
	})
}

// Right returns the horizontal unit vector to the right of the view direction for the given yaw.
func Right(yaw float32) mgl32.Vec3 {
	return SafeNormalize(mgl32.Vec3{-math32.Sin(yaw), 0, math32.Cos(yaw)})
}

// PHPSpaceshipOp returns -1 if x < y, 0 if x == y, or 1 if x > y.
func PHPSpaceshipOp(x, y float32) float32 {
	if x < y {
		return -1
	} else if x == y {
		return 0
	}

	return 1
}
