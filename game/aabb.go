package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BoxFromMin returns a cube with the given edge length whose minimum corner is min.
func BoxFromMin(min mgl32.Vec3, size float32) cube.BBox {
	return cube.Box(
		min.X(), min.Y(), min.Z(),
		min.X()+size, min.Y()+size, min.Z()+size,
	)
}

// ClosestPointToBBox returns the point of the box nearest to v, found by clamping each axis.
func ClosestPointToBBox(v mgl32.Vec3, bb cube.BBox) mgl32.Vec3 {
	min, max := bb.Min(), bb.Max()
	return mgl32.Vec3{
		math32.Max(min.X(), math32.Min(v.X(), max.X())),
		math32.Max(min.Y(), math32.Min(v.Y(), max.Y())),
		math32.Max(min.Z(), math32.Min(v.Z(), max.Z())),
	}
}

// AABBVectorDistance calculates the distance between an AABB and a vector.
func AABBVectorDistance(a cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(a.Min().X()-v.X(), math32.Max(0, v.X()-a.Max().X()))
	y := math32.Max(a.Min().Y()-v.Y(), math32.Max(0, v.Y()-a.Max().Y()))
	z := math32.Max(a.Min().Z()-v.Z(), math32.Max(0, v.Z()-a.Max().Z()))

	dist := math32.Sqrt(x*x + y*y + z*z)
	if math32.IsNaN(dist) {
		dist = 0
	}

	return dist
}
