package game

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BlocksBetween yields every unit voxel the segment from start to end passes through, in the
// order the segment enters them. Coordinates are in voxel space: voxel (x, y, z) spans
// [x, x+1) on each axis.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func BlocksBetween(start, end mgl32.Vec3) iter.Seq[cube.Pos] {
	return func(yield func(cube.Pos) bool) {
		dirVec := SafeNormalize(end.Sub(start))
		if dirVec.LenSqr() <= 0 {
			return
		}

		radius := start.Sub(end).Len()
		stepX := PHPSpaceshipOp(dirVec.X(), 0)
		stepY := PHPSpaceshipOp(dirVec.Y(), 0)
		stepZ := PHPSpaceshipOp(dirVec.Z(), 0)

		tMaxX := rayTraceDistanceToBoundary(start.X(), dirVec.X())
		tMaxY := rayTraceDistanceToBoundary(start.Y(), dirVec.Y())
		tMaxZ := rayTraceDistanceToBoundary(start.Z(), dirVec.Z())

		var tDeltaX, tDeltaY, tDeltaZ float32
		if dirVec.X() != 0 {
			tDeltaX = stepX / dirVec.X()
		}
		if dirVec.Y() != 0 {
			tDeltaY = stepY / dirVec.Y()
		}
		if dirVec.Z() != 0 {
			tDeltaZ = stepZ / dirVec.Z()
		}

		current := cube.PosFromVec3(start)
		for {
			if !yield(current) {
				return
			}

			if tMaxX < tMaxY && tMaxX < tMaxZ {
				if tMaxX > radius {
					return
				}
				current[0] += int(stepX)
				tMaxX += tDeltaX
			} else if tMaxY < tMaxZ {
				if tMaxY > radius {
					return
				}
				current[1] += int(stepY)
				tMaxY += tDeltaY
			} else {
				if tMaxZ > radius {
					return
				}
				current[2] += int(stepZ)
				tMaxZ += tDeltaZ
			}
		}
	}
}

// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func rayTraceDistanceToBoundary(s, ds float32) float32 {
	if ds == 0 {
		return math32.MaxFloat32
	}

	if ds < 0 {
		s = -s
		ds = -ds

		if math32.Floor(s) == s {
			return 0
		}
	}

	return (1 - (s - math32.Floor(s))) / ds
}
