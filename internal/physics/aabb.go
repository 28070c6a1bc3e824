package physics

import (
	"math"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// EmptyAABB is inverted so that the first Grow sets both corners.
func EmptyAABB() AABB {
	return AABB{
		Min: rl.Vector3{X: math.MaxFloat32, Y: math.MaxFloat32, Z: math.MaxFloat32},
		Max: rl.Vector3{X: -math.MaxFloat32, Y: -math.MaxFloat32, Z: -math.MaxFloat32},
	}
}

func (a AABB) Grow(p rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3{X: math32.Min(a.Min.X, p.X), Y: math32.Min(a.Min.Y, p.Y), Z: math32.Min(a.Min.Z, p.Z)},
		Max: rl.Vector3{X: math32.Max(a.Max.X, p.X), Y: math32.Max(a.Max.Y, p.Y), Z: math32.Max(a.Max.Z, p.Z)},
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// RayIntersects reports whether the ray enters the box before maxDist.
// invDir holds 1/dir per axis; infinities for zero components are fine.
func (a AABB) RayIntersects(origin, invDir rl.Vector3, maxDist float32) bool {
	tmin, tmax := float32(0), maxDist
	for axis := 0; axis < 3; axis++ {
		o, inv := axisOf(origin, axis), axisOf(invDir, axis)
		t1 := (axisOf(a.Min, axis) - o) * inv
		t2 := (axisOf(a.Max, axis) - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		// NaN from 0*Inf means the origin sits on a slab plane; treat as inside.
		if t1 == t1 {
			tmin = math32.Max(tmin, t1)
		}
		if t2 == t2 {
			tmax = math32.Min(tmax, t2)
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}

func axisOf(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
