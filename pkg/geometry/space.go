package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ray is a ray in 3D space with a normalized direction.
type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec
}

// NewRay creates a ray, normalizing the direction.
func NewRay(origin, dir r3.Vec) Ray {
	return Ray{Origin: origin, Dir: r3.Unit(dir)}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Dir))
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min r3.Vec
	Max r3.Vec
}

// EmptyAABB returns a box that contains nothing and extends under Extend.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: r3.Vec{X: inf, Y: inf, Z: inf},
		Max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

// Extend grows the box to include the point.
func (b AABB) Extend(p r3.Vec) AABB {
	return AABB{
		Min: r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box containing both boxes.
func (b AABB) Union(other AABB) AABB {
	return b.Extend(other.Min).Extend(other.Max)
}

// Center returns the center point of the box.
func (b AABB) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// IntersectRay returns true if the ray hits the box (slab method).
func (b AABB) IntersectRay(ray Ray) bool {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := component(ray.Origin, axis)
		dir := component(ray.Dir, axis)
		lo := component(b.Min, axis)
		hi := component(b.Max, axis)

		if math.Abs(dir) < 1e-12 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		t0 := (lo - origin) / dir
		t1 := (hi - origin) / dir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return false
		}
	}

	return tMax >= 0
}

func component(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Triangle is a triangle in 3D space.
type Triangle struct {
	A, B, C r3.Vec
}

// Bounds returns the bounding box of the triangle.
func (t Triangle) Bounds() AABB {
	return EmptyAABB().Extend(t.A).Extend(t.B).Extend(t.C)
}

// IntersectRay computes the ray/triangle intersection using the
// Moller-Trumbore algorithm. Returns the distance along the ray and
// whether the triangle was hit in front of the origin.
func (t Triangle) IntersectRay(ray Ray) (float64, bool) {
	const eps = 1e-9

	e1 := r3.Sub(t.B, t.A)
	e2 := r3.Sub(t.C, t.A)

	p := r3.Cross(ray.Dir, e2)
	det := r3.Dot(e1, p)
	if math.Abs(det) < eps {
		return 0, false // Ray parallel to triangle plane
	}

	invDet := 1.0 / det
	s := r3.Sub(ray.Origin, t.A)
	u := r3.Dot(s, p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := r3.Cross(s, e1)
	v := r3.Dot(ray.Dir, q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	dist := r3.Dot(e2, q) * invDet
	if dist < eps {
		return 0, false // Hit behind the ray origin
	}

	return dist, true
}
