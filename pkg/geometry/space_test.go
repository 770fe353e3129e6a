package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTriangleIntersectRay(t *testing.T) {
	tri := Triangle{
		A: r3.Vec{X: -1, Y: -1, Z: 0},
		B: r3.Vec{X: 1, Y: -1, Z: 0},
		C: r3.Vec{X: 0, Y: 1, Z: 0},
	}

	// Straight through the center
	ray := NewRay(r3.Vec{X: 0, Y: 0, Z: 5}, r3.Vec{X: 0, Y: 0, Z: -1})
	dist, hit := tri.IntersectRay(ray)
	assert.True(t, hit)
	assert.InDelta(t, 5.0, dist, 1e-9)

	// Misses to the side
	ray = NewRay(r3.Vec{X: 3, Y: 0, Z: 5}, r3.Vec{X: 0, Y: 0, Z: -1})
	_, hit = tri.IntersectRay(ray)
	assert.False(t, hit)

	// Behind the origin
	ray = NewRay(r3.Vec{X: 0, Y: 0, Z: -5}, r3.Vec{X: 0, Y: 0, Z: -1})
	_, hit = tri.IntersectRay(ray)
	assert.False(t, hit)

	// Parallel to the plane
	ray = NewRay(r3.Vec{X: 0, Y: 0, Z: 1}, r3.Vec{X: 1, Y: 0, Z: 0})
	_, hit = tri.IntersectRay(ray)
	assert.False(t, hit)
}

func TestAABBIntersectRay(t *testing.T) {
	box := AABB{
		Min: r3.Vec{X: -1, Y: -1, Z: -1},
		Max: r3.Vec{X: 1, Y: 1, Z: 1},
	}

	assert.True(t, box.IntersectRay(NewRay(r3.Vec{Z: 5}, r3.Vec{Z: -1})))
	assert.False(t, box.IntersectRay(NewRay(r3.Vec{X: 5, Z: 5}, r3.Vec{Z: -1})))
	// Ray starting inside the box
	assert.True(t, box.IntersectRay(NewRay(r3.Vec{}, r3.Vec{X: 1})))
	// Box entirely behind the origin
	assert.False(t, box.IntersectRay(NewRay(r3.Vec{Z: 5}, r3.Vec{Z: 1})))
}

func TestAABBExtend(t *testing.T) {
	box := EmptyAABB().Extend(r3.Vec{X: 1, Y: 2, Z: 3}).Extend(r3.Vec{X: -1, Y: 0, Z: 5})
	assert.Equal(t, r3.Vec{X: -1, Y: 0, Z: 3}, box.Min)
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 5}, box.Max)
}
