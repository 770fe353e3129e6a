package scene

import (
	"math"

	"anatomy-mapper/pkg/geometry"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera is an orthographic camera looking down -Z at the model,
// mapping viewport pixels to world-space rays.
type Camera struct {
	Width  int     // viewport width in pixels
	Height int     // viewport height in pixels
	Scale  float64 // world units per pixel
	Center r3.Vec  // look-at point
	EyeZ   float64 // ray origin depth, in front of the model
}

// FitCamera frames the model bounds in a viewport with a small margin.
func FitCamera(bounds geometry.AABB, width, height int) Camera {
	center := bounds.Center()
	spanX := bounds.Max.X - bounds.Min.X
	spanY := bounds.Max.Y - bounds.Min.Y
	if spanX <= 0 || math.IsInf(spanX, -1) {
		spanX = 1
	}
	if spanY <= 0 || math.IsInf(spanY, -1) {
		spanY = 1
	}

	const margin = 1.1
	scaleX := spanX * margin / float64(width)
	scaleY := spanY * margin / float64(height)

	return Camera{
		Width:  width,
		Height: height,
		Scale:  math.Max(scaleX, scaleY),
		Center: center,
		EyeZ:   bounds.Max.Z + 1,
	}
}

// RayAt returns the pick ray through viewport pixel (px, py).
func (c Camera) RayAt(px, py float64) geometry.Ray {
	wx := c.Center.X + (px-float64(c.Width)/2)*c.Scale
	wy := c.Center.Y - (py-float64(c.Height)/2)*c.Scale
	return geometry.Ray{
		Origin: r3.Vec{X: wx, Y: wy, Z: c.EyeZ},
		Dir:    r3.Vec{X: 0, Y: 0, Z: -1},
	}
}

// ProjectX maps a world X coordinate to a viewport pixel column.
func (c Camera) ProjectX(wx float64) float64 {
	return (wx-c.Center.X)/c.Scale + float64(c.Width)/2
}

// ProjectY maps a world Y coordinate to a viewport pixel row.
func (c Camera) ProjectY(wy float64) float64 {
	return float64(c.Height)/2 - (wy-c.Center.Y)/c.Scale
}

// PickAt casts the pixel's ray into the arena and returns the nearest
// intersected mesh node. Returns 0 when the ray hits nothing.
func PickAt(a *Arena, cam Camera, px, py float64) NodeID {
	if a == nil {
		return 0
	}

	ray := cam.RayAt(px, py)
	best := NodeID(0)
	bestDist := math.Inf(1)

	for _, id := range a.MeshIDs() {
		mesh := a.Node(id).Mesh
		if !mesh.Bounds.IntersectRay(ray) {
			continue
		}
		for _, tri := range mesh.Triangles {
			dist, hit := tri.IntersectRay(ray)
			if hit && dist < bestDist {
				bestDist = dist
				best = id
			}
		}
	}

	return best
}
