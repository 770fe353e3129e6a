// Package viewer provides the interactive model and diagram views.
package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"anatomy-mapper/internal/scene"
	"anatomy-mapper/pkg/colorutil"
)

// Flat-shading light: a fixed headlight slightly above and to the
// right of the camera.
var lightDir = r3.Unit(r3.Vec{X: 0.3, Y: 0.5, Z: 0.8})

const (
	ambientLight = 0.35
	diffuseLight = 0.65
)

var white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

// RenderArena rasterizes the arena through the orthographic camera
// into an RGBA image with a z-buffer, flat shading each triangle by
// its face normal and pulling emissive surfaces toward white.
func RenderArena(arena *scene.Arena, cam scene.Camera, background color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cam.Width, cam.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)
	if arena == nil || cam.Width <= 0 || cam.Height <= 0 {
		return img
	}

	zbuf := make([]float64, cam.Width*cam.Height)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}

	for _, id := range arena.MeshIDs() {
		mesh := arena.Node(id).Mesh
		shadeAndFill(img, zbuf, cam, mesh)
	}
	return img
}

func shadeAndFill(img *image.RGBA, zbuf []float64, cam scene.Camera, mesh *scene.Mesh) {
	base := mesh.Material.BaseColor
	emissive := mesh.Material.Emissive

	for _, tri := range mesh.Triangles {
		normal := triangleNormal(tri.A, tri.B, tri.C)
		intensity := ambientLight + diffuseLight*math.Max(0, r3.Dot(normal, lightDir))
		shaded := colorutil.Shade(base, intensity)
		if emissive > 0 {
			shaded = colorutil.Mix(shaded, white, emissive)
		}
		fillTriangle(img, zbuf, cam, tri.A, tri.B, tri.C, shaded)
	}
}

// triangleNormal flips the face normal toward the camera so winding
// order in source assets does not darken half the model.
func triangleNormal(a, b, c r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	if r3.Norm(n) == 0 {
		return r3.Vec{Z: 1}
	}
	n = r3.Unit(n)
	if n.Z < 0 {
		n = r3.Scale(-1, n)
	}
	return n
}

// fillTriangle scan-fills one triangle with barycentric coverage and a
// depth test. The camera looks down -Z, so larger Z wins.
func fillTriangle(img *image.RGBA, zbuf []float64, cam scene.Camera, a, b, c r3.Vec, col color.RGBA) {
	ax, ay := cam.ProjectX(a.X), cam.ProjectY(a.Y)
	bx, by := cam.ProjectX(b.X), cam.ProjectY(b.Y)
	cx, cy := cam.ProjectX(c.X), cam.ProjectY(c.Y)

	area := (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	if area == 0 {
		return
	}

	minX := clampInt(int(math.Floor(min3(ax, bx, cx))), 0, cam.Width-1)
	maxX := clampInt(int(math.Ceil(max3(ax, bx, cx))), 0, cam.Width-1)
	minY := clampInt(int(math.Floor(min3(ay, by, cy))), 0, cam.Height-1)
	maxY := clampInt(int(math.Ceil(max3(ay, by, cy))), 0, cam.Height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := ((bx-px)*(cy-py) - (by-py)*(cx-px)) / area
			w1 := ((cx-px)*(ay-py) - (cy-py)*(ax-px)) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			depth := w0*a.Z + w1*b.Z + w2*c.Z
			idx := y*cam.Width + x
			if depth <= zbuf[idx] {
				continue
			}
			zbuf[idx] = depth
			img.SetRGBA(x, y, col)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
