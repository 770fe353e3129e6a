package viewer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"anatomy-mapper/internal/scene"
	"anatomy-mapper/pkg/geometry"
)

func quadMesh(x, z float64, size float64, col color.RGBA) *scene.Mesh {
	h := size / 2
	a := r3.Vec{X: x - h, Y: -h, Z: z}
	b := r3.Vec{X: x + h, Y: -h, Z: z}
	c := r3.Vec{X: x + h, Y: h, Z: z}
	d := r3.Vec{X: x - h, Y: h, Z: z}
	mesh := &scene.Mesh{
		Material: &scene.Material{BaseColor: col},
		Triangles: []geometry.Triangle{
			{A: a, B: b, C: c},
			{A: a, B: c, C: d},
		},
		Bounds: geometry.EmptyAABB(),
	}
	for _, t := range mesh.Triangles {
		mesh.Bounds = mesh.Bounds.Union(t.Bounds())
	}
	return mesh
}

func TestRenderArenaOcclusion(t *testing.T) {
	arena := scene.NewArena()
	root := arena.AddNode("root", 0)

	// both quads centered on origin, the red one nearer the camera
	back := arena.AddNode("back", root)
	arena.SetMesh(back, quadMesh(0, 0, 8, color.RGBA{0, 0, 255, 255}))
	front := arena.AddNode("front", root)
	arena.SetMesh(front, quadMesh(0, 2, 4, color.RGBA{255, 0, 0, 255}))

	cam := scene.FitCamera(arena.Bounds(), 100, 100)
	img := RenderArena(arena, cam, color.RGBA{0, 0, 0, 255})

	center := img.RGBAAt(50, 50)
	assert.Greater(t, center.R, center.B, "front quad should occlude back quad")

	// a corner inside the big quad but outside the small one is blue
	edgeX := int(cam.ProjectX(-3.5))
	edgeY := int(cam.ProjectY(0))
	edge := img.RGBAAt(edgeX, edgeY)
	assert.Greater(t, edge.B, edge.R)

	corner := img.RGBAAt(0, 0)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, corner, "background where nothing renders")
}

func TestRenderArenaEmissiveBrightens(t *testing.T) {
	base := color.RGBA{100, 100, 100, 255}

	plain := scene.NewArena()
	id := plain.AddNode("m", 0)
	plain.SetMesh(id, quadMesh(0, 0, 4, base))
	cam := scene.FitCamera(plain.Bounds(), 60, 60)
	dark := RenderArena(plain, cam, color.RGBA{}).RGBAAt(30, 30)

	glowing := scene.NewArena()
	id = glowing.AddNode("m", 0)
	mesh := quadMesh(0, 0, 4, base)
	mesh.Material.Emissive = 0.8
	glowing.SetMesh(id, mesh)
	bright := RenderArena(glowing, cam, color.RGBA{}).RGBAAt(30, 30)

	assert.Greater(t, bright.R, dark.R)
}

func TestRenderArenaNilTolerated(t *testing.T) {
	cam := scene.Camera{Width: 10, Height: 10, Scale: 1}
	img := RenderArena(nil, cam, color.RGBA{9, 9, 9, 255})
	require.NotNil(t, img)
	assert.Equal(t, color.RGBA{9, 9, 9, 255}, img.RGBAAt(5, 5))
}
