package scene

import (
	"image/color"
	"testing"
	"time"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/selection"
	"anatomy-mapper/pkg/geometry"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var testGray = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// addQuad attaches a flat two-triangle square mesh at z=0 around center.
func addQuad(a *Arena, name string, parent NodeID, cx, cy, half float64, mat *Material) NodeID {
	id := a.AddNode(name, parent)
	bl := r3.Vec{X: cx - half, Y: cy - half}
	br := r3.Vec{X: cx + half, Y: cy - half}
	tr := r3.Vec{X: cx + half, Y: cy + half}
	tl := r3.Vec{X: cx - half, Y: cy + half}
	tris := []geometry.Triangle{{A: bl, B: br, C: tr}, {A: bl, B: tr, C: tl}}
	bounds := geometry.EmptyAABB()
	for _, t := range tris {
		bounds = bounds.Union(t.Bounds())
	}
	a.SetMesh(id, &Mesh{Triangles: tris, Bounds: bounds, Material: mat})
	return id
}

// earScene builds a two-part ear model: cochlea on the left, eardrum on
// the right, under a common root.
func earScene() *Arena {
	a := NewArena()
	root := a.AddNode("Ear_Model", 0)
	addQuad(a, "Cochlea", root, -5, 0, 2, &Material{BaseColor: testGray})
	addQuad(a, "Tympanic_Membrane", root, 5, 0, 2, &Material{BaseColor: testGray})
	return a
}

// pixelAt maps a world point to viewport pixels for the adapter's camera.
func pixelAt(ad *Adapter, wx, wy float64) (float64, float64) {
	cam := ad.Camera()
	return cam.ProjectX(wx), cam.ProjectY(wy)
}

// click performs a press/release pair well inside the click thresholds.
func click(ad *Adapter, px, py float64) {
	now := time.Now()
	ad.PressAt(px, py, now)
	ad.ReleaseAt(px, py, now.Add(50*time.Millisecond))
}

func newTestAdapter(cb PartSelectFunc) *Adapter {
	ad := NewAdapter(cb, zerolog.Nop())
	ad.Viewport(200, 200)
	return ad
}

func TestPickAt(t *testing.T) {
	ad := newTestAdapter(nil)
	ad.SetModel(earScene(), anatomy.Ear)

	px, py := pixelAt(ad, -5, 0)
	hit := PickAt(ad.Arena(), ad.Camera(), px, py)
	require.NotZero(t, hit)
	assert.Equal(t, "Cochlea", ad.Arena().Node(hit).Name)

	// Between the two quads there is nothing
	px, py = pixelAt(ad, 0, 0)
	assert.Zero(t, PickAt(ad.Arena(), ad.Camera(), px, py))
}

func TestClickSelectsAndReportsPart(t *testing.T) {
	var gotKey anatomy.PartKey
	var gotInfo *anatomy.PartInfo
	ad := newTestAdapter(func(key anatomy.PartKey, info *anatomy.PartInfo, guessed bool) {
		gotKey, gotInfo = key, info
	})
	ad.SetModel(earScene(), anatomy.Ear)

	px, py := pixelAt(ad, 5, 0)
	click(ad, px, py)

	assert.Equal(t, anatomy.PartKey("Eardrum"), ad.State().Selected)
	assert.Equal(t, anatomy.PartKey("Eardrum"), gotKey)
	require.NotNil(t, gotInfo)
	assert.Equal(t, "Eardrum", gotInfo.Name)
}

func TestClickToggleReturnsToIdle(t *testing.T) {
	ad := newTestAdapter(nil)
	ad.SetModel(earScene(), anatomy.Ear)

	px, py := pixelAt(ad, -5, 0)
	click(ad, px, py)
	assert.Equal(t, anatomy.PartKey("Cochlea"), ad.State().Selected)

	click(ad, px, py)
	assert.True(t, ad.State().IsIdle())

	// Appearance restored exactly
	for _, id := range ad.Arena().MeshIDs() {
		mesh := ad.Arena().Node(id).Mesh
		assert.Equal(t, testGray, mesh.Material.BaseColor)
		assert.Equal(t, 0.0, mesh.Material.Emissive)
	}
}

func TestSelectionSwitchLeavesNoResidual(t *testing.T) {
	ad := newTestAdapter(nil)
	ad.SetModel(earScene(), anatomy.Ear)

	cx, cy := pixelAt(ad, -5, 0)
	ex, ey := pixelAt(ad, 5, 0)

	click(ad, cx, cy) // select Cochlea
	click(ad, ex, ey) // select Eardrum

	assert.Equal(t, anatomy.PartKey("Eardrum"), ad.State().Selected)

	// The cochlea mesh is back to its recorded original
	var cochlea *Mesh
	for _, id := range ad.Arena().MeshIDs() {
		if ad.Arena().Node(id).Name == "Cochlea" {
			cochlea = ad.Arena().Node(id).Mesh
		}
	}
	require.NotNil(t, cochlea)
	assert.Equal(t, testGray, cochlea.Material.BaseColor)
	assert.Equal(t, 0.0, cochlea.Material.Emissive)
}

func TestClickEmptySpaceClears(t *testing.T) {
	calls := 0
	ad := newTestAdapter(func(key anatomy.PartKey, info *anatomy.PartInfo, guessed bool) {
		calls++
	})
	ad.SetModel(earScene(), anatomy.Ear)

	px, py := pixelAt(ad, -5, 0)
	click(ad, px, py)
	require.True(t, ad.State().HasSelection())

	ex, ey := pixelAt(ad, 0, 8) // above everything
	click(ad, ex, ey)
	assert.True(t, ad.State().IsIdle())

	for _, id := range ad.Arena().MeshIDs() {
		assert.Equal(t, testGray, ad.Arena().Node(id).Mesh.Material.BaseColor)
	}
}

func TestDragIsNotAClick(t *testing.T) {
	ad := newTestAdapter(nil)
	ad.SetModel(earScene(), anatomy.Ear)

	px, py := pixelAt(ad, -5, 0)

	// Too slow
	now := time.Now()
	ad.PressAt(px, py, now)
	ad.ReleaseAt(px, py, now.Add(time.Second))
	assert.False(t, ad.State().HasSelection())

	// Too far
	now = time.Now()
	ad.PressAt(px, py, now)
	ad.ReleaseAt(px+40, py, now.Add(50*time.Millisecond))
	assert.False(t, ad.State().HasSelection())
}

func TestHoverTintAndRestore(t *testing.T) {
	ad := newTestAdapter(nil)
	ad.SetModel(earScene(), anatomy.Ear)

	var cochlea *Mesh
	for _, id := range ad.Arena().MeshIDs() {
		if ad.Arena().Node(id).Name == "Cochlea" {
			cochlea = ad.Arena().Node(id).Mesh
		}
	}

	px, py := pixelAt(ad, -5, 0)
	ad.HoverAt(px, py)
	assert.Equal(t, anatomy.PartKey("Cochlea"), ad.State().Hovered)
	assert.NotEqual(t, testGray, cochlea.Material.BaseColor)
	assert.Greater(t, cochlea.Material.Emissive, 0.0)

	// Moving off restores the original appearance
	ex, ey := pixelAt(ad, 0, 8)
	ad.HoverAt(ex, ey)
	assert.Equal(t, anatomy.PartKey(""), ad.State().Hovered)
	assert.Equal(t, testGray, cochlea.Material.BaseColor)
	assert.Equal(t, 0.0, cochlea.Material.Emissive)
}

func TestHoverSuppressedOnSelectedPart(t *testing.T) {
	ad := newTestAdapter(nil)
	ad.SetModel(earScene(), anatomy.Ear)

	px, py := pixelAt(ad, -5, 0)
	click(ad, px, py)
	selectedColor := func() color.RGBA {
		for _, id := range ad.Arena().MeshIDs() {
			if ad.Arena().Node(id).Name == "Cochlea" {
				return ad.Arena().Node(id).Mesh.Material.BaseColor
			}
		}
		return color.RGBA{}
	}
	before := selectedColor()

	// Hovering the selected part applies no hover tint on top
	ad.HoverAt(px, py)
	assert.Equal(t, anatomy.PartKey(""), ad.State().Hovered)
	assert.Equal(t, before, selectedColor())
}

func TestMaterialCloneIsolation(t *testing.T) {
	// Two meshes sharing one source material: highlighting one must not
	// discolor the sibling.
	a := NewArena()
	root := a.AddNode("Ear_Model", 0)
	shared := &Material{BaseColor: testGray}
	addQuad(a, "Cochlea", root, -5, 0, 2, shared)
	addQuad(a, "Tympanic_Membrane", root, 5, 0, 2, shared)

	ad := newTestAdapter(nil)
	ad.SetModel(a, anatomy.Ear)

	px, py := pixelAt(ad, -5, 0)
	click(ad, px, py)

	for _, id := range ad.Arena().MeshIDs() {
		n := ad.Arena().Node(id)
		if n.Name == "Tympanic_Membrane" {
			assert.Equal(t, testGray, n.Mesh.Material.BaseColor, "sibling sharing the material must be untouched")
		} else {
			assert.NotEqual(t, testGray, n.Mesh.Material.BaseColor)
		}
	}

	// The source asset's material was never mutated
	assert.Equal(t, testGray, shared.BaseColor)
	assert.Equal(t, 0.0, shared.Emissive)
}

func TestHighlightCoversAllMeshesOfPart(t *testing.T) {
	// A part split across two meshes highlights both
	a := NewArena()
	root := a.AddNode("Ear_Model", 0)
	addQuad(a, "Cochlea", root, -5, 0, 2, &Material{BaseColor: testGray})
	addQuad(a, "cochlea_base", root, 5, 0, 2, &Material{BaseColor: testGray})

	ad := newTestAdapter(nil)
	ad.SetModel(a, anatomy.Ear)

	px, py := pixelAt(ad, -5, 0)
	click(ad, px, py)

	for _, id := range ad.Arena().MeshIDs() {
		assert.NotEqual(t, testGray, ad.Arena().Node(id).Mesh.Material.BaseColor)
	}
}

func TestSkeletonSelectsExactMeshInstance(t *testing.T) {
	// Two distinct bone meshes resolving to the same part key
	a := NewArena()
	root := a.AddNode("Skeleton_Model", 0)
	left := addQuad(a, "SM_HumanSkeleton_08", root, -5, 0, 2, &Material{BaseColor: testGray})
	right := addQuad(a, "SM_HumanSkeleton_09", root, 5, 0, 2, &Material{BaseColor: testGray})

	ad := newTestAdapter(nil)
	ad.SetModel(a, anatomy.Skeleton)

	px, py := pixelAt(ad, -5, 0)
	click(ad, px, py)
	require.Equal(t, anatomy.PartKey("Radius_Ulna"), ad.State().Selected)
	assert.Equal(t, selection.MeshID(left), ad.State().SelectedMesh)

	// Only the clicked instance is highlighted
	assert.NotEqual(t, testGray, ad.Arena().Node(left).Mesh.Material.BaseColor)
	assert.Equal(t, testGray, ad.Arena().Node(right).Mesh.Material.BaseColor)

	// Clicking the sibling re-selects it rather than toggling off
	px, py = pixelAt(ad, 5, 0)
	click(ad, px, py)
	assert.Equal(t, anatomy.PartKey("Radius_Ulna"), ad.State().Selected)
	assert.Equal(t, selection.MeshID(right), ad.State().SelectedMesh)
	assert.Equal(t, testGray, ad.Arena().Node(left).Mesh.Material.BaseColor)
}

func TestUnnamedSkeletonMeshReportsGuessedSelection(t *testing.T) {
	// Root and mesh both unnamed: resolution falls back to the load
	// index. The highlight keeps that guess, and the callback flags it
	// so info surfaces can refuse to display it.
	a := NewArena()
	root := a.AddNode("", 0)
	addQuad(a, "", root, -5, 0, 2, &Material{BaseColor: testGray})
	addQuad(a, "SM_HumanSkeleton_07", root, 5, 0, 2, &Material{BaseColor: testGray})

	var gotKey anatomy.PartKey
	var gotGuessed bool
	ad := newTestAdapter(func(key anatomy.PartKey, info *anatomy.PartInfo, guessed bool) {
		gotKey, gotGuessed = key, guessed
	})
	ad.SetModel(a, anatomy.Skeleton)

	px, py := pixelAt(ad, -5, 0)
	click(ad, px, py)
	require.True(t, ad.State().HasSelection())
	assert.Equal(t, anatomy.PartKey("Skull"), gotKey)
	assert.True(t, gotGuessed)

	// A mesh with a numbered name resolves without guessing
	px, py = pixelAt(ad, 5, 0)
	click(ad, px, py)
	assert.Equal(t, anatomy.PartKey("Humerus"), gotKey)
	assert.False(t, gotGuessed)
}

func TestSetModelResetsState(t *testing.T) {
	var lastKey anatomy.PartKey = "sentinel"
	ad := newTestAdapter(func(key anatomy.PartKey, info *anatomy.PartInfo, guessed bool) {
		lastKey = key
	})
	ad.SetModel(earScene(), anatomy.Ear)

	px, py := pixelAt(ad, -5, 0)
	click(ad, px, py)
	require.True(t, ad.State().HasSelection())

	ad.SetModel(earScene(), anatomy.Ear)
	assert.True(t, ad.State().IsIdle())
	assert.Equal(t, anatomy.PartKey(""), lastKey)
}

func TestNilModelTolerated(t *testing.T) {
	ad := newTestAdapter(nil)
	ad.SetModel(nil, anatomy.Ear)

	// No crash, no highlight attempted
	ad.HoverAt(10, 10)
	click(ad, 10, 10)
	assert.True(t, ad.State().IsIdle())
}
