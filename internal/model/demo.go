package model

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/scene"
	"anatomy-mapper/pkg/geometry"
)

// demoPart is one slab of a built-in placeholder model: a named mesh at
// a laid-out position, resolvable through the normal name cascade.
type demoPart struct {
	name  string
	x, y  float64
	w, h  float64
	color color.RGBA
}

var (
	demoTint  = color.RGBA{0xD9, 0xA8, 0x9C, 0xFF} // soft tissue
	demoBone  = color.RGBA{0xE8, 0xE2, 0xD4, 0xFF}
	demoDark  = color.RGBA{0xB0, 0x6A, 0x5A, 0xFF}
	demoPale  = color.RGBA{0xF2, 0xC9, 0xB8, 0xFF}
	demoTeeth = color.RGBA{0xF5, 0xF2, 0xE8, 0xFF}
)

// demoLayouts are the placeholder models shipped for each anatomy type,
// used until a real asset is loaded. Node names are chosen to exercise
// the same resolution paths a production export would.
var demoLayouts = map[anatomy.Type][]demoPart{
	anatomy.Ear: {
		{"Outer_Ear", -9, 0, 4, 8, demoPale},
		{"Ear_Canal", -4, 0, 4, 2, demoTint},
		{"Tympanic_Membrane", -1, 0, 1, 3, demoDark},
		{"Ossicles", 1, 1, 2, 2, demoBone},
		{"Cochlea", 5, -1, 3, 3, demoTint},
		{"Semicircular_Canals", 5, 3, 3, 2, demoTint},
		{"Eustachian_Tube", 2, -4, 2, 4, demoPale},
		{"Auditory_Nerve", 9, 0, 3, 1, demoDark},
	},
	anatomy.Nose: {
		{"Nostril_L", -2, -6, 2, 2, demoPale},
		{"Nostril_R", 2, -6, 2, 2, demoPale},
		{"Nasal_Septum", 0, -2, 1, 6, demoTint},
		{"Nasal_Cavity", 0, 3, 6, 4, demoTint},
		{"Sinus_Frontal", 0, 8, 4, 3, demoPale},
		{"Turbinate_Inferior", -3, 1, 2, 2, demoDark},
		{"Olfactory_Bulb", 0, 6, 2, 1, demoDark},
	},
	anatomy.Throat: {
		{"Pharynx_Upper", 0, 8, 4, 3, demoTint},
		{"Epiglottis_Flap", 0, 4, 3, 1, demoDark},
		{"Larynx_Box", 0, 1, 4, 3, demoTint},
		{"Vocal_Cords", 0, -1, 3, 1, demoDark},
		{"Tonsil_L", -4, 7, 2, 2, demoPale},
		{"Tonsil_R", 4, 7, 2, 2, demoPale},
		{"Esophagus_Tube", -2, -6, 2, 5, demoTint},
		{"Trachea_Tube", 2, -6, 2, 5, demoPale},
	},
	anatomy.Dental: {
		{"Incisor_Upper_L", -1, 4, 1, 2, demoTeeth},
		{"Incisor_Upper_R", 1, 4, 1, 2, demoTeeth},
		{"Molar_Upper_L", -5, 3, 2, 2, demoTeeth},
		{"Molar_Upper_R", 5, 3, 2, 2, demoTeeth},
		{"Wisdom_Tooth_Lower_L", -7, -3, 2, 2, demoTeeth},
		{"Wisdom_Tooth_Lower_R", 7, -3, 2, 2, demoTeeth},
		{"Gum_Upper", 0, 6, 12, 1, demoDark},
		{"Gum_Lower", 0, -6, 12, 1, demoDark},
		{"Maxilla_Arch", 0, 8, 14, 1, demoBone},
		{"Mandible_Arch", 0, -8, 14, 1, demoBone},
		{"Tongue_Body", 0, 0, 6, 4, demoTint},
	},
	anatomy.Lungs: {
		{"Trachea_Main", 0, 8, 2, 4, demoPale},
		{"Bronchus_L", -3, 4, 2, 3, demoTint},
		{"Bronchus_R", 3, 4, 2, 3, demoTint},
		{"Lung_Left_Lobe", -6, -1, 5, 8, demoTint},
		{"Lung_Right_Lobe", 6, -1, 5, 8, demoTint},
		{"Bronchiole_Cluster", -6, -4, 2, 2, demoDark},
		{"Alveoli_Sac", 6, -4, 2, 2, demoDark},
		{"Diaphragm_Dome", 0, -7, 14, 2, demoDark},
		{"Pleura_Lining", 0, 3, 1, 2, demoPale},
	},
	anatomy.Kidney: {
		{"Kidney_Left", -5, 2, 4, 6, demoDark},
		{"Renal_Cortex_Band", -5, 5, 4, 1, demoTint},
		{"Renal_Medulla_Core", -5, 1, 2, 2, demoPale},
		{"Renal_Pelvis_Hollow", -3, 0, 1, 2, demoPale},
		{"Renal_Artery_Left", -1, 3, 2, 1, demoDark},
		{"Ureter_Left", -2, -3, 1, 5, demoTint},
		{"Bladder_Body", 0, -7, 5, 3, demoTint},
		{"Urethra_Outlet", 0, -9, 1, 1, demoPale},
	},
}

// Demo returns the built-in placeholder arena for an anatomy type.
// The skeleton demo is generated rather than tabled: twenty numbered
// meshes sharing one bone material under an armature root, the shape
// skeleton exports actually take.
func Demo(typ anatomy.Type) *scene.Arena {
	if typ == anatomy.Skeleton {
		return skeletonDemo()
	}

	arena := scene.NewArena()
	root := arena.AddNode(typ.String()+"_Model", 0)
	for _, p := range demoLayouts[typ] {
		id := arena.AddNode(p.name, root)
		mat := &scene.Material{BaseColor: p.color}
		arena.SetMesh(id, slabMesh(p.x, p.y, p.w, p.h, mat))
	}
	arena.AssignLoadIndexes()
	return arena
}

func skeletonDemo() *scene.Arena {
	arena := scene.NewArena()
	root := arena.AddNode("Armature", 0)
	shared := &scene.Material{BaseColor: demoBone}
	for i := 1; i <= 20; i++ {
		col := (i - 1) % 5
		row := (i - 1) / 5
		id := arena.AddNode(skeletonMeshName(i), root)
		arena.SetMesh(id, slabMesh(float64(col*4-8), float64(6-row*4), 3, 3, shared))
	}
	arena.AssignLoadIndexes()
	return arena
}

func skeletonMeshName(i int) string {
	return fmt.Sprintf("SM_HumanSkeleton_%02d", i)
}

// slabMesh builds a two-triangle quad centered on (x, y) in the z = 0
// plane, facing the orthographic camera.
func slabMesh(x, y, w, h float64, mat *scene.Material) *scene.Mesh {
	hw, hh := w/2, h/2
	a := r3.Vec{X: x - hw, Y: y - hh}
	b := r3.Vec{X: x + hw, Y: y - hh}
	c := r3.Vec{X: x + hw, Y: y + hh}
	d := r3.Vec{X: x - hw, Y: y + hh}

	mesh := &scene.Mesh{
		Material: mat,
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
