// Package model loads annotated 3D scene documents into scene arenas.
// The on-disk format is a small JSON node hierarchy with indexed
// triangle geometry, flat enough to hand-author and stable enough to
// export from asset pipelines.
package model

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"

	"anatomy-mapper/internal/scene"
	"anatomy-mapper/pkg/geometry"
)

// Document is the root of a scene file.
type Document struct {
	Name      string        `json:"name"`
	Materials []MaterialDef `json:"materials"`
	Nodes     []NodeDef     `json:"nodes"`
}

// MaterialDef is a shared material. Color components are 0-1.
type MaterialDef struct {
	Color    [3]float64 `json:"color"`
	Emissive float64    `json:"emissive,omitempty"`
}

// NodeDef is one node of the hierarchy. Parent indexes an earlier node
// in the array; -1 marks a root. A node without geometry is a grouping
// node.
type NodeDef struct {
	Name   string   `json:"name"`
	Parent int      `json:"parent"`
	Mesh   *MeshDef `json:"mesh,omitempty"`
}

// MeshDef is indexed triangle geometry. Positions are a flat xyz
// array; indices reference vertices in groups of three. Material
// indexes the document's material table, so several meshes may share
// one material.
type MeshDef struct {
	Positions []float64 `json:"positions"`
	Indices   []int     `json:"indices"`
	Material  int       `json:"material"`
}

// Load reads and decodes a scene file.
func Load(path string, log zerolog.Logger) (*scene.Arena, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	arena, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("nodes", arena.Len()).Msg("model loaded")
	return arena, nil
}

// Decode builds an arena from scene document JSON. The document is
// validated up front; a bad file yields an error, never a partial
// arena.
func Decode(data []byte) (*scene.Arena, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scene document: %w", err)
	}
	return doc.Build()
}

// Build validates the document and assembles the arena. Materials are
// instantiated once and shared between the meshes referencing them,
// matching how exporters emit them.
func (doc *Document) Build() (*scene.Arena, error) {
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("scene document has no nodes")
	}

	materials := make([]*scene.Material, len(doc.Materials))
	for i, md := range doc.Materials {
		materials[i] = &scene.Material{
			BaseColor: color.RGBA{
				R: colorByte(md.Color[0]),
				G: colorByte(md.Color[1]),
				B: colorByte(md.Color[2]),
				A: 0xFF,
			},
			Emissive: md.Emissive,
		}
	}

	arena := scene.NewArena()
	ids := make([]scene.NodeID, len(doc.Nodes))
	for i, nd := range doc.Nodes {
		var parent scene.NodeID
		switch {
		case nd.Parent == -1:
			parent = 0
		case nd.Parent >= 0 && nd.Parent < i:
			parent = ids[nd.Parent]
		default:
			return nil, fmt.Errorf("node %d (%q): parent %d does not precede it", i, nd.Name, nd.Parent)
		}
		ids[i] = arena.AddNode(nd.Name, parent)

		if nd.Mesh == nil {
			continue
		}
		mesh, err := nd.Mesh.build(materials)
		if err != nil {
			return nil, fmt.Errorf("node %d (%q): %w", i, nd.Name, err)
		}
		arena.SetMesh(ids[i], mesh)
	}
	arena.AssignLoadIndexes()
	return arena, nil
}

func (md *MeshDef) build(materials []*scene.Material) (*scene.Mesh, error) {
	if len(md.Positions)%3 != 0 {
		return nil, fmt.Errorf("positions length %d is not a multiple of 3", len(md.Positions))
	}
	if len(md.Indices)%3 != 0 {
		return nil, fmt.Errorf("indices length %d is not a multiple of 3", len(md.Indices))
	}
	if md.Material < 0 || md.Material >= len(materials) {
		return nil, fmt.Errorf("material index %d out of range", md.Material)
	}

	vertexCount := len(md.Positions) / 3
	verts := make([]r3.Vec, vertexCount)
	for i := 0; i < vertexCount; i++ {
		verts[i] = r3.Vec{
			X: md.Positions[3*i],
			Y: md.Positions[3*i+1],
			Z: md.Positions[3*i+2],
		}
	}

	mesh := &scene.Mesh{
		Material: materials[md.Material],
		Bounds:   geometry.EmptyAABB(),
	}
	for i := 0; i+2 < len(md.Indices); i += 3 {
		a, b, c := md.Indices[i], md.Indices[i+1], md.Indices[i+2]
		if a >= vertexCount || b >= vertexCount || c >= vertexCount || a < 0 || b < 0 || c < 0 {
			return nil, fmt.Errorf("triangle %d references vertex out of range", i/3)
		}
		tri := geometry.Triangle{A: verts[a], B: verts[b], C: verts[c]}
		mesh.Triangles = append(mesh.Triangles, tri)
		mesh.Bounds = mesh.Bounds.Union(tri.Bounds())
	}
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("mesh has no triangles")
	}
	return mesh, nil
}

func colorByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
