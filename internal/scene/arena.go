// Package scene provides the scene-graph arena for loaded 3D anatomy
// models and the adapter binding pointer events to part resolution and
// highlighting.
package scene

import (
	"image/color"

	"anatomy-mapper/pkg/geometry"
)

// NodeID identifies a node in the arena. IDs are 1-based; 0 means
// "no node".
type NodeID int

// Material carries the mutable appearance of a renderable mesh. Source
// assets routinely share one material across several meshes, so a mesh
// clones its material before the first highlight mutation.
type Material struct {
	BaseColor color.RGBA
	Emissive  float64 // 0-1 additive glow toward white
}

// Clone returns an independent copy of the material.
func (m *Material) Clone() *Material {
	c := *m
	return &c
}

// Appearance is a recorded material state, used to restore a mesh
// exactly to its pre-highlight look.
type Appearance struct {
	BaseColor color.RGBA
	Emissive  float64
}

// Mesh is the renderable payload of a node.
type Mesh struct {
	Triangles []geometry.Triangle
	Bounds    geometry.AABB
	Material  *Material

	// LoadIndex is the 1-based traversal order assigned once at model
	// load, the skeleton resolver's stable numbering fallback.
	LoadIndex int

	owned    bool // material has been cloned for this mesh
	original Appearance
}

// ensureOwned clones the shared material the first time this mesh is
// mutated and records the original appearance, so highlighting one
// instance never discolors a sibling sharing the source material.
func (m *Mesh) ensureOwned() {
	if m.owned {
		return
	}
	m.original = Appearance{BaseColor: m.Material.BaseColor, Emissive: m.Material.Emissive}
	m.Material = m.Material.Clone()
	m.owned = true
}

// SetAppearance mutates the mesh appearance, cloning the material first.
func (m *Mesh) SetAppearance(a Appearance) {
	m.ensureOwned()
	m.Material.BaseColor = a.BaseColor
	m.Material.Emissive = a.Emissive
}

// Restore returns the mesh to its recorded original appearance.
func (m *Mesh) Restore() {
	if !m.owned {
		return
	}
	m.Material.BaseColor = m.original.BaseColor
	m.Material.Emissive = m.original.Emissive
}

// Original returns the recorded pre-highlight appearance. Before any
// mutation it reflects the current material.
func (m *Mesh) Original() Appearance {
	if !m.owned {
		return Appearance{BaseColor: m.Material.BaseColor, Emissive: m.Material.Emissive}
	}
	return m.original
}

// Node is one element of the scene graph.
type Node struct {
	ID       NodeID
	Name     string
	Parent   NodeID // 0 = root
	Children []NodeID
	Mesh     *Mesh // nil for grouping/transform nodes
}

// Arena stores a scene graph as a flat slice with parent links, keeping
// the resolver decoupled from any rendering engine's object model.
type Arena struct {
	nodes []Node
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// AddNode appends a node under parent (0 for a root) and returns its ID.
func (a *Arena) AddNode(name string, parent NodeID) NodeID {
	id := NodeID(len(a.nodes) + 1)
	a.nodes = append(a.nodes, Node{ID: id, Name: name, Parent: parent})
	if parent != 0 {
		p := a.Node(parent)
		p.Children = append(p.Children, id)
	}
	return id
}

// Node returns the node for an ID, or nil for 0 or out-of-range IDs.
func (a *Arena) Node(id NodeID) *Node {
	if id < 1 || int(id) > len(a.nodes) {
		return nil
	}
	return &a.nodes[id-1]
}

// SetMesh attaches a mesh to a node.
func (a *Arena) SetMesh(id NodeID, mesh *Mesh) {
	if n := a.Node(id); n != nil {
		n.Mesh = mesh
	}
}

// Len returns the number of nodes.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// MeshIDs returns the IDs of all nodes carrying a mesh, in arena order.
func (a *Arena) MeshIDs() []NodeID {
	var ids []NodeID
	for i := range a.nodes {
		if a.nodes[i].Mesh != nil {
			ids = append(ids, a.nodes[i].ID)
		}
	}
	return ids
}

// AncestorNames returns the names of a node's ancestors, nearest first.
func (a *Arena) AncestorNames(id NodeID) []string {
	var names []string
	n := a.Node(id)
	for n != nil && n.Parent != 0 {
		n = a.Node(n.Parent)
		if n == nil {
			break
		}
		names = append(names, n.Name)
	}
	return names
}

// SiblingIndex returns the node's position within its parent's child
// list, or -1 for roots and unknown nodes.
func (a *Arena) SiblingIndex(id NodeID) int {
	n := a.Node(id)
	if n == nil || n.Parent == 0 {
		return -1
	}
	for i, child := range a.Node(n.Parent).Children {
		if child == id {
			return i
		}
	}
	return -1
}

// AssignLoadIndexes numbers every mesh in depth-first traversal order,
// starting at 1. Called once at model load so that unnamed skeleton
// meshes keep a distinct, stable number for the session.
func (a *Arena) AssignLoadIndexes() {
	next := 1
	var walk func(id NodeID)
	walk = func(id NodeID) {
		n := a.Node(id)
		if n.Mesh != nil {
			n.Mesh.LoadIndex = next
			next++
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	for i := range a.nodes {
		if a.nodes[i].Parent == 0 {
			walk(a.nodes[i].ID)
		}
	}
}

// Bounds returns the union of all mesh bounds.
func (a *Arena) Bounds() geometry.AABB {
	bounds := geometry.EmptyAABB()
	for i := range a.nodes {
		if a.nodes[i].Mesh != nil {
			bounds = bounds.Union(a.nodes[i].Mesh.Bounds)
		}
	}
	return bounds
}

// Clone returns a per-session deep copy of the arena. Mesh geometry is
// shared (it is immutable), material pointers are carried over as-is:
// a mesh clones its material lazily on first highlight, so the source
// asset is never mutated.
func (a *Arena) Clone() *Arena {
	c := &Arena{nodes: make([]Node, len(a.nodes))}
	copy(c.nodes, a.nodes)
	for i := range c.nodes {
		n := &c.nodes[i]
		if len(n.Children) > 0 {
			n.Children = append([]NodeID(nil), n.Children...)
		}
		if n.Mesh != nil {
			mesh := *n.Mesh
			mesh.owned = false
			n.Mesh = &mesh
		}
	}
	return c
}
