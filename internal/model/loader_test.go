package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/resolver"
	"anatomy-mapper/internal/scene"
)

const earDoc = `{
  "name": "ear-demo",
  "materials": [
    {"color": [0.8, 0.6, 0.5]},
    {"color": [0.9, 0.9, 0.8], "emissive": 0.1}
  ],
  "nodes": [
    {"name": "EarModel", "parent": -1},
    {"name": "Cochlea", "parent": 0, "mesh": {
      "positions": [0,0,0, 1,0,0, 1,1,0, 0,1,0],
      "indices": [0,1,2, 0,2,3],
      "material": 0
    }},
    {"name": "Ossicle_Group", "parent": 0},
    {"name": "Malleus", "parent": 2, "mesh": {
      "positions": [2,0,0, 3,0,0, 3,1,0],
      "indices": [0,1,2],
      "material": 1
    }},
    {"name": "Incus", "parent": 2, "mesh": {
      "positions": [4,0,0, 5,0,0, 5,1,0],
      "indices": [0,1,2],
      "material": 1
    }}
  ]
}`

func TestDecodeBuildsHierarchy(t *testing.T) {
	arena, err := Decode([]byte(earDoc))
	require.NoError(t, err)

	assert.Equal(t, 5, arena.Len())
	meshes := arena.MeshIDs()
	assert.Len(t, meshes, 3)

	// Malleus sits under Ossicle_Group under EarModel
	var malleus scene.NodeID
	for _, id := range meshes {
		if arena.Node(id).Name == "Malleus" {
			malleus = id
		}
	}
	require.NotZero(t, malleus)
	assert.Equal(t, []string{"Ossicle_Group", "EarModel"}, arena.AncestorNames(malleus))
}

func TestDecodeSharesMaterials(t *testing.T) {
	arena, err := Decode([]byte(earDoc))
	require.NoError(t, err)

	var mats []*scene.Material
	for _, id := range arena.MeshIDs() {
		n := arena.Node(id)
		if n.Name == "Malleus" || n.Name == "Incus" {
			mats = append(mats, n.Mesh.Material)
		}
	}
	require.Len(t, mats, 2)
	assert.Same(t, mats[0], mats[1])
	assert.InDelta(t, 0.1, mats[0].Emissive, 1e-9)
}

func TestDecodeAssignsLoadIndexes(t *testing.T) {
	arena, err := Decode([]byte(earDoc))
	require.NoError(t, err)
	for _, id := range arena.MeshIDs() {
		assert.Greater(t, arena.Node(id).Mesh.LoadIndex, 0)
	}
}

func TestDecodeRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"empty nodes":        `{"nodes": []}`,
		"forward parent":     `{"nodes": [{"name": "a", "parent": 1}, {"name": "b", "parent": -1}]}`,
		"ragged positions":   `{"materials": [{"color":[1,1,1]}], "nodes": [{"name": "a", "parent": -1, "mesh": {"positions": [0,0], "indices": [0,0,0], "material": 0}}]}`,
		"index out of range": `{"materials": [{"color":[1,1,1]}], "nodes": [{"name": "a", "parent": -1, "mesh": {"positions": [0,0,0], "indices": [0,1,2], "material": 0}}]}`,
		"bad material":       `{"materials": [], "nodes": [{"name": "a", "parent": -1, "mesh": {"positions": [0,0,0,1,0,0,1,1,0], "indices": [0,1,2], "material": 0}}]}`,
		"not json":           `{`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ear.json")
	require.NoError(t, os.WriteFile(path, []byte(earDoc), 0o644))

	arena, err := Load(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 5, arena.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"), zerolog.Nop())
	assert.Error(t, err)
}

func TestDemoModelsResolveFully(t *testing.T) {
	for _, typ := range anatomy.AllTypes() {
		arena := Demo(typ)
		require.NotNil(t, arena, typ.String())
		require.NotEmpty(t, arena.MeshIDs(), typ.String())

		for _, id := range arena.MeshIDs() {
			n := arena.Node(id)
			ref := resolver.NodeRef{
				Name:         n.Name,
				Ancestors:    arena.AncestorNames(id),
				LoadIndex:    n.Mesh.LoadIndex,
				SiblingIndex: arena.SiblingIndex(id),
			}
			key := resolver.ResolveNode(ref, typ)
			assert.NotEmpty(t, key, "%s mesh %q did not resolve", typ, n.Name)
			assert.True(t, anatomy.Get(typ).Has(key), "%s mesh %q resolved to unknown %q", typ, n.Name, key)
		}
	}
}

func TestSkeletonDemoSharesOneMaterial(t *testing.T) {
	arena := Demo(anatomy.Skeleton)
	meshes := arena.MeshIDs()
	require.Len(t, meshes, 20)

	first := arena.Node(meshes[0]).Mesh.Material
	for _, id := range meshes[1:] {
		assert.Same(t, first, arena.Node(id).Mesh.Material)
	}
}
