package selection

import (
	"testing"

	"anatomy-mapper/internal/anatomy"

	"github.com/stretchr/testify/assert"
)

func TestToggleIdempotence(t *testing.T) {
	s := Idle()

	s = s.Toggle("Cochlea")
	assert.Equal(t, anatomy.PartKey("Cochlea"), s.Selected)

	// Clicking the selected part again returns to idle
	s = s.Toggle("Cochlea")
	assert.True(t, s.IsIdle())
}

func TestToggleReplacesSelection(t *testing.T) {
	s := Idle().Toggle("Cochlea").Toggle("Eardrum")
	assert.Equal(t, anatomy.PartKey("Eardrum"), s.Selected)
}

func TestToggleNAClearsSelection(t *testing.T) {
	s := Idle().Toggle("Cochlea")

	// Clicking rig geometry or empty space clears the selection
	assert.False(t, s.Toggle(anatomy.PartNA).HasSelection())
	assert.False(t, s.Toggle("").HasSelection())
}

func TestHoverSuppressedForSelection(t *testing.T) {
	s := Idle().Toggle("Cochlea")

	s, changed := s.WithHover("Cochlea")
	assert.False(t, changed)
	assert.Equal(t, anatomy.PartKey(""), s.Hovered)

	s, changed = s.WithHover("Eardrum")
	assert.True(t, changed)
	assert.Equal(t, anatomy.PartKey("Eardrum"), s.Hovered)

	// Unchanged hover reports no transition
	_, changed = s.WithHover("Eardrum")
	assert.False(t, changed)
}

func TestSelectingHoveredPartClearsHover(t *testing.T) {
	s, _ := Idle().WithHover("Cochlea")
	s = s.Toggle("Cochlea")
	assert.Equal(t, anatomy.PartKey("Cochlea"), s.Selected)
	assert.Equal(t, anatomy.PartKey(""), s.Hovered)
}

func TestSkeletonMeshReselection(t *testing.T) {
	s := Idle().SelectMesh("Radius_Ulna", 8)
	assert.Equal(t, MeshID(8), s.SelectedMesh)

	// Clicking a different mesh with the same part key re-selects the
	// new instance instead of toggling off
	s = s.SelectMesh("Radius_Ulna", 9)
	assert.Equal(t, anatomy.PartKey("Radius_Ulna"), s.Selected)
	assert.Equal(t, MeshID(9), s.SelectedMesh)

	s = s.SelectMesh("", 0)
	assert.True(t, s.IsIdle())
}
