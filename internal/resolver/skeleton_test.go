package resolver

import (
	"testing"

	"anatomy-mapper/internal/anatomy"

	"github.com/stretchr/testify/assert"
)

func TestSkeletonNumberFromName(t *testing.T) {
	tests := []struct {
		name string
		want anatomy.PartKey
	}{
		{"SM_HumanSkeleton_07", "Humerus"},
		{"Bone_18", "Spine"},
		{"Mesh_08", "Radius_Ulna"},
		{"18", "Spine"},
		{"SM_HumanSkeleton_21", ""}, // out of the 1-20 range
		{"SM_HumanSkeleton_00", ""},
		{"Pelvis_Mesh", ""}, // no trailing number
	}
	for _, tt := range tests {
		got := Resolve(tt.name, anatomy.Skeleton, nil)
		assert.Equal(t, tt.want, got, "name %q", tt.name)
	}
}

func TestSkeletonAncestorNumber(t *testing.T) {
	// An unnamed mesh takes its number from the nearest named ancestor
	key := Resolve("", anatomy.Skeleton, []string{"", "SM_HumanSkeleton_13", "Armature"})
	assert.Equal(t, anatomy.PartKey("Patella"), key)

	// Only the nearest named ancestor is consulted: if it carries no
	// number, deeper ancestors do not rescue the parse.
	key = Resolve("", anatomy.Skeleton, []string{"Armature", "Bone_12"})
	assert.Equal(t, anatomy.PartKey(""), key)
}

func TestSkeletonLoadIndexFallback(t *testing.T) {
	ref := NodeRef{Name: "", LoadIndex: 7, SiblingIndex: -1}
	assert.Equal(t, anatomy.PartKey("Humerus"), ResolveNode(ref, anatomy.Skeleton))

	// The traversal index wraps onto the 20-slot table
	ref = NodeRef{Name: "", LoadIndex: 28, SiblingIndex: -1}
	assert.Equal(t, anatomy.PartKey("Radius_Ulna"), ResolveNode(ref, anatomy.Skeleton))

	// A parsed name number beats the load index
	ref = NodeRef{Name: "Bone_01", LoadIndex: 7, SiblingIndex: -1}
	assert.Equal(t, anatomy.PartKey("Skull"), ResolveNode(ref, anatomy.Skeleton))
}

func TestSkeletonSiblingFallback(t *testing.T) {
	ref := NodeRef{Name: "", LoadIndex: 0, SiblingIndex: 0}
	assert.Equal(t, anatomy.PartKey("Skull"), ResolveNode(ref, anatomy.Skeleton))

	ref = NodeRef{Name: "", LoadIndex: 0, SiblingIndex: 7}
	assert.Equal(t, anatomy.PartKey("Radius_Ulna"), ResolveNode(ref, anatomy.Skeleton))
}

func TestSkeletonNoGuess(t *testing.T) {
	// No name, no index, no sibling: never guess
	ref := NodeRef{Name: "", LoadIndex: 0, SiblingIndex: -1}
	assert.Equal(t, anatomy.PartKey(""), ResolveNode(ref, anatomy.Skeleton))
}

func TestSkeletonPartByName(t *testing.T) {
	assert.Equal(t, anatomy.PartKey("Humerus"), SkeletonPartByName("SM_HumanSkeleton_07", nil))
	assert.Equal(t, anatomy.PartKey("Femur"), SkeletonPartByName("", []string{"Bone_12"}))

	// The info-panel variant never falls back to positional guessing
	assert.Equal(t, anatomy.PartKey(""), SkeletonPartByName("", nil))
	assert.Equal(t, anatomy.PartKey(""), SkeletonPartByName("Unnamed_Mesh", nil))
}
