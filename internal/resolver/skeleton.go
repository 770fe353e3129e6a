package resolver

import (
	"regexp"
	"strconv"
	"strings"

	"anatomy-mapper/internal/anatomy"
)

// The skeleton asset's meshes are not reliably named, so skeleton
// resolution works from a mesh number (1-20) instead of the name
// cascade. The number is parsed out of the node or its nearest named
// ancestor; when no name carries one, the load-time traversal index and
// finally the sibling position stand in.

// skeletonNumberRange is the accepted mesh number range.
const skeletonNumberRange = 20

// trailingNumberRe matches a numeric suffix: "SM_HumanSkeleton_07",
// "Bone_18", "Mesh 08", or a bare "18".
var trailingNumberRe = regexp.MustCompile(`(\d+)$`)

// SkeletonPart resolves a skeleton node to a part key using the full
// strategy: parsed name number, then load index, then sibling position.
func SkeletonPart(ref NodeRef, cat *anatomy.Catalogue) anatomy.PartKey {
	if n, ok := skeletonNumber(ref.Name, ref.Ancestors); ok {
		return checked(cat, cat.SkeletonNumbers[n])
	}

	if ref.LoadIndex >= 1 {
		n := (ref.LoadIndex-1)%skeletonNumberRange + 1
		return checked(cat, cat.SkeletonNumbers[n])
	}

	if ref.SiblingIndex >= 0 {
		n := ref.SiblingIndex%skeletonNumberRange + 1
		return checked(cat, cat.SkeletonNumbers[n])
	}

	return ""
}

// SkeletonPartByName is the name-only variant used by the info panel:
// it parses a number out of the node or ancestor names and never falls
// back to positional guessing. An unnamed mesh yields "".
func SkeletonPartByName(name string, ancestors []string) anatomy.PartKey {
	cat := anatomy.Get(anatomy.Skeleton)
	if cat == nil {
		return ""
	}
	if n, ok := skeletonNumber(name, ancestors); ok {
		return checked(cat, cat.SkeletonNumbers[n])
	}
	return ""
}

// skeletonNumber parses a mesh number out of the node's own name or the
// nearest ancestor that has any name at all.
func skeletonNumber(name string, ancestors []string) (int, bool) {
	if n, ok := parseTrailingNumber(name); ok {
		return n, true
	}

	depth := len(ancestors)
	if depth > maxAncestorDepth {
		depth = maxAncestorDepth
	}
	for i := 0; i < depth; i++ {
		if strings.TrimSpace(ancestors[i]) == "" {
			continue
		}
		// Only the nearest named ancestor is consulted
		return parseTrailingNumber(ancestors[i])
	}

	return 0, false
}

// parseTrailingNumber extracts a trailing number constrained to 1-20.
func parseTrailingNumber(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	m := trailingNumberRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > skeletonNumberRange {
		return 0, false
	}
	return n, true
}
