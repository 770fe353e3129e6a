// Package resolver maps raw scene-node names to canonical anatomical
// part keys. Resolution is deterministic and pure: the same name and
// ancestor chain always yields the same key, and a failed resolution is
// an empty key, never an error.
package resolver

import (
	"regexp"
	"strconv"
	"strings"

	"anatomy-mapper/internal/anatomy"
)

// maxAncestorDepth bounds the parent-chain walk. Vendor exports nest
// meshes under a handful of transform groups; six levels covers every
// catalogued model.
const maxAncestorDepth = 6

// NodeRef is the resolver's view of a scene node: its raw name, the
// names of its ancestors (nearest first), and the positional fallbacks
// the skeleton strategy uses when names carry no number.
type NodeRef struct {
	Name      string
	Ancestors []string

	// LoadIndex is the 1-based traversal index assigned when the model
	// was loaded; 0 means unassigned.
	LoadIndex int

	// SiblingIndex is the node's position within its parent's child
	// list; -1 means unknown.
	SiblingIndex int
}

// vendorIndexRe matches numeric placeholder names like "Object_3",
// "Mesh 08" or "mesh12".
var vendorIndexRe = regexp.MustCompile(`(?i)^(?:object|mesh)[_ ]?(\d+)$`)

// Resolve maps a raw node name to a part key for the given anatomy type.
// ancestors holds the names of the node's ancestors, nearest first.
// Returns "" when nothing identifiable matched.
func Resolve(name string, typ anatomy.Type, ancestors []string) anatomy.PartKey {
	return ResolveNode(NodeRef{Name: name, Ancestors: ancestors, SiblingIndex: -1}, typ)
}

// ResolveNode maps a node reference to a part key. The cascade runs on
// the node itself first and then, only if the node yielded nothing, on
// each ancestor in turn with the reduced ancestor rule set. The skeleton
// model bypasses the cascade entirely and resolves by mesh number.
func ResolveNode(ref NodeRef, typ anatomy.Type) anatomy.PartKey {
	cat := anatomy.Get(typ)
	if cat == nil {
		return ""
	}

	if typ == anatomy.Skeleton {
		return SkeletonPart(ref, cat)
	}

	if key := resolveName(ref.Name, cat, cat.Patterns); key != "" {
		return key
	}

	depth := len(ref.Ancestors)
	if depth > maxAncestorDepth {
		depth = maxAncestorDepth
	}
	for i := 0; i < depth; i++ {
		if key := resolveName(ref.Ancestors[i], cat, cat.AncestorPatterns); key != "" {
			return key
		}
	}

	return ""
}

// resolveName runs the ordered matching cascade for a single name.
// First match wins; a match whose key is missing from the catalogue is
// discarded so stale tables fail closed.
func resolveName(name string, cat *anatomy.Catalogue, patterns []anatomy.PatternRule) anatomy.PartKey {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	// 1. Exact anatomical synonym
	if key, ok := cat.SynonymExact(name); ok {
		return checked(cat, key)
	}

	// 2. Case-insensitive synonym
	if key, ok := cat.SynonymFold(name); ok {
		return checked(cat, key)
	}

	// 3. Vendor placeholder: literal object-name table first (the ear
	// asset predates consistent numbering), then the ordinal table.
	if key, ok := cat.ObjectName(name); ok {
		return checked(cat, key)
	}
	if m := vendorIndexRe.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			if key, ok := cat.Ordinals[n]; ok {
				return checked(cat, key)
			}
		}
	}

	// 4. The name is already a catalogue key
	if key, ok := cat.KeyExact(name); ok {
		return key
	}
	if key, ok := cat.KeyFold(name); ok {
		return key
	}

	// 5. Ordered free-text patterns, specific before general
	for i := range patterns {
		if patterns[i].Match(name) {
			return checked(cat, patterns[i].Key)
		}
	}

	return ""
}

// checked discards rule results absent from the catalogue.
func checked(cat *anatomy.Catalogue, key anatomy.PartKey) anatomy.PartKey {
	if !cat.Has(key) {
		return ""
	}
	return key
}
