package anatomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// PatternRule maps a free-text name pattern to a part key. Rules are kept
// as ordered data so that specific patterns can be guaranteed to run
// before general ones (e.g. wisdom teeth before generic teeth).
type PatternRule struct {
	Expr string
	Key  PartKey

	re *regexp.Regexp
}

// Match reports whether the rule matches the name (case-insensitive).
func (r *PatternRule) Match(name string) bool {
	if r.re == nil {
		r.re = regexp.MustCompile(`(?i)` + r.Expr)
	}
	return r.re.MatchString(name)
}

// PercentRegion is a hand-tuned clickable region for a diagram with no
// resolvable labels, expressed as fractions of the diagram viewbox.
type PercentRegion struct {
	Key    PartKey `json:"key"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Catalogue holds every lookup table for one anatomy type: the part
// records plus the synonym, ordinal, pattern, label and region tables the
// resolver and adapters consult. Read-only after registration.
type Catalogue struct {
	Type Type

	// Parts, keyed by canonical part key.
	Parts map[PartKey]*Part

	// Synonyms maps vendor/anatomical names to part keys (case-sensitive;
	// a folded index is built at registration for case-insensitive hits).
	Synonyms map[string]PartKey

	// ObjectNames maps literal vendor object names ("Object 1", "object_10")
	// to part keys. Only the ear model ships these.
	ObjectNames map[string]PartKey

	// Ordinals maps the N of vendor placeholder names (Object_N, Mesh_N)
	// to part keys.
	Ordinals map[int]PartKey

	// Patterns are ordered free-text rules for the clicked node itself;
	// AncestorPatterns is the reduced set applied while walking ancestors.
	Patterns         []PatternRule
	AncestorPatterns []PatternRule

	// DiagramLabels maps normalized (lowercased, trimmed) 2D diagram label
	// text to part keys.
	DiagramLabels map[string]PartKey

	// FallbackRegions are the percentage-based hit regions used when a
	// diagram yields no resolvable labels.
	FallbackRegions []PercentRegion

	// SkeletonNumbers maps mesh numbers (1-20) to part keys. Skeleton only.
	SkeletonNumbers map[int]PartKey

	foldedSynonyms map[string]PartKey
	foldedParts    map[string]PartKey
	foldedObjects  map[string]PartKey
}

// Part returns the catalogue record for a key, or nil if absent.
func (c *Catalogue) Part(key PartKey) *Part {
	return c.Parts[key]
}

// Info returns the displayable info for a key. The NA sentinel and
// unknown keys yield ok=false so callers fail closed.
func (c *Catalogue) Info(key PartKey) (PartInfo, bool) {
	p, ok := c.Parts[key]
	if !ok {
		return PartInfo{}, false
	}
	return p.Info(), true
}

// Has reports whether key is a displayable part or the NA sentinel.
func (c *Catalogue) Has(key PartKey) bool {
	if key == PartNA {
		return true
	}
	_, ok := c.Parts[key]
	return ok
}

// SynonymExact looks up a name in the synonym table, case-sensitively.
func (c *Catalogue) SynonymExact(name string) (PartKey, bool) {
	key, ok := c.Synonyms[name]
	return key, ok
}

// SynonymFold looks up a name in the synonym table, case-insensitively.
func (c *Catalogue) SynonymFold(name string) (PartKey, bool) {
	key, ok := c.foldedSynonyms[strings.ToLower(name)]
	return key, ok
}

// ObjectName looks up a literal vendor object name, case-insensitively.
func (c *Catalogue) ObjectName(name string) (PartKey, bool) {
	key, ok := c.foldedObjects[strings.ToLower(strings.TrimSpace(name))]
	return key, ok
}

// KeyExact reports whether the name is itself a part key.
func (c *Catalogue) KeyExact(name string) (PartKey, bool) {
	if _, ok := c.Parts[PartKey(name)]; ok {
		return PartKey(name), true
	}
	return "", false
}

// KeyFold reports whether the name is a part key, ignoring case.
func (c *Catalogue) KeyFold(name string) (PartKey, bool) {
	key, ok := c.foldedParts[strings.ToLower(name)]
	return key, ok
}

// ListKeys returns every part key in the catalogue, sorted.
func (c *Catalogue) ListKeys() []PartKey {
	keys := make([]PartKey, 0, len(c.Parts))
	for k := range c.Parts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// finalize builds the folded lookup indexes and compiles pattern rules.
func (c *Catalogue) finalize() {
	if c.Synonyms == nil {
		c.Synonyms = make(map[string]PartKey)
	}
	if c.DiagramLabels == nil {
		c.DiagramLabels = make(map[string]PartKey)
	}
	c.foldedSynonyms = make(map[string]PartKey, len(c.Synonyms))
	for name, key := range c.Synonyms {
		c.foldedSynonyms[strings.ToLower(name)] = key
	}
	c.foldedParts = make(map[string]PartKey, len(c.Parts))
	for key := range c.Parts {
		c.foldedParts[strings.ToLower(string(key))] = key
	}
	c.foldedObjects = make(map[string]PartKey, len(c.ObjectNames))
	for name, key := range c.ObjectNames {
		c.foldedObjects[strings.ToLower(name)] = key
	}
	for i := range c.Patterns {
		c.Patterns[i].re = regexp.MustCompile(`(?i)` + c.Patterns[i].Expr)
	}
	for i := range c.AncestorPatterns {
		c.AncestorPatterns[i].re = regexp.MustCompile(`(?i)` + c.AncestorPatterns[i].Expr)
	}
}

// Validate checks that every table target refers to a real part record
// (or the NA sentinel), so a stale table cannot surface a broken key.
func (c *Catalogue) Validate() error {
	check := func(key PartKey, where string) error {
		if !c.Has(key) {
			return fmt.Errorf("%s catalogue: %s references unknown part %q", c.Type, where, key)
		}
		return nil
	}

	for name, key := range c.Synonyms {
		if err := check(key, "synonym "+name); err != nil {
			return err
		}
	}
	for name, key := range c.ObjectNames {
		if err := check(key, "object name "+name); err != nil {
			return err
		}
	}
	for n, key := range c.Ordinals {
		if err := check(key, fmt.Sprintf("ordinal %d", n)); err != nil {
			return err
		}
	}
	for _, rule := range c.Patterns {
		if err := check(rule.Key, "pattern "+rule.Expr); err != nil {
			return err
		}
	}
	for _, rule := range c.AncestorPatterns {
		if err := check(rule.Key, "ancestor pattern "+rule.Expr); err != nil {
			return err
		}
	}
	for label, key := range c.DiagramLabels {
		if err := check(key, "diagram label "+label); err != nil {
			return err
		}
	}
	for _, region := range c.FallbackRegions {
		if err := check(region.Key, "fallback region"); err != nil {
			return err
		}
	}
	for n, key := range c.SkeletonNumbers {
		if err := check(key, fmt.Sprintf("skeleton number %d", n)); err != nil {
			return err
		}
	}
	return nil
}

// Registry of catalogues per anatomy type
var registry = make(map[Type]*Catalogue)

// Register adds a catalogue to the registry and builds its indexes.
func Register(c *Catalogue) {
	c.finalize()
	registry[c.Type] = c
}

// Get returns the catalogue for an anatomy type, or nil if unregistered.
func Get(t Type) *Catalogue {
	return registry[t]
}

// Overrides is the JSON shape of a per-type catalogue override file.
// Entries are merged over the built-in tables; existing entries with
// the same key are replaced.
type Overrides struct {
	Parts         []Part             `json:"parts,omitempty"`
	Synonyms      map[string]PartKey `json:"synonyms,omitempty"`
	DiagramLabels map[string]PartKey `json:"diagram_labels,omitempty"`
}

// LoadOverrides reads a catalogue override file (e.g. ear_catalogue.json)
// and merges it into the registered catalogue for the type.
func LoadOverrides(t Type, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var ov Overrides
	if err := json.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("cannot parse catalogue overrides: %w", err)
	}

	c := Get(t)
	if c == nil {
		return fmt.Errorf("no catalogue registered for type %s", t)
	}

	// Validate targets before touching the live catalogue, so a broken
	// override file cannot leave the registry half-merged.
	known := func(key PartKey) bool {
		if c.Has(key) {
			return true
		}
		for i := range ov.Parts {
			if ov.Parts[i].Key == key {
				return true
			}
		}
		return false
	}
	for i := range ov.Parts {
		if ov.Parts[i].Key == "" {
			return fmt.Errorf("catalogue override part %d has no key", i)
		}
	}
	for name, key := range ov.Synonyms {
		if !known(key) {
			return fmt.Errorf("catalogue override synonym %q references unknown part %q", name, key)
		}
	}
	for label, key := range ov.DiagramLabels {
		if !known(key) {
			return fmt.Errorf("catalogue override label %q references unknown part %q", label, key)
		}
	}

	for i := range ov.Parts {
		p := ov.Parts[i]
		c.Parts[p.Key] = &p
	}
	for name, key := range ov.Synonyms {
		c.Synonyms[name] = key
	}
	for label, key := range ov.DiagramLabels {
		c.DiagramLabels[strings.ToLower(strings.TrimSpace(label))] = key
	}

	c.finalize()
	return nil
}

// OverridePath returns the conventional override file path for a type
// inside an asset directory.
func OverridePath(dir string, t Type) string {
	return filepath.Join(dir, t.String()+"_catalogue.json")
}

func init() {
	// Register built-in catalogues
	Register(earCatalogue())
	Register(noseCatalogue())
	Register(throatCatalogue())
	Register(dentalCatalogue())
	Register(lungsCatalogue())
	Register(kidneyCatalogue())
	Register(skeletonCatalogue())
}
