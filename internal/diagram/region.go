package diagram

import (
	"image/color"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/pkg/geometry"
)

// Hit regions grow past the label's text box so a click near a label,
// not only on its glyphs, still registers.
const regionPadding = 14.0

const pointTolerance = 0.25

// Region is a clickable area of the diagram bound to a catalogue part.
// Label-derived regions keep the source text; fallback regions carry
// an empty Label.
type Region struct {
	Key    anatomy.PartKey
	Label  string
	Rect   geometry.Rect
	bounds *rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (r *Region) Bounds() *rtreego.Rect {
	return r.bounds
}

// Index resolves diagram coordinates to parts. Regions come either
// from the diagram's own labels or, when the diagram carries no
// matching labels at all, from the catalogue's percentage fallback
// table. The two sources are never mixed.
type Index struct {
	tree       *rtreego.Rtree
	regions    []*Region
	width      float64
	height     float64
	fromLabels bool
}

// BuildIndex matches the document's labels against the catalogue and
// assembles the spatial index. A diagram with zero matched labels
// falls back to the catalogue's percentage regions scaled to the
// viewbox.
func BuildIndex(doc *Document, cat *anatomy.Catalogue, log zerolog.Logger) *Index {
	ix := &Index{width: doc.Width, height: doc.Height}

	for _, label := range doc.Labels {
		key := matchLabel(label.Text, cat)
		if key == "" {
			log.Debug().Str("label", label.Text).Msg("diagram label did not match any part")
			continue
		}
		ix.regions = append(ix.regions, &Region{
			Key:   key,
			Label: label.Text,
			Rect:  label.Bounds.Expand(regionPadding),
		})
	}

	if len(ix.regions) > 0 {
		ix.fromLabels = true
	} else {
		for _, pr := range cat.FallbackRegions {
			ix.regions = append(ix.regions, &Region{
				Key: pr.Key,
				Rect: geometry.Rect{
					X:      pr.X * doc.Width,
					Y:      pr.Y * doc.Height,
					Width:  pr.Width * doc.Width,
					Height: pr.Height * doc.Height,
				},
			})
		}
		log.Info().
			Str("type", cat.Type.String()).
			Int("regions", len(ix.regions)).
			Msg("no diagram labels matched, using fallback regions")
	}

	ix.tree = rtreego.NewTree(2, 4, 16)
	for _, r := range ix.regions {
		rect, err := rtreego.NewRect(
			rtreego.Point{r.Rect.X, r.Rect.Y},
			[]float64{r.Rect.Width, r.Rect.Height},
		)
		if err != nil {
			log.Warn().Err(err).Str("part", string(r.Key)).Msg("skipping degenerate region")
			continue
		}
		r.bounds = rect
		ix.tree.Insert(r)
	}
	return ix
}

// matchLabel resolves a label to a part key: exact normalized table
// hit first, then a substring scan preferring the longest table key so
// "external auditory canal" beats "canal".
func matchLabel(text string, cat *anatomy.Catalogue) anatomy.PartKey {
	norm := NormalizeLabel(text)
	if norm == "" {
		return ""
	}
	if key, ok := cat.DiagramLabels[norm]; ok {
		return key
	}

	keys := make([]string, 0, len(cat.DiagramLabels))
	for k := range cat.DiagramLabels {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		if containsWord(norm, k) {
			return cat.DiagramLabels[k]
		}
	}
	return ""
}

// containsWord reports whether sub appears in s. Single-character
// table keys are rejected to keep the substring scan from matching
// noise.
func containsWord(s, sub string) bool {
	if len(sub) < 2 {
		return false
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

// At returns the region under the given diagram coordinate, or nil.
// Overlapping regions resolve to the smallest area, mirroring how the
// nearest triangle wins a 3D pick.
func (ix *Index) At(x, y float64) *Region {
	point := rtreego.Point{x, y}
	hits := ix.tree.SearchIntersect(point.ToRect(pointTolerance))

	var best *Region
	var bestArea float64
	for _, hit := range hits {
		r := hit.(*Region)
		if !r.Rect.Contains(geometry.Point2D{X: x, Y: y}) {
			continue
		}
		area := r.Rect.Width * r.Rect.Height
		if best == nil || area < bestArea {
			best, bestArea = r, area
		}
	}
	return best
}

// Regions returns every region in the index, for debug rendering.
func (ix *Index) Regions() []*Region {
	return ix.regions
}

// FromLabels reports whether the regions came from diagram labels
// rather than the percentage fallback table.
func (ix *Index) FromLabels() bool {
	return ix.fromLabels
}

// Size returns the diagram viewbox dimensions the index was built for.
func (ix *Index) Size() (w, h float64) {
	return ix.width, ix.height
}

// debugPalette colors regions in the diagram debug overlay. The cycle
// repeats when a catalogue has more parts than entries.
var debugPalette = []color.RGBA{
	colornames.Steelblue,
	colornames.Indianred,
	colornames.Mediumseagreen,
	colornames.Goldenrod,
	colornames.Mediumorchid,
	colornames.Cadetblue,
	colornames.Chocolate,
	colornames.Slategray,
}

// DebugFill returns a stable overlay color for the region at index i.
func DebugFill(i int) color.RGBA {
	c := debugPalette[i%len(debugPalette)]
	c.A = 0x60
	return c
}
