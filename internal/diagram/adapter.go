package diagram

import (
	"time"

	"github.com/rs/zerolog"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/selection"
	"anatomy-mapper/pkg/geometry"
)

// Click gesture thresholds, matching the 3D view so the two surfaces
// feel identical.
const (
	clickMaxDuration = 300 * time.Millisecond
	clickMaxDistance = 5.0 // pixels
)

// PartSelectFunc is invoked whenever the selection changes. info is nil
// when the selection was cleared. guessed is always false here: every
// diagram region comes from an explicit label or a fixed fallback
// table, never from positional guessing.
type PartSelectFunc func(key anatomy.PartKey, info *anatomy.PartInfo, guessed bool)

// Adapter drives part selection on a 2D diagram. It mirrors the 3D
// scene adapter's behavior over hit regions instead of meshes: the
// same selection machine, the same click gesture, the same fail-closed
// part info lookup.
type Adapter struct {
	index *Index
	typ   anatomy.Type
	cat   *anatomy.Catalogue

	state           selection.State
	hoveredRegions  []*Region
	selectedRegions []*Region

	pressed   bool
	pressPos  geometry.Point2D
	pressTime time.Time

	onPartSelect PartSelectFunc
	log          zerolog.Logger
}

// NewAdapter creates an adapter with no diagram loaded.
func NewAdapter(onPartSelect PartSelectFunc, log zerolog.Logger) *Adapter {
	return &Adapter{
		onPartSelect: onPartSelect,
		log:          log.With().Str("component", "diagram").Logger(),
	}
}

// SetDiagram swaps the active diagram, resetting the selection. A nil
// index is tolerated and degrades to an inert view.
func (ad *Adapter) SetDiagram(index *Index, typ anatomy.Type) {
	ad.hoveredRegions = nil
	ad.selectedRegions = nil
	ad.state = selection.Idle()
	ad.index = nil
	ad.notifySelection()

	ad.typ = typ
	ad.cat = anatomy.Get(typ)
	if index == nil {
		ad.log.Warn().Str("type", typ.String()).Msg("no diagram supplied")
		return
	}
	ad.index = index
	ad.log.Info().
		Str("type", typ.String()).
		Int("regions", len(index.Regions())).
		Bool("from_labels", index.FromLabels()).
		Msg("diagram loaded")
}

// Index exposes the active region index for rendering.
func (ad *Adapter) Index() *Index {
	return ad.index
}

// State returns the current selection state.
func (ad *Adapter) State() selection.State {
	return ad.state
}

// Type returns the active anatomy type.
func (ad *Adapter) Type() anatomy.Type {
	return ad.typ
}

// HoveredRegions returns the regions under hover highlight.
func (ad *Adapter) HoveredRegions() []*Region {
	return ad.hoveredRegions
}

// SelectedRegions returns the regions under selection highlight.
func (ad *Adapter) SelectedRegions() []*Region {
	return ad.selectedRegions
}

// HoverAt processes a pointer-move in diagram coordinates. Hovering
// the selected part applies no hover highlight.
func (ad *Adapter) HoverAt(x, y float64) {
	if ad.index == nil {
		return
	}

	var key anatomy.PartKey
	if r := ad.index.At(x, y); r != nil {
		key = r.Key
	}
	if key == anatomy.PartNA {
		key = ""
	}

	next, changed := ad.state.WithHover(key)
	if !changed {
		return
	}
	ad.state = next
	ad.hoveredRegions = nil
	if ad.state.Hovered != "" {
		ad.hoveredRegions = ad.regionsForKey(ad.state.Hovered)
	}
}

// PressAt records a pointer-down for click gesture detection.
func (ad *Adapter) PressAt(x, y float64, at time.Time) {
	ad.pressed = true
	ad.pressPos = geometry.Point2D{X: x, Y: y}
	ad.pressTime = at
}

// ReleaseAt processes a pointer-up. Releases too far in time or
// distance from their press are pans, not clicks.
func (ad *Adapter) ReleaseAt(x, y float64, at time.Time) {
	if !ad.pressed {
		return
	}
	ad.pressed = false

	if at.Sub(ad.pressTime) > clickMaxDuration {
		return
	}
	if ad.pressPos.Distance(geometry.Point2D{X: x, Y: y}) > clickMaxDistance {
		return
	}

	ad.clickAt(x, y)
}

// clickAt resolves the clicked region and toggles the selection. The
// diagram carries no mesh instances, so even skeleton parts toggle by
// key here.
func (ad *Adapter) clickAt(x, y float64) {
	if ad.index == nil {
		return
	}

	var key anatomy.PartKey
	if r := ad.index.At(x, y); r != nil {
		key = r.Key
	}

	ad.state = ad.state.ClearHover()
	ad.hoveredRegions = nil
	ad.state = ad.state.Toggle(key)

	ad.selectedRegions = nil
	if ad.state.HasSelection() {
		ad.selectedRegions = ad.regionsForKey(ad.state.Selected)
	}
	ad.notifySelection()
}

// ClearSelection deselects programmatically.
func (ad *Adapter) ClearSelection() {
	if !ad.state.HasSelection() {
		return
	}
	ad.state = ad.state.ClearSelection()
	ad.selectedRegions = nil
	ad.notifySelection()
}

// regionsForKey returns every region bound to key; a part may appear
// under several labels.
func (ad *Adapter) regionsForKey(key anatomy.PartKey) []*Region {
	var out []*Region
	for _, r := range ad.index.Regions() {
		if r.Key == key {
			out = append(out, r)
		}
	}
	return out
}

func (ad *Adapter) notifySelection() {
	if ad.onPartSelect == nil {
		return
	}
	if !ad.state.HasSelection() {
		ad.onPartSelect("", nil, false)
		return
	}
	info, ok := ad.cat.Info(ad.state.Selected)
	if !ok {
		ad.log.Debug().
			Str("part", string(ad.state.Selected)).
			Msg("selected part has no catalogue info, clearing")
		ad.state = ad.state.ClearSelection()
		ad.selectedRegions = nil
		ad.onPartSelect("", nil, false)
		return
	}
	ad.onPartSelect(ad.state.Selected, &info, false)
}
