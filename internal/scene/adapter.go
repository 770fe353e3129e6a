package scene

import (
	"time"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/resolver"
	"anatomy-mapper/internal/selection"
	"anatomy-mapper/pkg/geometry"

	"github.com/rs/zerolog"
)

// Click gesture thresholds: pointer-down and pointer-up further apart
// than these are a camera drag, not a click.
const (
	clickMaxDuration = 300 * time.Millisecond
	clickMaxDistance = 5.0 // pixels
)

// PartSelectFunc is invoked whenever the selection changes. info is nil
// when the selection was cleared. guessed reports that the part was
// resolved positionally rather than from a name; highlighting keeps
// such a selection, but info surfaces must not present it as the part.
type PartSelectFunc func(key anatomy.PartKey, info *anatomy.PartInfo, guessed bool)

// Adapter binds pointer events on the rendered model to part resolution
// and per-mesh highlight state. It exclusively owns a cloned per-session
// copy of the loaded arena; the loaded asset itself is never mutated.
type Adapter struct {
	arena *Arena
	typ   anatomy.Type
	cat   *anatomy.Catalogue
	cam   Camera

	state          selection.State
	hoveredMeshes  []NodeID
	selectedMeshes []NodeID

	pressed   bool
	pressPos  geometry.Point2D
	pressTime time.Time

	onPartSelect PartSelectFunc
	log          zerolog.Logger
}

// NewAdapter creates an adapter with no model loaded.
func NewAdapter(onPartSelect PartSelectFunc, log zerolog.Logger) *Adapter {
	return &Adapter{
		onPartSelect: onPartSelect,
		log:          log.With().Str("component", "scene").Logger(),
	}
}

// SetModel swaps the active model. The selection state is reset and all
// material clones from the previous arena are released before the new
// arena is touched. A nil arena is tolerated (asset load failures
// degrade to an empty view, never a crash).
func (ad *Adapter) SetModel(loaded *Arena, typ anatomy.Type) {
	ad.clearSelectionHighlight()
	ad.clearHoverHighlight()
	ad.state = selection.Idle()
	ad.arena = nil
	ad.notifySelection()

	ad.typ = typ
	ad.cat = anatomy.Get(typ)
	if loaded == nil {
		ad.log.Warn().Str("type", typ.String()).Msg("no model supplied")
		return
	}

	ad.arena = loaded.Clone()
	ad.arena.AssignLoadIndexes()
	if ad.cam.Width > 0 && ad.cam.Height > 0 {
		ad.cam = FitCamera(ad.arena.Bounds(), ad.cam.Width, ad.cam.Height)
	}
	ad.log.Info().
		Str("type", typ.String()).
		Int("nodes", ad.arena.Len()).
		Int("meshes", len(ad.arena.MeshIDs())).
		Msg("model loaded")
}

// Arena exposes the session arena for rendering. Render code must not
// mutate node appearance; the adapter owns it.
func (ad *Adapter) Arena() *Arena {
	return ad.arena
}

// Camera returns the current camera.
func (ad *Adapter) Camera() Camera {
	return ad.cam
}

// State returns the current selection state.
func (ad *Adapter) State() selection.State {
	return ad.state
}

// Type returns the active anatomy type.
func (ad *Adapter) Type() anatomy.Type {
	return ad.typ
}

// Viewport resizes the camera to a new viewport.
func (ad *Adapter) Viewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if ad.arena != nil {
		ad.cam = FitCamera(ad.arena.Bounds(), width, height)
	} else {
		ad.cam.Width = width
		ad.cam.Height = height
	}
}

// HoverAt processes a pointer-move: resolve the mesh under the pointer
// and retint if the hovered part changed. Hovering the selected part
// applies no hover tint.
func (ad *Adapter) HoverAt(px, py float64) {
	if ad.arena == nil {
		return
	}

	key := ad.resolveAt(px, py)
	if key == anatomy.PartNA {
		key = ""
	}

	next, changed := ad.state.WithHover(key)
	if !changed {
		return
	}

	ad.clearHoverHighlight()
	ad.state = next
	if ad.state.Hovered == "" {
		return
	}

	ad.hoveredMeshes = ad.meshesForKey(ad.state.Hovered)
	for _, id := range ad.hoveredMeshes {
		mesh := ad.arena.Node(id).Mesh
		mesh.SetAppearance(hoverAppearance(mesh.Original()))
	}
}

// PressAt records a pointer-down for click gesture detection.
func (ad *Adapter) PressAt(px, py float64, at time.Time) {
	ad.pressed = true
	ad.pressPos = geometry.Point2D{X: px, Y: py}
	ad.pressTime = at
}

// ReleaseAt processes a pointer-up. Only a release close in time and
// distance to its press counts as a click; anything else was a camera
// drag and leaves the selection alone.
func (ad *Adapter) ReleaseAt(px, py float64, at time.Time) {
	if !ad.pressed {
		return
	}
	ad.pressed = false

	if at.Sub(ad.pressTime) > clickMaxDuration {
		return
	}
	if ad.pressPos.Distance(geometry.Point2D{X: px, Y: py}) > clickMaxDistance {
		return
	}

	ad.clickAt(px, py)
}

// clickAt resolves the clicked mesh and drives the selection machine.
// The full restore/apply cycle completes here, before any later hover
// pass runs.
func (ad *Adapter) clickAt(px, py float64) {
	if ad.arena == nil {
		return
	}

	hit := PickAt(ad.arena, ad.cam, px, py)

	var key anatomy.PartKey
	if hit != 0 {
		key = ad.resolveMesh(hit)
	}

	// Exit the prior selection completely before applying the new one
	ad.clearHoverHighlight()
	ad.state = ad.state.ClearHover()
	ad.clearSelectionHighlight()

	if ad.typ == anatomy.Skeleton {
		ad.state = ad.state.SelectMesh(key, selection.MeshID(hit))
	} else {
		ad.state = ad.state.Toggle(key)
	}

	if ad.state.HasSelection() {
		if ad.typ == anatomy.Skeleton {
			// Only the exact clicked mesh instance, by identity
			ad.selectedMeshes = []NodeID{NodeID(ad.state.SelectedMesh)}
		} else {
			ad.selectedMeshes = ad.meshesForKey(ad.state.Selected)
		}
		for _, id := range ad.selectedMeshes {
			mesh := ad.arena.Node(id).Mesh
			mesh.SetAppearance(selectionAppearance(mesh.Original()))
		}
	}

	ad.notifySelection()
}

// ClearSelection deselects programmatically (e.g. the info panel's
// close button), restoring all highlighted meshes.
func (ad *Adapter) ClearSelection() {
	if !ad.state.HasSelection() {
		return
	}
	ad.clearSelectionHighlight()
	ad.state = ad.state.ClearSelection()
	ad.notifySelection()
}

// resolveAt picks and resolves the mesh under a pixel.
func (ad *Adapter) resolveAt(px, py float64) anatomy.PartKey {
	hit := PickAt(ad.arena, ad.cam, px, py)
	if hit == 0 {
		return ""
	}
	return ad.resolveMesh(hit)
}

// resolveMesh resolves a mesh node through the name cascade.
func (ad *Adapter) resolveMesh(id NodeID) anatomy.PartKey {
	return resolver.ResolveNode(ad.nodeRef(id), ad.typ)
}

// nodeRef builds the resolver's view of an arena node.
func (ad *Adapter) nodeRef(id NodeID) resolver.NodeRef {
	n := ad.arena.Node(id)
	ref := resolver.NodeRef{
		Name:         n.Name,
		Ancestors:    ad.arena.AncestorNames(id),
		SiblingIndex: ad.arena.SiblingIndex(id),
	}
	if n.Mesh != nil {
		ref.LoadIndex = n.Mesh.LoadIndex
	}
	return ref
}

// meshesForKey returns every mesh node resolving to key. Highlighting
// covers all of them; a part is routinely split across meshes.
func (ad *Adapter) meshesForKey(key anatomy.PartKey) []NodeID {
	var ids []NodeID
	for _, id := range ad.arena.MeshIDs() {
		if ad.resolveMesh(id) == key {
			ids = append(ids, id)
		}
	}
	return ids
}

func (ad *Adapter) clearHoverHighlight() {
	if ad.arena == nil {
		ad.hoveredMeshes = nil
		return
	}
	for _, id := range ad.hoveredMeshes {
		if n := ad.arena.Node(id); n != nil && n.Mesh != nil {
			n.Mesh.Restore()
		}
	}
	ad.hoveredMeshes = nil
}

func (ad *Adapter) clearSelectionHighlight() {
	if ad.arena == nil {
		ad.selectedMeshes = nil
		return
	}
	for _, id := range ad.selectedMeshes {
		if n := ad.arena.Node(id); n != nil && n.Mesh != nil {
			n.Mesh.Restore()
		}
	}
	ad.selectedMeshes = nil
}

// notifySelection reports the selection to the onPartSelect callback.
// A key missing from the catalogue is reported as no selection (fail
// closed, never surface a broken key).
func (ad *Adapter) notifySelection() {
	if ad.onPartSelect == nil {
		return
	}
	if !ad.state.HasSelection() || ad.cat == nil {
		ad.onPartSelect("", nil, false)
		return
	}
	info, ok := ad.cat.Info(ad.state.Selected)
	if !ok {
		ad.onPartSelect("", nil, false)
		return
	}
	guessed := ad.selectionGuessed()
	ad.log.Debug().
		Str("part", string(info.Key)).
		Bool("guessed", guessed).
		Msg("part selected")
	ad.onPartSelect(info.Key, &info, guessed)
}

// selectionGuessed reports whether the selected skeleton mesh was
// resolved by load index or sibling position. Skeleton meshes without
// a usable name can only be guessed at; the name-only resolver failing
// on the clicked mesh is exactly that case.
func (ad *Adapter) selectionGuessed() bool {
	if ad.typ != anatomy.Skeleton || ad.arena == nil {
		return false
	}
	id := NodeID(ad.state.SelectedMesh)
	n := ad.arena.Node(id)
	if n == nil {
		return false
	}
	return resolver.SkeletonPartByName(n.Name, ad.arena.AncestorNames(id)) == ""
}
