// Package selection tracks the hover/selection state machine for the
// active anatomy model. The state is a plain value passed into and
// returned from the adapters; it performs no I/O and touches no scene
// objects itself.
package selection

import "anatomy-mapper/internal/anatomy"

// MeshID identifies a specific mesh instance within the active scene
// arena. Zero means "no mesh".
type MeshID int

// State holds the current selection and hover. At most one part carries
// the selection highlight at a time, and hover highlighting is
// suppressed for the part that is already selected.
type State struct {
	Selected     anatomy.PartKey
	Hovered      anatomy.PartKey
	SelectedMesh MeshID // skeleton only: the exact selected mesh instance
}

// Idle returns the reset state. The active model changing must return
// the machine here.
func Idle() State {
	return State{}
}

// IsIdle reports whether nothing is selected or hovered.
func (s State) IsIdle() bool {
	return s.Selected == "" && s.Hovered == "" && s.SelectedMesh == 0
}

// HasSelection reports whether a part is selected.
func (s State) HasSelection() bool {
	return s.Selected != ""
}

// HoverSuppressed reports whether hover highlighting for key should be
// skipped because that part is the active selection.
func (s State) HoverSuppressed(key anatomy.PartKey) bool {
	return key != "" && key == s.Selected
}

// WithHover returns the state hovering over key, and whether the hover
// actually changed. Hovering the selected part records no hover.
func (s State) WithHover(key anatomy.PartKey) (State, bool) {
	if s.HoverSuppressed(key) {
		key = ""
	}
	if key == s.Hovered {
		return s, false
	}
	s.Hovered = key
	return s, true
}

// Toggle returns the state after clicking key on a non-skeleton model:
// clicking the already-selected part deselects it, anything else
// replaces the selection. The hover for the newly selected part is
// cleared so the selection highlight is not stacked on a hover tint.
func (s State) Toggle(key anatomy.PartKey) State {
	if key == "" || key == anatomy.PartNA {
		return s.ClearSelection()
	}
	if s.Selected == key {
		return s.ClearSelection()
	}
	s.Selected = key
	s.SelectedMesh = 0
	if s.Hovered == key {
		s.Hovered = ""
	}
	return s
}

// SelectMesh returns the state after clicking a specific skeleton mesh.
// A new click always re-selects the clicked instance, even when it
// shares its part key with the current selection: distinct bones
// legitimately resolve to the same part.
func (s State) SelectMesh(key anatomy.PartKey, mesh MeshID) State {
	if key == "" || key == anatomy.PartNA || mesh == 0 {
		return s.ClearSelection()
	}
	s.Selected = key
	s.SelectedMesh = mesh
	if s.Hovered == key {
		s.Hovered = ""
	}
	return s
}

// ClearSelection returns the state with no selection, keeping the hover.
func (s State) ClearSelection() State {
	s.Selected = ""
	s.SelectedMesh = 0
	return s
}

// ClearHover returns the state with no hover.
func (s State) ClearHover() State {
	s.Hovered = ""
	return s
}
