// Package panels provides UI panels for the application.
package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/app"
)

// ViewMode selects which surface the central area shows.
type ViewMode int

const (
	ViewModel ViewMode = iota
	ViewDiagram
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	modelPanel      *ModelPanel
	partInfoPanel   *PartInfoPanel
	annotationPanel *AnnotationPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State) *SidePanel {
	sp := &SidePanel{state: state}

	sp.modelPanel = NewModelPanel(state)
	sp.partInfoPanel = NewPartInfoPanel(state)
	sp.annotationPanel = NewAnnotationPanel(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Model", sp.modelPanel.Container()),
		container.NewTabItem("Part", sp.partInfoPanel.Container()),
		container.NewTabItem("Annotation", sp.annotationPanel.Container()),
	)

	// a fresh selection is what the clinician wants to look at
	state.On(app.EventSelectionChanged, func(data interface{}) {
		ev := data.(app.SelectionEvent)
		if ev.Info != nil {
			sp.container.SelectIndex(1)
		}
	})

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// ModelPanel returns the model selection panel for callback wiring.
func (sp *SidePanel) ModelPanel() *ModelPanel {
	return sp.modelPanel
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.annotationPanel.SetWindow(w)
}

// OnClearSelection forwards the part panel's clear button.
func (sp *SidePanel) OnClearSelection(fn func()) {
	sp.partInfoPanel.onClear = fn
}

// ModelPanel selects the anatomy type and the viewing surface.
type ModelPanel struct {
	state     *app.State
	container fyne.CanvasObject

	typeSelect *widget.Select
	modeRadio  *widget.RadioGroup
	regionsChk *widget.Check
	statusLbl  *widget.Label

	// OnViewMode is called when the surface toggle changes.
	OnViewMode func(mode ViewMode)
	// OnShowRegions is called when the region overlay toggle changes.
	OnShowRegions func(show bool)
}

// NewModelPanel creates the model selection panel.
func NewModelPanel(state *app.State) *ModelPanel {
	mp := &ModelPanel{state: state}

	names := make([]string, 0, len(anatomy.AllTypes()))
	for _, typ := range anatomy.AllTypes() {
		names = append(names, typ.String())
	}
	mp.typeSelect = widget.NewSelect(names, func(name string) {
		typ, err := anatomy.ParseType(name)
		if err != nil {
			return
		}
		state.SetAnatomyType(typ)
	})
	mp.typeSelect.SetSelected(state.Type().String())

	mp.modeRadio = widget.NewRadioGroup([]string{"3D model", "2D diagram"}, func(choice string) {
		if mp.OnViewMode == nil {
			return
		}
		if choice == "2D diagram" {
			mp.OnViewMode(ViewDiagram)
		} else {
			mp.OnViewMode(ViewModel)
		}
	})
	mp.modeRadio.SetSelected("3D model")

	mp.regionsChk = widget.NewCheck("Show diagram regions", func(on bool) {
		if mp.OnShowRegions != nil {
			mp.OnShowRegions(on)
		}
	})
	mp.regionsChk.SetChecked(true)

	mp.statusLbl = widget.NewLabel("Built-in demo model")
	mp.statusLbl.Wrapping = fyne.TextWrapWord

	state.On(app.EventModelLoaded, func(interface{}) {
		if state.ModelPath == "" {
			mp.statusLbl.SetText("Built-in demo model")
		} else {
			mp.statusLbl.SetText("Model: " + state.ModelPath)
		}
	})
	state.On(app.EventDiagramLoaded, func(interface{}) {
		mp.statusLbl.SetText("Diagram: " + state.DiagramPath)
	})
	state.On(app.EventAnatomyTypeChanged, func(data interface{}) {
		mp.typeSelect.SetSelected(data.(anatomy.Type).String())
	})

	mp.container = container.NewVBox(
		widget.NewLabel("Anatomy type"),
		mp.typeSelect,
		widget.NewSeparator(),
		widget.NewLabel("View"),
		mp.modeRadio,
		mp.regionsChk,
		widget.NewSeparator(),
		mp.statusLbl,
	)
	return mp
}

// Container returns the panel container.
func (mp *ModelPanel) Container() fyne.CanvasObject {
	return mp.container
}
