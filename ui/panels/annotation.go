package panels

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/app"
	"anatomy-mapper/ui/dialogs"
)

// AnnotationPanel edits the encounter's annotation: condition pick,
// prescribed items, diagnosis tags, and free-text notes.
type AnnotationPanel struct {
	state     *app.State
	window    fyne.Window
	container fyne.CanvasObject

	partLbl         *widget.Label
	conditionSelect *widget.Select
	itemsLbl        *widget.Label
	prescribeBtn    *widget.Button
	tagsEntry       *widget.Entry
	notesEntry      *widget.Entry

	// conditions shown in the select, by display name
	conditions map[string]anatomy.Condition
}

// NewAnnotationPanel creates the annotation editor panel.
func NewAnnotationPanel(state *app.State) *AnnotationPanel {
	ap := &AnnotationPanel{
		state:      state,
		conditions: make(map[string]anatomy.Condition),
	}

	ap.partLbl = widget.NewLabelWithStyle("No part selected",
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ap.conditionSelect = widget.NewSelect(nil, func(name string) {
		cond, ok := ap.conditions[name]
		if !ok {
			return
		}
		state.Session.SetCondition(cond.ID)
		state.AnnotationChanged()
	})
	ap.conditionSelect.PlaceHolder = "Select condition"

	ap.itemsLbl = widget.NewLabel("")
	ap.itemsLbl.Wrapping = fyne.TextWrapWord

	ap.prescribeBtn = widget.NewButton("Prescribe...", func() {
		ap.openPrescriptionDialog()
	})
	ap.prescribeBtn.Disable()

	ap.tagsEntry = widget.NewEntry()
	ap.tagsEntry.PlaceHolder = "Diagnosis tags, comma separated"
	ap.tagsEntry.OnChanged = func(text string) {
		state.Session.SetDiagnosisTags(splitTags(text))
		state.AnnotationChanged()
	}

	ap.notesEntry = widget.NewMultiLineEntry()
	ap.notesEntry.PlaceHolder = "Clinical notes"
	ap.notesEntry.OnChanged = func(text string) {
		state.Session.SetNotes(text)
		state.AnnotationChanged()
	}

	state.On(app.EventSelectionChanged, func(data interface{}) {
		ap.onSelection(data.(app.SelectionEvent))
	})
	state.On(app.EventAnnotationChanged, func(interface{}) {
		ap.refreshItems()
	})
	state.On(app.EventAnatomyTypeChanged, func(interface{}) {
		ap.reset()
	})

	ap.container = container.NewVBox(
		ap.partLbl,
		ap.conditionSelect,
		ap.prescribeBtn,
		widget.NewLabel("Prescribed items"),
		ap.itemsLbl,
		widget.NewSeparator(),
		ap.tagsEntry,
		ap.notesEntry,
	)
	return ap
}

// Container returns the panel container.
func (ap *AnnotationPanel) Container() fyne.CanvasObject {
	return ap.container
}

// SetWindow sets the parent window for dialogs.
func (ap *AnnotationPanel) SetWindow(w fyne.Window) {
	ap.window = w
}

func (ap *AnnotationPanel) onSelection(ev app.SelectionEvent) {
	if ev.Info == nil {
		ap.reset()
		return
	}

	ap.partLbl.SetText(ev.Info.Name)
	ap.conditions = make(map[string]anatomy.Condition)
	var names []string
	if part := anatomy.Get(ap.state.Type()).Part(ev.Key); part != nil {
		for _, cond := range part.Conditions {
			ap.conditions[cond.Name] = cond
			names = append(names, cond.Name)
		}
	}
	ap.conditionSelect.Options = names
	ap.conditionSelect.ClearSelected()
	ap.conditionSelect.Refresh()

	if len(names) > 0 {
		ap.prescribeBtn.Enable()
	} else {
		ap.prescribeBtn.Disable()
	}
}

func (ap *AnnotationPanel) reset() {
	ap.partLbl.SetText("No part selected")
	ap.conditions = make(map[string]anatomy.Condition)
	ap.conditionSelect.Options = nil
	ap.conditionSelect.ClearSelected()
	ap.conditionSelect.Refresh()
	ap.prescribeBtn.Disable()
	ap.itemsLbl.SetText("")
	ap.tagsEntry.SetText("")
	ap.notesEntry.SetText("")
}

func (ap *AnnotationPanel) refreshItems() {
	rec := ap.state.Session.Record()
	ap.itemsLbl.SetText(strings.Join(rec.PrescribedItems, "\n"))
}

func (ap *AnnotationPanel) openPrescriptionDialog() {
	name := ap.conditionSelect.Selected
	cond, ok := ap.conditions[name]
	if !ok || ap.window == nil {
		return
	}
	dialogs.ShowPrescription(ap.window, cond, func(items []string) {
		for _, item := range items {
			ap.state.Session.AddPrescribedItem(item)
		}
		ap.state.AnnotationChanged()
	})
}

func splitTags(text string) []string {
	var tags []string
	for _, part := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
