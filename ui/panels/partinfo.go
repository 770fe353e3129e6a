package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/app"
)

// PartInfoPanel shows the selected part: name, description, and the
// conditions the catalogue associates with it.
type PartInfoPanel struct {
	state     *app.State
	container fyne.CanvasObject

	nameLbl    *widget.Label
	descLbl    *widget.Label
	conditions *widget.Label
	clearBtn   *widget.Button

	onClear func()
}

// NewPartInfoPanel creates the part info panel.
func NewPartInfoPanel(state *app.State) *PartInfoPanel {
	pp := &PartInfoPanel{state: state}

	pp.nameLbl = widget.NewLabelWithStyle("No part selected",
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	pp.descLbl = widget.NewLabel("")
	pp.descLbl.Wrapping = fyne.TextWrapWord
	pp.conditions = widget.NewLabel("")
	pp.conditions.Wrapping = fyne.TextWrapWord

	pp.clearBtn = widget.NewButton("Clear selection", func() {
		if pp.onClear != nil {
			pp.onClear()
		}
	})
	pp.clearBtn.Disable()

	state.On(app.EventSelectionChanged, func(data interface{}) {
		pp.update(data.(app.SelectionEvent))
	})

	pp.container = container.NewVBox(
		pp.nameLbl,
		pp.descLbl,
		widget.NewSeparator(),
		widget.NewLabel("Associated conditions"),
		pp.conditions,
		widget.NewSeparator(),
		pp.clearBtn,
	)
	return pp
}

// Container returns the panel container.
func (pp *PartInfoPanel) Container() fyne.CanvasObject {
	return pp.container
}

func (pp *PartInfoPanel) update(ev app.SelectionEvent) {
	if ev.Info == nil {
		pp.nameLbl.SetText("No part selected")
		pp.descLbl.SetText("")
		pp.conditions.SetText("")
		pp.clearBtn.Disable()
		return
	}

	// A positionally resolved skeleton mesh stays highlighted, but the
	// panel never presents the guess as the part.
	if ev.Guessed {
		pp.nameLbl.SetText("Unidentified part")
		pp.descLbl.SetText("This mesh carries no usable name; no part details are shown.")
		pp.conditions.SetText("")
		pp.clearBtn.Enable()
		return
	}

	pp.nameLbl.SetText(ev.Info.Name)
	pp.descLbl.SetText(ev.Info.Description)
	pp.conditions.SetText(pp.conditionSummary(ev.Key))
	pp.clearBtn.Enable()
}

func (pp *PartInfoPanel) conditionSummary(key anatomy.PartKey) string {
	part := anatomy.Get(pp.state.Type()).Part(key)
	if part == nil || len(part.Conditions) == 0 {
		return "None listed"
	}
	summary := ""
	for i, cond := range part.Conditions {
		if i > 0 {
			summary += "\n"
		}
		summary += fmt.Sprintf("%s (%d medicines)", cond.Name, len(cond.Medicines))
	}
	return summary
}
