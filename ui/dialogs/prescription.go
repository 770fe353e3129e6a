// Package dialogs provides application dialogs.
package dialogs

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"anatomy-mapper/internal/anatomy"
)

// ShowPrescription opens the prescription picker for a condition: the
// condition's usual medicines as checkboxes plus a free-text entry for
// anything off-list. onAdd receives the chosen items.
func ShowPrescription(window fyne.Window, cond anatomy.Condition, onAdd func(items []string)) {
	checks := make([]*widget.Check, 0, len(cond.Medicines))
	box := container.NewVBox()
	for _, med := range cond.Medicines {
		check := widget.NewCheck(med, nil)
		checks = append(checks, check)
		box.Add(check)
	}

	custom := widget.NewEntry()
	custom.PlaceHolder = "Other item"
	box.Add(widget.NewSeparator())
	box.Add(custom)

	content := container.NewVScroll(box)
	content.SetMinSize(fyne.NewSize(320, 260))

	dialog.ShowCustomConfirm("Prescribe for "+cond.Name, "Add", "Cancel", content,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			var items []string
			for _, check := range checks {
				if check.Checked {
					items = append(items, check.Text)
				}
			}
			if extra := strings.TrimSpace(custom.Text); extra != "" {
				items = append(items, extra)
			}
			if len(items) > 0 {
				onAdd(items)
			}
		}, window)
}
